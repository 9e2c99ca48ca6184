package commands

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/warden/pkg/batch"
	"github.com/arthur-debert/warden/pkg/document"
	"github.com/arthur-debert/warden/pkg/errors"
	"github.com/arthur-debert/warden/pkg/logging"
)

// Plan is an operator-written YAML file describing one batch edit:
// path sets, named-list upserts, and an optional template-section sync,
// applied per user in that order within a single snapshot/write cycle.
type Plan struct {
	// Label names the run in logs and reports.
	Label string `yaml:"label"`

	Sets    []PlanSet    `yaml:"sets"`
	Upserts []PlanUpsert `yaml:"upserts"`
	Sync    *PlanSync    `yaml:"sync"`
}

// PlanSet is one dot-path assignment. Value keeps the YAML typing:
// quote a scalar in the plan file to force a string.
type PlanSet struct {
	Path  string `yaml:"path"`
	Value any    `yaml:"value"`
}

// PlanUpsert upserts one named record into a list path.
type PlanUpsert struct {
	List   string         `yaml:"list"`
	Record map[string]any `yaml:"record"`
}

// PlanSync copies sections from a template user's settings.
type PlanSync struct {
	From  string   `yaml:"from"`
	Paths []string `yaml:"paths"`
}

// LoadPlan reads and validates a plan file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, errors.Wrapf(err, errors.ErrPlanInvalid, "reading plan %s", path)
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, errors.Wrapf(err, errors.ErrPlanInvalid, "parsing plan %s", path)
	}
	if plan.Label == "" {
		plan.Label = "apply"
	}
	for _, s := range plan.Sets {
		if s.Path == "" {
			return Plan{}, errors.New(errors.ErrPlanInvalid, "plan set with empty path")
		}
	}
	for _, u := range plan.Upserts {
		if u.List == "" || u.Record == nil {
			return Plan{}, errors.New(errors.ErrPlanInvalid, "plan upsert needs list and record")
		}
		if name, ok := u.Record["name"].(string); !ok || name == "" {
			return Plan{}, errors.New(errors.ErrPlanInvalid, "plan upsert record needs a string name")
		}
	}
	if plan.Sync != nil && plan.Sync.From == "" {
		return Plan{}, errors.New(errors.ErrPlanInvalid, "plan sync needs a template user")
	}
	return plan, nil
}

// Apply runs a plan across the selected users: one snapshot per user,
// then sets, upserts, and sync in plan order, then one write.
func Apply(ctx context.Context, env Env, handles []string, plan Plan) (batch.Report, error) {
	logger := logging.GetLogger("commands.apply")
	defer logging.LogOperationStart(logger, "apply")()

	var template document.Document
	if plan.Sync != nil {
		var err error
		template, err = document.Load(env.FS, env.Paths.SettingsPath(plan.Sync.From))
		if err != nil {
			return batch.Report{}, err
		}
	}

	sets := make([]document.PathSet, len(plan.Sets))
	for i, s := range plan.Sets {
		sets[i] = document.PathSet{Path: s.Path, Value: s.Value}
	}

	store := env.Snapshots()

	report := batch.Run(ctx, handles, func(handle string) error {
		if plan.Sync != nil && handle == plan.Sync.From {
			return batch.Skip("template user")
		}

		settingsPath := env.Paths.SettingsPath(handle)
		if _, err := env.FS.Lstat(settingsPath); err != nil {
			if os.IsNotExist(err) {
				return batch.Skip("no settings document")
			}
			return err
		}

		doc, err := document.Load(env.FS, settingsPath)
		if err != nil {
			return err
		}
		if _, err := store.File(settingsPath, env.Paths.OwnerBackupPath(handle)); err != nil {
			return err
		}

		updated := document.ApplyPathSets(doc, sets)
		for _, u := range plan.Upserts {
			updated = document.UpsertNamed(updated, u.List, u.Record)
		}
		if plan.Sync != nil {
			updated = document.SyncSections(updated, template, plan.Sync.Paths)
		}

		if env.DryRun {
			logger.Info().Str("user", handle).Str("plan", plan.Label).Msg("Would apply plan")
			return nil
		}
		return document.Save(env.FS, settingsPath, updated)
	}, env.Progress)

	return report, nil
}
