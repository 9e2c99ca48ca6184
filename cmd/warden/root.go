package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/warden/internal/version"
	"github.com/arthur-debert/warden/pkg/batch"
	"github.com/arthur-debert/warden/pkg/commands"
	"github.com/arthur-debert/warden/pkg/config"
	"github.com/arthur-debert/warden/pkg/filesystem"
	"github.com/arthur-debert/warden/pkg/logging"
	"github.com/arthur-debert/warden/pkg/paths"
	"github.com/arthur-debert/warden/pkg/ui/display"
	"github.com/arthur-debert/warden/pkg/users"
)

var (
	verbosity  int
	dryRun     bool
	configPath string
	dataRoot   string
	userFlag   []string
	allUsers   bool

	rootCmd = &cobra.Command{
		Use:   "warden",
		Short: "Bulk-edit the per-user data of a multi-tenant install",
		Long: `warden applies bulk, idempotent edits to a fleet of per-user data
directories: settings changes, template syncs, shared lorebook links,
and content-index maintenance. Every destructive write is preceded by a
timestamped backup, every run can be previewed with --dry-run, and one
user's failure never stops the rest of the batch.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Bool("dryRun", dryRun).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without touching the filesystem")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/warden/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataRoot, "data-root", "", "Fleet data root (overrides config and "+config.EnvDataRoot+")")
	rootCmd.PersistentFlags().StringSliceVarP(&userFlag, "users", "u", nil, "Comma-separated user handles to operate on")
	rootCmd.PersistentFlags().BoolVar(&allUsers, "all", false, "Operate on every discovered user")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newUpsertCmd())
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newIndexCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newDocsCmd())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("warden version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

// buildEnv loads the frozen configuration and resolves paths once; the
// resulting Env is the only thing operations see.
func buildEnv() (commands.Env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return commands.Env{}, err
	}
	if dataRoot != "" {
		cfg.DataRoot = dataRoot
	}
	if err := cfg.Validate(); err != nil {
		return commands.Env{}, err
	}
	p, err := paths.New(cfg)
	if err != nil {
		return commands.Env{}, err
	}
	return commands.Env{
		FS:       filesystem.NewOS(),
		Paths:    p,
		Config:   cfg,
		DryRun:   dryRun,
		Progress: display.NewProgress(),
	}, nil
}

// selectUsers resolves --users/--all against the discovered fleet.
func selectUsers(env commands.Env) ([]string, error) {
	discovered, err := users.Discover(env.FS, env.Paths.DataRoot(), env.Config.ExcludeUsers)
	if err != nil {
		return nil, err
	}
	if !allUsers && len(userFlag) == 0 {
		return nil, fmt.Errorf("select users with --users a,b or --all")
	}
	if allUsers {
		return discovered, nil
	}
	return users.Select(discovered, userFlag)
}

// printReport renders the assembled report after the run.
func printReport(label string, report batch.Report) {
	fmt.Println(display.RenderReport(label, report, dryRun))
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
