package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/warden/pkg/commands"
	"github.com/arthur-debert/warden/pkg/linker"
	"github.com/arthur-debert/warden/pkg/prompt"
	"github.com/arthur-debert/warden/pkg/ui/display"
)

func newLinkCmd() *cobra.Command {
	var policyFlag string
	var yes bool

	cmd := &cobra.Command{
		Use:   "link <lorebook-file>",
		Short: MsgLinkShort,
		Long:  MsgLinkLong,
		Example: `  warden link shared/canon-lore.json --all
  warden link shared/canon-lore.json --users alice,bob --policy replace-all
  warden link shared/canon-lore.json --all --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			handles, err := selectUsers(env)
			if err != nil {
				return err
			}

			if policyFlag == "" {
				policyFlag = env.Config.LinkPolicy
			}
			policy, err := linker.ParsePolicy(policyFlag)
			if err != nil {
				return err
			}

			// Replacing real files across the fleet deserves a second look.
			if policy == linker.PolicyReplaceAll && !env.DryRun && !yes {
				answer := prompt.Confirm(
					fmt.Sprintf("Replace conflicting files in %d user(s)?", len(handles)),
					"Existing lorebook files are backed up, then replaced by links.")
				if answer.Cancelled || !answer.Value {
					return nil
				}
			}

			result, err := commands.Link(cmd.Context(), env, handles, args[0], policy)
			if err != nil {
				return err
			}
			if result.RegistryConflict {
				fmt.Println(display.SkipStyle.Render(
					fmt.Sprintf(MsgLinkRegistryConflict, filepath.Base(args[0]))))
			}
			printReport("Link "+filepath.Base(args[0]), result.Report)
			return nil
		},
	}

	cmd.Flags().StringVar(&policyFlag, "policy", "", "Conflict policy: skip or replace-all (default from config)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the replace-all confirmation prompt")
	return cmd
}
