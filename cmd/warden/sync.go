package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/warden/pkg/commands"
)

func newSyncCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "sync --from <user> <section-path> [<section-path>...]",
		Short: MsgSyncShort,
		Long:  MsgSyncLong,
		Example: `  warden sync --from template power_user --all
  warden sync --from template power_user textgen --users alice,bob`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			handles, err := selectUsers(env)
			if err != nil {
				return err
			}
			report, err := commands.Sync(cmd.Context(), env, from, handles, args)
			if err != nil {
				return err
			}
			printReport("Sync from "+from, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Template user whose settings sections are copied")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
