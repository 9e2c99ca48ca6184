package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/warden/pkg/commands"
	"github.com/arthur-debert/warden/pkg/ui/display"
)

func newBackupCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: MsgBackupShort,
		Long:  MsgBackupLong,
		Example: `  warden backup --all
  warden backup --label pre-upgrade --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			handles, err := selectUsers(env)
			if err != nil {
				return err
			}

			report, area, err := commands.Backup(cmd.Context(), env, handles, label)
			if err != nil {
				return err
			}
			printReport("Backup", report)
			if !env.DryRun {
				fmt.Println(display.MutedStyle.Render("Snapshots under " + area))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "fleet", "Label for the central snapshot directory")
	return cmd
}
