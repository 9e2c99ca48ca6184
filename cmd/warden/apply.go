package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/warden/pkg/commands"
)

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <plan-file>",
		Short: MsgApplyShort,
		Long:  MsgApplyLong,
		Example: `  warden apply quarterly.yaml --all
  warden apply quarterly.yaml --users alice,bob --dry-run`,
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
			plan, err := commands.LoadPlan(args[0])
			if err != nil {
				return err
			}
			report, err := commands.Apply(cmd.Context(), env, handles, plan)
			if err != nil {
				return err
			}
			printReport("Apply "+plan.Label, report)
			return nil
		},
	}
}
