package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/warden/pkg/commands"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path=value> [<path=value>...]",
		Short: MsgSetShort,
		Long:  MsgSetLong,
		Example: `  warden set theme=dark --all
  warden set power_user.fast_ui_mode=true chat.width=60 --users alice,bob
  warden set 'profiles=[{"name":"local"}]' --users alice --dry-run`,
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
			sets, err := commands.ParseDirectives(args)
			if err != nil {
				return err
			}
			report := commands.Set(cmd.Context(), env, handles, sets)
			printReport("Set "+joinArgs(args), report)
			return nil
		},
	}
}
