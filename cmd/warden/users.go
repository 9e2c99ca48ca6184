package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/warden/pkg/users"
)

func newUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: MsgUsersShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			handles, err := users.Discover(env.FS, env.Paths.DataRoot(), env.Config.ExcludeUsers)
			if err != nil {
				return err
			}
			for _, handle := range handles {
				fmt.Println(handle)
			}
			return nil
		},
	}
}
