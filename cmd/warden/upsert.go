package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/warden/pkg/commands"
)

func newUpsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upsert <list-path> <record-json>",
		Short: MsgUpsertShort,
		Long:  MsgUpsertLong,
		Example: `  warden upsert connection_profiles '{"name":"shared-api","url":"https://api.internal"}' --all
  warden upsert quick_replies '{"name":"greet","text":"hello"}' --users alice`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			handles, err := selectUsers(env)
			if err != nil {
				return err
			}

			var record map[string]any
			if err := json.Unmarshal([]byte(args[1]), &record); err != nil {
				return fmt.Errorf("record must be a JSON object: %w", err)
			}
			if name, ok := record["name"].(string); !ok || name == "" {
				return fmt.Errorf("record needs a non-empty string \"name\"")
			}

			report := commands.Upsert(cmd.Context(), env, handles, args[0], record)
			printReport("Upsert into "+args[0], report)
			return nil
		},
	}
}
