package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/warden/pkg/commands"
	"github.com/arthur-debert/warden/pkg/index"
)

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: MsgIndexShort,
		Long:  MsgIndexLong,
	}
	cmd.AddCommand(newIndexListCmd(), newIndexAddCmd(), newIndexRemoveCmd(), newIndexUpdateCmd())
	return cmd
}

func newIndexListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the content index",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			for _, r := range commands.IndexList(env) {
				fmt.Printf("%-10s %s\n", r.Type, r.Filename)
			}
			return nil
		},
	}
}

func newIndexAddCmd() *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "add <filename>",
		Short: "Add a content descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			return commands.IndexAdd(env, index.Record{Filename: args[0], Type: contentType})
		},
	}

	cmd.Flags().StringVar(&contentType, "type", index.TypeWorld,
		"Content type: character, world, theme, preset, or template")
	return cmd
}

func newIndexRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <filename> [<filename>...]",
		Short: "Remove content descriptors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			return commands.IndexRemove(env, args)
		},
	}
}

func newIndexUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <filename> <patch-json>",
		Short: "Shallow-merge a patch onto one descriptor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			var patch map[string]any
			if err := json.Unmarshal([]byte(args[1]), &patch); err != nil {
				return fmt.Errorf("patch must be a JSON object: %w", err)
			}
			return commands.IndexUpdate(env, args[0], patch)
		},
	}
}
