package main

import (
	"github.com/spf13/cobra"

	"task-chat-agent/internal/mcpserver"
	"task-chat-agent/pkg/datemath"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the task, user and conversation tools over stdio",
	Long:  `Runs an MCP server on stdin/stdout. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.close()

		dateMath, err := datemath.NewParser("UTC")
		if err != nil {
			return err
		}

		s, err := mcpserver.New(e.l, mcpserver.Config{
			Name:             e.cfg.MCP.Name,
			Version:          e.cfg.MCP.Version,
			DB:               e.db,
			DateMath:         dateMath,
			RelevantMessages: e.cfg.Chat.RelevantMessages,
		})
		if err != nil {
			return err
		}

		e.l.Infof(cmd.Context(), "MCP server %s %s serving on stdio", e.cfg.MCP.Name, e.cfg.MCP.Version)
		return mcpserver.Serve(s)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
