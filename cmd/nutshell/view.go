package main

import (
	"github.com/sandevgo/nutshell/internal/service/viewer"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <posts.json>",
	Short: "Browse extracted posts as cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		return viewer.Run(ctx, args[0])
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
