package main

import (
	"fmt"
	"strconv"

	"github.com/sandevgo/nutshell/internal/config"
	"github.com/sandevgo/nutshell/internal/providers/discourse"
	"github.com/sandevgo/nutshell/pkg/log"
	"github.com/spf13/cobra"
)

var fetchOutput string

var fetchCmd = &cobra.Command{
	Use:   "fetch <topic-id>",
	Short: "Fetch a raw topic payload from the forum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		topicID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("topic id must be a number: %q", args[0])
		}

		out := fetchOutput
		if out == "" {
			out = fmt.Sprintf("topic_%d.json", topicID)
		}

		client := discourse.NewClient(config.NewDiscourseConfig(ctx))
		if err := client.FetchTopicToFile(ctx, topicID, out); err != nil {
			return err
		}

		log.FromCtx(ctx).Info().Str("file", out).Msg("topic saved")
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "destination file (default topic_<id>.json)")
	rootCmd.AddCommand(fetchCmd)
}
