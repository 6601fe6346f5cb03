package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/nutshell/internal/export"
	"github.com/sandevgo/nutshell/internal/pipeline"
	"github.com/sandevgo/nutshell/pkg/log"
	"github.com/spf13/cobra"
)

var (
	extractOutDir   string
	extractSplitDir string
)

var extractCmd = &cobra.Command{
	Use:   "extract <topic.json>",
	Short: "Flatten a raw topic payload into posts.txt and posts.json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()
		logger := log.FromCtx(ctx)

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open topic payload: %w", err)
		}
		defer f.Close()

		topic, err := pipeline.DecodeTopic(f)
		if err != nil {
			return err
		}
		posts, err := pipeline.ExtractPosts(topic)
		if err != nil {
			return err
		}

		frame, err := pipeline.NewFrame(posts)
		if err != nil {
			return err
		}
		if frame, err = frame.CleanCooked(); err != nil {
			return err
		}
		if frame, err = frame.FormatCreatedAt(); err != nil {
			return err
		}
		if frame, err = frame.Drop(
			pipeline.ColID,
			pipeline.ColAuthor,
			pipeline.ColNumber,
			pipeline.ColCreatedAt,
			pipeline.ColCleanContent,
		); err != nil {
			return err
		}

		records, err := frame.Projected()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(extractOutDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		txtPath := filepath.Join(extractOutDir, "posts.txt")
		jsonPath := filepath.Join(extractOutDir, "posts.json")

		if err := export.WritePostsTxt(records, txtPath); err != nil {
			return err
		}
		if err := export.WritePostsJSON(records, jsonPath); err != nil {
			return err
		}
		if extractSplitDir != "" {
			if err := export.WritePostFiles(records, extractSplitDir); err != nil {
				return err
			}
		}

		logger.Info().
			Int("posts", len(records)).
			Str("txt", txtPath).
			Str("json", jsonPath).
			Msg("topic extracted")
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutDir, "out-dir", "o", ".", "directory for posts.txt and posts.json")
	extractCmd.Flags().StringVar(&extractSplitDir, "split-dir", "", "also write one file per post into this directory")
	rootCmd.AddCommand(extractCmd)
}
