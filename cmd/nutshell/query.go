package main

import (
	"fmt"

	"github.com/sandevgo/nutshell/internal/config"
	"github.com/sandevgo/nutshell/internal/providers/llm"
	"github.com/sandevgo/nutshell/internal/service/query"
	"github.com/sandevgo/nutshell/internal/storage/sqlite"
	"github.com/sandevgo/nutshell/pkg/conv"
	"github.com/sandevgo/nutshell/pkg/log"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <file> <question>",
	Short: "Ask a question about an extracted topic file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		provider, err := llm.NewProvider(ctx, config.NewLLMConfig(ctx))
		if err != nil {
			return err
		}

		svc := query.NewService(provider, sqlite.NewInteractions(db))
		rec, err := svc.AskFile(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Println(conv.MarkdownToText([]byte(rec.Response)))
		log.FromCtx(ctx).Info().Str("interaction_id", rec.ID).Str("model", rec.Model).Msg("query answered")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
