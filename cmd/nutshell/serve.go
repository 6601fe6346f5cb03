package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/nutshell/internal/config"
	"github.com/sandevgo/nutshell/internal/providers/llm"
	"github.com/sandevgo/nutshell/internal/service/query"
	"github.com/sandevgo/nutshell/internal/storage/sqlite"
	"github.com/sandevgo/nutshell/internal/transport/telegram"
	"github.com/sandevgo/nutshell/pkg/log"
	"github.com/sandevgo/nutshell/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot answering questions about a topic file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()
		logger := log.FromCtx(ctx)

		appCfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}

		provider, err := llm.NewProvider(ctx, config.NewLLMConfig(ctx))
		if err != nil {
			return err
		}
		svc := query.NewService(provider, sqlite.NewInteractions(db))

		bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), svc)
		if err != nil {
			return err
		}

		services := []srv.Service{
			bot,
			srv.NewCleanup(db.Close),
		}

		logger.Info().Msg("starting nutshell bot")
		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("nutshell bot has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
