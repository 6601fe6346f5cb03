package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/nutshell/internal/config"
	"github.com/sandevgo/nutshell/internal/service/ui"
	"github.com/sandevgo/nutshell/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the logged query interactions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		recs, err := sqlite.NewInteractions(db).List(ctx)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("no interactions logged yet")
			return nil
		}

		for _, rec := range recs {
			header := fmt.Sprintf("%s  %s  %s",
				rec.Timestamp.Local().Format(time.DateTime), rec.Model, rec.ID)
			fmt.Println(ui.TitleStyle.Render(header))
			fmt.Println(ui.UsageStyle.Render("Q: ") + rec.Question)
			fmt.Println(ui.DescStyle.Render("A: ") + firstLine(rec.Response))
			fmt.Println()
		}
		return nil
	},
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
