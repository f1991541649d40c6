package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/punoko/hfr/lib/crawl"
	"github.com/punoko/hfr/lib/scrapers/hfr"
	"github.com/punoko/hfr/lib/serviceutil"
	"github.com/punoko/hfr/services/olympics"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var olympicsDefaults = TopicConfig{
	TopicUrl:  "https://forum.hardware.fr/hfr/Discussions/Sports/olympiques-objectif-medailles-sujet_111788",
	StartPage: 1,
	PageLimit: 5000,
}

var (
	olympicsStart *int
	olympicsLimit *int
)

func init() {
	olympicsStart = olympicsCmd.Flags().Int("start", 0, "First page to fetch, overrides config.")
	olympicsLimit = olympicsCmd.Flags().Int("limit", 0, "Maximum number of pages to fetch, overrides config.")
	rootCmd.AddCommand(olympicsCmd)
}

var olympicsCmd = &cobra.Command{
	Use:   "olympics [--start <page>] [--limit <pages>]",
	Short: "Scrapes the olympics thread and prints quote, user, emote, image and activity leaderboards.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveTopic(olympicsDefaults, readConfig().Olympics, *olympicsStart, *olympicsLimit)
		client := hfr.NewClient(hfr.ClientOptions{TopicUrl: cfg.TopicUrl})

		t1 := time.Now()
		entries, counters, pages, err := olympics.Crawl(cmd.Context(), client, crawl.Options{
			StartPage: cfg.StartPage,
			PageLimit: cfg.PageLimit,
		})
		if err != nil {
			serviceutil.Fatal("crawl failed", err)
		}

		report := olympics.BuildReport(entries, counters)
		report.Print(os.Stdout)

		t := newSummaryTable()
		t.AppendHeader(table.Row{"pages", "entries", "users", "seconds"})
		t.AppendRow(table.Row{pages, entries.Len(), len(counters.Users), fmt.Sprintf("%.2f", time.Since(t1).Seconds())})
		t.Render()
	},
}
