package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/punoko/hfr/lib/crawl"
	"github.com/punoko/hfr/lib/scrapers/hfr"
	"github.com/punoko/hfr/lib/serviceutil"
	"github.com/punoko/hfr/services/prono"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var nbaDefaults = TopicConfig{
	TopicUrl:  "https://forum.hardware.fr/hfr/Discussions/Sports/basket-nba-prono-sujet_20548",
	StartPage: 6652,
	PageLimit: 5,
}

var (
	nbaStart *int
	nbaLimit *int
)

func init() {
	nbaStart = nbaCmd.Flags().Int("start", 0, "First page to fetch, overrides config.")
	nbaLimit = nbaCmd.Flags().Int("limit", 0, "Maximum number of pages to fetch, overrides config.")
	rootCmd.AddCommand(nbaCmd)
}

var nbaCmd = &cobra.Command{
	Use:   "nba [--start <page>] [--limit <pages>]",
	Short: "Scrapes the NBA playoff prediction thread and exports one CSV line per valid post.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveTopic(nbaDefaults, readConfig().Nba, *nbaStart, *nbaLimit)
		client := hfr.NewClient(hfr.ClientOptions{TopicUrl: cfg.TopicUrl})

		t1 := time.Now()
		entries, pages, err := prono.Crawl(cmd.Context(), client, crawl.Options{
			StartPage: cfg.StartPage,
			PageLimit: cfg.PageLimit,
		})
		if err != nil {
			serviceutil.Fatal("crawl failed", err)
		}

		prono.Export(os.Stdout, entries)

		t := newSummaryTable()
		t.AppendHeader(table.Row{"pages", "entries", "seconds"})
		t.AppendRow(table.Row{pages, entries.Len(), fmt.Sprintf("%.2f", time.Since(t1).Seconds())})
		t.Render()
	},
}
