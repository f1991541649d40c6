package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/punoko/hfr/lib/configutil"
	"github.com/punoko/hfr/lib/serviceutil"
	"github.com/punoko/hfr/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hfr",
	Short: "hfr scrapes forum.hardware.fr threads into prediction and activity leaderboards.",
}

var debug *bool

func init() {
	debug = rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging.")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debug {
			telemetry.InitSlog(true)
		}
	}
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// TopicConfig is one thread's crawl settings; zero values fall back to
// the compiled-in defaults.
type TopicConfig struct {
	TopicUrl  string `json:"topic_url"`
	StartPage int    `json:"start_page"`
	PageLimit int    `json:"page_limit"`
}

type Config struct {
	Nba      TopicConfig `json:"nba"`
	Olympics TopicConfig `json:"olympics"`
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

// resolveTopic layers the optional config file section and flag
// overrides over the compiled-in defaults.
func resolveTopic(def, file TopicConfig, start, limit int) TopicConfig {
	out := def
	if file.TopicUrl != "" {
		out.TopicUrl = file.TopicUrl
	}
	if file.StartPage > 0 {
		out.StartPage = file.StartPage
	}
	if file.PageLimit > 0 {
		out.PageLimit = file.PageLimit
	}
	if start > 0 {
		out.StartPage = start
	}
	if limit > 0 {
		out.PageLimit = limit
	}
	return out
}

func newSummaryTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stderr)
	return t
}
