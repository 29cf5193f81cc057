// Package app contains the Cobra command tree for usagelens.
package app

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagJSON    bool
	flagNoColor bool
	flagVerbose bool
	flagLang    string
)

// logger emits diagnostics to stderr; debug level is gated on --verbose.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var rootCmd = &cobra.Command{
	Use:   "usagelens",
	Short: "Analytics for AI-assisted development usage",
	Long: `usagelens ingests per-session developer-tool usage records (tokens, cost,
active time, tool invocations, files touched) and turns them into aggregated
statistics, efficiency indicators, multi-period trends, and natural-language
insights and recommendations in English or Chinese.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("usagelens", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  stats     Aggregate usage records into basic statistics")
		fmt.Println("  analyze   Full report: efficiency, cost, trends, insights")
		fmt.Println("  trends    Multi-period trend analysis with charts")
		fmt.Println("  track     Snapshot metrics and compare runs over time")
		return nil
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/usagelens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose diagnostics")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Insight language: en-US or zh-CN (default from config)")
}
