package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/billable-hours/internal/config"
	"github.com/Tiliavir/billable-hours/internal/logging"
	"github.com/Tiliavir/billable-hours/internal/model"
	"github.com/Tiliavir/billable-hours/internal/storage"
)

var (
	siteFlag string

	// Set by loadEnvironment before any subcommand runs.
	dataDir string
	appCfg  config.Config
)

var rootCmd = &cobra.Command{
	Use:   "bhr",
	Short: "Billable hours resolver for site timesheets",
	Long: `bhr resolves how many hours of a plant, operator or subcontract
timesheet may be billed under a site's minimum-hour, rain-day and
breakdown rules. Records are stored as JSON files in ~/.bhr/
(or $BHR_HOME); site rules live in ~/.bhr/config.yaml.`,
	PersistentPreRunE: loadEnvironment,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteFlag, "site", "", "Site whose billing rules apply (default: default_site from config)")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sitesCmd)
}

func loadEnvironment(cmd *cobra.Command, args []string) error {
	logging.Setup(os.Stderr)

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg, err := config.Load(config.FilePath(base))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for _, w := range cfg.Warnings() {
		slog.Warn("suspicious billing configuration", "detail", w)
	}

	dataDir = base
	appCfg = cfg
	return nil
}

// siteBilling returns the name and billing rules of the requested site,
// exiting with a usage error when it is not configured.
func siteBilling(name string) (string, model.BillingConfig) {
	if name == "" {
		name = appCfg.DefaultSite
	}
	bc, err := appCfg.Site(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return name, bc
}
