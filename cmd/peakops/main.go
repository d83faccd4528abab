package main

import (
	"os"

	"github.com/peakops/website/internal/logging"
	"github.com/peakops/website/internal/version"
	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger() {
	logConfig := &logging.Config{
		Level:      "info",
		File:       "~/.peakops/cli.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger = logging.GetGlobalLogger()
}

var rootCmd = &cobra.Command{
	Use:   "peakops",
	Short: "PeakOps website operations tool",
	Long:  "Operational helper for the PeakOps Automation website: health checks, asset generation and sitemap inspection.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Info("PeakOps CLI version: %s", version.String())
	},
}

func init() {
	initLogger()
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(sitemapCmd)
	rootCmd.AddCommand(assetsCmd)
}

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed: %v", err)
		os.Exit(1)
	}
}
