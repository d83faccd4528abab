package main

import (
	"fmt"
	"os"

	"github.com/peakops/website/internal/seo"
	"github.com/spf13/cobra"
)

var sitemapBaseURL string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Print the sitemap the server would serve",
	Run: func(cmd *cobra.Command, args []string) {
		out, err := seo.BuildSitemap(sitemapBaseURL)
		if err != nil {
			logger.Error("Failed to build sitemap: %v", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	sitemapCmd.Flags().StringVar(&sitemapBaseURL, "base-url", "https://peakops.club", "Base URL to use for sitemap entries")
}
