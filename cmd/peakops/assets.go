package main

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/peakops/website/internal/assets"
	"github.com/spf13/cobra"
)

var assetsOutDir string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage generated site assets",
}

var assetsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the lead magnet PDFs",
	Run: func(cmd *cobra.Command, args []string) {
		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Generating PDFs..."
		s.Start()

		paths, err := assets.GeneratePDFs(assetsOutDir)
		s.Stop()

		if err != nil {
			logger.Error("Failed to generate PDFs: %v", err)
			os.Exit(1)
		}
		for _, path := range paths {
			logger.Info("Wrote %s", path)
		}
		logger.Info("Generated %d PDFs in %s", len(paths), assetsOutDir)
	},
}

func init() {
	assetsGenerateCmd.Flags().StringVar(&assetsOutDir, "out", "web/static/pdfs", "Directory to write generated PDFs to")
	assetsCmd.AddCommand(assetsGenerateCmd)
}
