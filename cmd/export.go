package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartfarming/pulsemart/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Prerender the listing page for static hosting",
	Long:  `Writes index.html, style.css and placeholder.svg to the output directory. The footer year is fixed to the time of export.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	res, err := export.NewExporter(outputDir, log).Export(context.Background(), renderer, cat)
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static page exported: %s (%d cards, %d files)\n", outputDir, res.Cards, len(res.Files))
	return nil
}
