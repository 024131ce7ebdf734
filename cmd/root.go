package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pulsemart",
	Short: "Smart Farming storefront listing page",
	Long: `pulsemart serves the Smart Farming dApp listing page: a header with
login and demo links, one card per pulse in the catalog, and a footer with
the current year. It can also prerender the page for static hosting.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".pulsemart.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
