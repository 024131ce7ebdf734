package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartfarming/pulsemart/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .pulsemart.yml",
	Long:  `Writes the default configuration to the config path so it can be edited. Refuses to overwrite an existing file unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}
		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
