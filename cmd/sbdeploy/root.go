package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	configPath string
	journalDir string

	rootCmd = &cobra.Command{
		Use:   "sbdeploy",
		Short: "Shiftbase sync function deployer",
		Long: `sbdeploy - Shiftbase sync function deployer

Provisions the fixed Azure resource set behind the shiftbase-sync
function: resource group, storage account, Application Insights
component and a Linux consumption-plan Function App, then applies
the application settings.

Each run derives fresh names from the project prefix and a random
suffix; there is no rollback of partially created resources.`,
		Version: version,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`sbdeploy {{.Version}} - Shiftbase sync function deployer
`)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sbdeploy.yaml", "Path to deployment config")
	rootCmd.PersistentFlags().StringVar(&journalDir, "journal-dir", defaultJournalDir(), "Directory for the run journal")
}

func defaultJournalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sbdeploy"
	}
	return filepath.Join(home, ".sbdeploy")
}
