package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shiftbase/sbdeploy/config"
	"github.com/shiftbase/sbdeploy/naming"
	"github.com/shiftbase/sbdeploy/types"
)

// planCmd derives and prints the names a fresh run would use, without any
// cloud call. Useful to check the storage-account grammar before deploying.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the names a new run would create, without provisioning",
	Example: `  sbdeploy plan
  sbdeploy plan -c deploy/prod.yaml`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	identity := naming.NewIdentity(cfg.Prefix)
	storageName, err := identity.StorageAccount()
	if err != nil {
		return err
	}

	fmt.Printf("Plan for prefix %q (suffix %d, location %s):\n\n", cfg.Prefix, identity.Suffix, cfg.Location)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME")
	fmt.Fprintf(tw, "%s\t%s\n", types.KindResourceGroup, identity.ResourceGroup())
	fmt.Fprintf(tw, "%s\t%s\n", types.KindStorageAccount, storageName)
	fmt.Fprintf(tw, "%s\t%s\n", types.KindTelemetryComponent, identity.TelemetryComponent())
	fmt.Fprintf(tw, "%s\t%s\n", types.KindFunctionHost, identity.FunctionHost())
	return tw.Flush()
}
