// Package report renders the end-of-run summary with secret values masked.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shiftbase/sbdeploy/pipeline"
)

// WriteSummary prints the created resources and applied settings. Every
// setting flagged secret is shown as the fixed mask token; the literal value
// is never written, even partially.
func WriteSummary(w io.Writer, result *pipeline.RunResult) error {
	fmt.Fprintf(w, "\nDeployment %s-%d (%s)\n", result.Identity.Prefix, result.Identity.Suffix, result.Outcome)
	if result.Account.SubscriptionID != "" {
		fmt.Fprintf(w, "Subscription: %s (%s)\n", result.Account.DisplayName, result.Account.SubscriptionID)
	}

	fmt.Fprintln(w, "\nResources:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME\tLOCATION")
	for _, r := range result.Resources {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Kind, r.Name, r.Location)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if result.ReachedSettings {
		fmt.Fprintln(w, "\nSettings:")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, s := range result.Settings.Redacted() {
			fmt.Fprintf(tw, "%s\t%s\n", s.Key, s.Value)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\nWarning: %s\n", warning)
	}
	return nil
}
