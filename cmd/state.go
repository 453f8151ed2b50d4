package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hartmut/reprise/internal/section"
)

var stateCmd = &cobra.Command{
	Use:   "state <section-id> <active|maintenance|inactive>",
	Short: "Change a section's lifecycle state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var to section.State
		switch strings.ToLower(args[1]) {
		case "active":
			to = section.Active
		case "maintenance":
			to = section.Maintenance
		case "inactive":
			to = section.Inactive
		default:
			return fmt.Errorf("unknown state %q (active, maintenance, inactive)", args[1])
		}

		report, err := svc.Transition(cmd.Context(), args[0], to)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s -> %s\n", report.SectionID,
			strings.ToLower(report.From.String()), strings.ToLower(report.To.String()))
		if report.NextReview != nil {
			fmt.Printf("Next review %s (in %d days)\n",
				report.NextReview.Format("2006-01-02"), report.IntervalDays)
		}
		for _, effect := range report.SideEffects {
			if effect.Err != nil {
				fmt.Printf("Warning: %s failed: %v\n", effect.Name, effect.Err)
			}
		}
		return nil
	},
}
