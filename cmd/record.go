package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hartmut/reprise/internal/outcome"
)

var recordCmd = &cobra.Command{
	Use:   "record <section-id> <performance>",
	Short: "Record a practice session outcome",
	Long: `Record a completed practice session for a section. Performance is one
of poor, fair, good, excellent, or incomplete.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Performance names are canonically capitalized.
		name := args[1]
		if name != "" {
			name = strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
		}
		var perf outcome.Performance
		if err := perf.UnmarshalText([]byte(name)); err != nil {
			return err
		}
		reps, _ := cmd.Flags().GetInt("reps")
		execFails, _ := cmd.Flags().GetInt("exec-failures")
		memFails, _ := cmd.Flags().GetInt("memory-failures")

		res, err := svc.RecordSession(cmd.Context(), outcome.Outcome{
			SectionID:         args[0],
			Date:              timeNow(),
			Performance:       perf,
			Repetitions:       reps,
			ExecutionFailures: execFails,
			MemoryFailures:    memFails,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s for %s (score %.1f)\n", perf, res.SectionID, res.Score)
		fmt.Printf("Next review in %d days (%s)\n", res.IntervalDays, res.NextReview.Format("2006-01-02"))
		if res.StageAdvanced {
			fmt.Println("Stage advanced!")
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().Int("reps", 1, "Successful repetitions in the session")
	recordCmd.Flags().Int("exec-failures", 0, "Attempts before the first success")
	recordCmd.Flags().Int("memory-failures", 0, "Memory lapses during the session")
}
