package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hartmut/reprise/internal/profile"
	"github.com/hartmut/reprise/internal/section"
	"github.com/hartmut/reprise/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [section-id]",
	Short: "Show memory and calibration statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 1 {
			return printSectionStats(cmd, svc, st.EventRepo(), args[0])
		}
		return printProfileStats(svc)
	},
}

func printSectionStats(cmd *cobra.Command, svc *profile.Service, events store.EventRepo, sectionID string) error {
	sec := svc.Section(sectionID)
	if sec == nil {
		return fmt.Errorf("unknown section %q", sectionID)
	}
	stats := svc.SectionStats(sectionID, timeNow())

	fmt.Printf("Section: %s (%s, %s)\n", sectionID,
		strings.ToLower(sec.Difficulty.String()), strings.ToLower(sec.State.String()))
	fmt.Printf("  Stage: %d (%d/%d repetitions)\n", sec.Stage, sec.CompletedReps, sec.TargetReps)
	if stats.IsNew {
		fmt.Println("  Memory: no reviews yet")
		return nil
	}
	fmt.Printf("  Reviews: %d\n", stats.ReviewCount)
	fmt.Printf("  Stability: %.1f days\n", stats.Stability)
	fmt.Printf("  Recall now: %.0f%%\n", stats.Retrievability*100)
	fmt.Printf("  Learning progress: %.0f%%\n", stats.LearningProgress*100)

	recent, err := events.RecentOutcomes(cmd.Context(), sectionID, 5)
	if err != nil {
		return fmt.Errorf("load recent outcomes: %w", err)
	}
	if len(recent) > 0 {
		fmt.Println("  Recent sessions:")
		for _, ev := range recent {
			fmt.Printf("    %s  %-10s %d reps\n",
				ev.Timestamp.Format("2006-01-02"), ev.Performance, ev.Repetitions)
		}
	}
	return nil
}

func printProfileStats(svc *profile.Service) error {
	cal := svc.CalibrationStats()
	fmt.Printf("Sessions recorded: %d\n", cal.TotalSessions)
	if cal.IsCalibrated {
		fmt.Println("Calibration: personalized")
	} else {
		fmt.Println("Calibration: building baseline")
	}

	classes := make([]section.Difficulty, 0, len(cal.ByClass))
	for class := range cal.ByClass {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	for _, class := range classes {
		a := cal.ByClass[class]
		fmt.Printf("  %-10s factor %.2f, confidence %.0f%% (%d sessions)\n",
			class, a.Factor, a.Confidence*100, a.Sessions)
	}
	return nil
}
