package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hartmut/reprise/internal/config"
	"github.com/hartmut/reprise/internal/logger"
	"github.com/hartmut/reprise/internal/profile"
	"github.com/hartmut/reprise/internal/store"
)

// timeNow is swappable for tests.
var timeNow = time.Now

// openService loads configuration, opens the store, and restores the
// active profile. The caller owns closing the returned store.
func openService(cmd *cobra.Command) (*profile.Service, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("profile"); p != "" {
		cfg.ProfileID = p
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	if cfg.DBPath != "" {
		if p, _ := cmd.Flags().GetString("db"); p == "" {
			dbPath = cfg.DBPath
			if err := store.EnsureDir(dbPath); err != nil {
				return nil, nil, fmt.Errorf("prepare DB dir: %w", err)
			}
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	svc := profile.NewService(profile.Options{
		ProfileID:        cfg.ProfileID,
		Snapshots:        st.SnapshotRepo(),
		Events:           st.EventRepo(),
		Sessions:         st.ScheduledSessionRepo(),
		Logger:           log.With(zap.String("profile_id", cfg.ProfileID)),
		RetentionTarget:  cfg.RetentionTarget,
		EstimatedMinutes: cfg.EstimatedMinutes,
	})
	if err := svc.Load(cmd.Context()); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("restore profile: %w", err)
	}
	return svc, st, nil
}

// runSummary prints a short profile overview for the bare root command.
func runSummary(cmd *cobra.Command) error {
	svc, st, err := openService(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	due := svc.DueSections(timeNow())
	cal := svc.CalibrationStats()

	fmt.Printf("Sections due today: %d\n", len(due))
	for _, d := range due {
		fmt.Printf("  %s", d.Section.ID)
		if d.OverdueDays >= 1 {
			fmt.Printf("  (%.0f days overdue)", d.OverdueDays)
		}
		fmt.Println()
	}
	if cal.IsCalibrated {
		fmt.Printf("Calibration: personalized (%d sessions)\n", cal.TotalSessions)
	} else {
		fmt.Printf("Calibration: building baseline (%d sessions)\n", cal.TotalSessions)
	}
	return nil
}
