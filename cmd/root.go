package cmd

import (
	"github.com/hartmut/reprise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reprise",
	Short: "Spaced-repetition practice scheduler for musicians",
	Long:  "Reprise schedules reviews of piece sections along the forgetting curve,\nadapting intervals to how each player's memory actually decays.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummary(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REPRISE_DB env var)")
	rootCmd.PersistentFlags().String("profile", "", "Practice profile id (overrides REPRISE_PROFILE env var)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REPRISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
