package commands

import (
	"fmt"
	"time"

	"runchart/internal/activitylog"
	"runchart/internal/calweek"
	"runchart/internal/stats"

	"github.com/spf13/cobra"
)

var statsWeeks int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the weekly distance summary for cached activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := activitylog.NewStore()
		sport := cfg.Sports[0]
		if err := store.Load(cfg.CacheDir, sport); err != nil {
			return err
		}

		weeks := statsWeeks
		if weeks <= 0 {
			weeks = cfg.Weeks
		}

		result := stats.Weekly(store.All(sport), weeks, calweek.Date(time.Now()))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sport:          %s\n", sport)
		fmt.Fprintf(out, "Weeks:          %d\n", weeks)
		fmt.Fprintf(out, "Current week:   %.1f km\n", result.CurrentWeekKm)
		fmt.Fprintf(out, "Total:          %.1f km\n", result.Total)
		fmt.Fprintf(out, "Average:        %.1f km\n", result.Average)
		fmt.Fprintf(out, "Best week:      %.1f km (%s)\n", result.Maximum, result.MaxWeekLabel)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsWeeks, "weeks", 0, "trailing window length in weeks (default: configured CHART_WEEKS)")
	rootCmd.AddCommand(statsCmd)
}
