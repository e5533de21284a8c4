package commands

import (
	"time"

	"runchart/internal/activitylog"
	"runchart/internal/content"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var openAfterBuild bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Aggregate cached activities and render the chart, heatmaps and records",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := activitylog.NewStore()
		sport := cfg.Sports[0]
		if err := store.Load(cfg.CacheDir, sport); err != nil {
			return err
		}

		builder := content.NewBuilder(cfg)
		result, err := builder.Build(cmd.Context(), store.All(sport), time.Now())
		if err != nil {
			return err
		}

		log.Info().
			Float64("currentWeekKm", result.CurrentWeekKm).
			Float64("maximum", result.Maximum).
			Str("bestWeek", result.MaxWeekLabel).
			Msg("Build finished")

		if openAfterBuild {
			if err := browser.OpenFile(builder.IndexPath()); err != nil {
				log.Warn().Err(err).Msg("Failed to open summary page")
			}
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&openAfterBuild, "open", false, "open the generated summary page")
	rootCmd.AddCommand(buildCmd)
}
