package commands

import (
	"runchart/internal/config"
	"runchart/internal/logging"
	"runchart/internal/tracker"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	trackerClient tracker.Client
)

var rootCmd = &cobra.Command{
	Use:   "runchart",
	Short: "runchart turns tracker activities into weekly stats and SVG charts",
	Long: `runchart fetches running activities from a fitness tracker, aggregates them
into calendar-week statistics and renders a gnuplot SVG chart plus calendar
heatmaps for a static site.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		trackerClient = tracker.NewClient(cfg.Tracker)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("runchart starting")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
