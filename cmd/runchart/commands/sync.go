package commands

import (
	"runchart/internal/activitylog"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch new activities from the tracker into the local cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := activitylog.NewStore()

		for _, sport := range cfg.Sports {
			if err := store.Load(cfg.CacheDir, sport); err != nil {
				return err
			}

			cursor := store.LatestStart(sport)
			activities, err := trackerClient.Activities(cmd.Context(), cursor)
			if err != nil {
				return err
			}

			before := store.Count(sport)
			store.Append(sport, activities)
			if err := store.Save(cfg.CacheDir, sport); err != nil {
				return err
			}

			log.Info().
				Str("sport", sport).
				Int("fetched", len(activities)).
				Int("new", store.Count(sport)-before).
				Int("cached", store.Count(sport)).
				Msg("Sync complete")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
