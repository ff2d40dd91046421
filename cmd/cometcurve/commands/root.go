// Public domain.

// Package commands implements the cometcurve subcommands.
package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	finkBase     string
	horizonsBase string
	siteCode     string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cometcurve",
		Short: "Comet light curves from alert brokers, with activity-model predictions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			godotenv.Load() // .env is optional
			if finkBase == "" {
				finkBase = os.Getenv("FINK_BASE_URL")
			}
			if horizonsBase == "" {
				horizonsBase = os.Getenv("HORIZONS_BASE_URL")
			}
			if siteCode == "" {
				siteCode = os.Getenv("HORIZONS_SITE_CODE")
			}
		},
	}
	root.PersistentFlags().StringVar(&finkBase, "fink", "",
		"Fink portal base URL")
	root.PersistentFlags().StringVar(&horizonsBase, "horizons", "",
		"JPL Horizons API base URL")
	root.PersistentFlags().StringVar(&siteCode, "site", "",
		"MPC observatory code of the observer (default I41, ZTF)")

	root.AddCommand(fetchCmd(), predictCmd())
	return root.Execute()
}
