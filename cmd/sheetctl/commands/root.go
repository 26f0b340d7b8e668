package commands

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetctl",
	Short: "Offline-Werkzeug für Monatsübersichten",
	Long: `sheetctl berechnet die Monatsübersicht aus einem Aufgaben-Export (JSON oder YAML),
ohne Datenbank oder Redis. Außerdem erzeugt es Schlüssel und Entwickler-Tokens.

Examples:
  # Monatsübersicht für März 2024
  sheetctl sheet tasks.yaml --month 3 --year 2024

  # Nachsichtige Abschlussregel, Ausgabe als JSON
  sheetctl sheet tasks.json --month 3 --year 2024 --lenient --output json

  # Entwickler-Token für einen Manager
  sheetctl token --user-id 0190... --role manager --company-id 0190...`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Ausgabeformat (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug-Logging aktivieren")

	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(digestCmd)
}
