package commands

import (
	"fmt"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/config"
	"github.com/Xenn-00/arbeitszeit-meister/internal/db"
	"github.com/Xenn-00/arbeitszeit-meister/internal/queue"
	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	digestMonth int
	digestYear  int
	digestAt    string
)

// digestCmd reiht die Monatszusammenfassung außerhalb des Cron-Laufs ein, z. B. nach einem Ausfall am Monatsersten.
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Monatszusammenfassung per Mail manuell einreihen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, processAt, err := digestRequest(digestMonth, digestYear, digestAt, time.Now())
		if err != nil {
			return err
		}

		cfg := config.LoadConfig()
		if cfg == nil {
			return fmt.Errorf("application.yaml could not be loaded")
		}
		rdb, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
		if err != nil {
			return err
		}
		defer rdb.Close()

		if err := queue.NewTaskQueue(rdb).EnqueueMonthlySummaryDigest(payload, processAt); err != nil {
			return err
		}

		log.Info().Int("month", payload.Month).Int("year", payload.Year).Time("process_at", processAt).Msg("digest enqueued")
		fmt.Fprintf(cmd.OutOrStdout(), "digest for %02d/%d enqueued\n", payload.Month, payload.Year)
		return nil
	},
}

// digestRequest prüft die Flags. Ohne Monat bleibt die Payload leer und der Worker nimmt den Vormonat.
func digestRequest(month, year int, at string, now time.Time) (*worker_task.MonthlySummaryDigestPayload, time.Time, error) {
	payload := &worker_task.MonthlySummaryDigestPayload{}
	if month != 0 {
		if month < 1 || month > 12 {
			return nil, time.Time{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
		}
		if year == 0 {
			year = now.Year()
		}
		payload.Month, payload.Year = month, year
	}

	processAt := now
	if at != "" {
		t, err := time.ParseInLocation("2006-01-02 15:04", at, time.Local)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("invalid --at %q, expected YYYY-MM-DD HH:MM", at)
		}
		processAt = t
	}
	return payload, processAt, nil
}

func init() {
	digestCmd.Flags().IntVarP(&digestMonth, "month", "m", 0, "Monat 1-12 (Standard: Vormonat)")
	digestCmd.Flags().IntVarP(&digestYear, "year", "y", 0, "Jahr (Standard: aktuelles Jahr)")
	digestCmd.Flags().StringVar(&digestAt, "at", "", "Zeitpunkt \"YYYY-MM-DD HH:MM\" (Standard: sofort)")
}
