package worker_handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

var errDigestUndelivered = errors.New("monthly digest could not be delivered to any user")

func (wh *WorkerHander) ExportMonthlyReport() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.ExportMonthlyReportPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Invalid export payload")
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		if err := wh.reports.BuildExport(ctx, &p); err != nil {
			log.Error().Err(err).Str("export_id", p.ExportID).Msg("Worker handler: Error occured when building export")
			if !err.Retryable {
				return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
			}
			return err
		}

		return nil
	}
}

// MonthlySummaryDigest verschickt jedem aktiven Benutzer seine Monatszusammenfassung.
// Ohne Payload (Cron) wird der Vormonat verwendet.
func (wh *WorkerHander) MonthlySummaryDigest() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		month, year := previousMonth(wh.now())
		if len(t.Payload()) > 0 {
			var p worker_task.MonthlySummaryDigestPayload
			if err := json.Unmarshal(t.Payload(), &p); err != nil {
				return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
			}
			if p.Month >= 1 && p.Month <= 12 && p.Year > 0 {
				month, year = p.Month, p.Year
			}
		}

		users, err := wh.ur.ListActiveUsers(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when list active users")
			return err
		}
		if len(users) == 0 {
			return nil
		}

		attempted, sent := 0, 0
		for i := range users {
			user := &users[i]

			summary, err := wh.reports.UserMonthlySummary(ctx, user, month, year)
			if err != nil {
				log.Error().Err(err).Str("user_id", user.ID).Msg("Worker handler: Error occured when building summary")
				attempted++
				continue
			}
			if summary.TotalWorkDays == 0 {
				continue
			}
			attempted++

			if err := wh.mailer.SendMonthlySummary(user, month, year, summary); err != nil {
				log.Error().Err(err).Str("user_id", user.ID).Msg("Worker handler: Error occured when trying to send email.")
				continue
			}
			sent++
		}

		log.Info().Int("month", month).Int("year", year).Int("sent", sent).Msg("Monthly digest finished")
		if attempted > 0 && sent == 0 {
			return errDigestUndelivered
		}
		return nil
	}
}

func previousMonth(now time.Time) (int, int) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prev := first.AddDate(0, -1, 0)
	return int(prev.Month()), prev.Year()
}
