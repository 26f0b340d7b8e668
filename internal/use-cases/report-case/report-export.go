package report_case

import (
	"context"
	"time"

	report_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func (s *ReportService) RequestExport(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*report_dto.ExportResponse, *app_errors.AppError) {
	filter, err := s.scopeFilter(ctx, actor, query)
	if err != nil {
		return nil, err
	}

	exportID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	record := &report_dto.ExportResponse{
		ExportID:    exportID.String(),
		Status:      report_dto.ExportPending,
		RequestedBy: actor.UserID,
		Filter:      *filter,
		RequestedAt: s.now(),
	}

	if err := s.cache.Set(ctx, exportCacheKey(record.ExportID), record, s.exportTTL); err != nil {
		return nil, err
	}

	payload := &worker_task.ExportMonthlyReportPayload{
		ExportID:    record.ExportID,
		RequestedBy: actor.UserID,
		Filter:      *filter,
	}
	if err := s.taskQueue.EnqueueMonthlyReportExport(payload); err != nil {
		log.Error().Err(err).Str("export_id", record.ExportID).Msg("Failed to enqueue monthly export")
		// Ohne Job würde der Datensatz bis zum TTL als "pending" hängen bleiben.
		if delErr := s.cache.Del(ctx, exportCacheKey(record.ExportID)); delErr != nil {
			log.Warn().Err(delErr).Str("export_id", record.ExportID).Msg("Failed to drop pending export record")
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "report.export_enqueue_failed", err)
	}

	return record, nil
}

func (s *ReportService) GetExport(ctx context.Context, actor entity.Actor, exportID string) (*report_dto.ExportResponse, *app_errors.AppError) {
	var record report_dto.ExportResponse
	found, err := s.cache.Get(ctx, exportCacheKey(exportID), &record)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "report.export_not_found", nil)
	}

	if record.RequestedBy != actor.UserID && !actor.IsAdmin() {
		return nil, forbidden()
	}

	return &record, nil
}

// BuildExport wird vom Worker aufgerufen. Vorübergehende Fehler werden zurückgegeben, damit asynq es erneut versucht;
// alle anderen markieren den Export als fehlgeschlagen.
func (s *ReportService) BuildExport(ctx context.Context, payload *worker_task.ExportMonthlyReportPayload) *app_errors.AppError {
	key := exportCacheKey(payload.ExportID)

	var record report_dto.ExportResponse
	found, err := s.cache.Get(ctx, key, &record)
	if err != nil {
		return err
	}
	if !found {
		log.Warn().Str("export_id", payload.ExportID).Msg("Export record expired before it was built")
		return nil
	}
	if record.Status == report_dto.ExportReady {
		return nil
	}

	filter := payload.Filter
	tasks, err := s.loadTasks(ctx, &filter)
	if err != nil {
		if err.Retryable {
			return err
		}
		completedAt := s.now()
		record.Status = report_dto.ExportFailed
		record.Error = err.MessageKey
		record.CompletedAt = &completedAt
		return s.cache.Set(ctx, key, &record, s.exportTTL)
	}

	result := s.sheet.Aggregate(tasks, time.Month(filter.Month), filter.Year)
	summary := worksheet.Summarize(result.StatusGrid, result.DetailGrid)

	completedAt := s.now()
	record.Status = report_dto.ExportReady
	record.Rows = worksheet.ExportRows(tasks, result)
	record.Summary = &summary
	record.Error = ""
	record.CompletedAt = &completedAt

	log.Info().Str("export_id", record.ExportID).Int("rows", len(record.Rows)).Msg("Monthly export built")
	return s.cache.Set(ctx, key, &record, s.exportTTL)
}
