package report_case

import (
	"context"
	"fmt"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/abstraction/cache"
	report_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/rs/zerolog/log"
)

// loadTasks liest die Aufgabenliste aus dem Cache oder der Datenbank. Gecacht wird nur die Eingabe,
// die Raster werden bei jedem Aufruf neu berechnet.
func (s *ReportService) loadTasks(ctx context.Context, filter *entity.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError) {
	cacheKey := ""
	gen, genErr := s.cache.Generation(ctx, cache.TaskGenerationKey)
	if genErr != nil {
		log.Warn().Err(genErr).Msg("Failed to read task cache generation, bypassing cache")
	} else {
		cacheKey = taskListCacheKey(gen, filter)

		var cached []entity.TaskEntity
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("Failed to read task list from cache")
		} else if found {
			return cached, nil
		}
	}

	tasks, err := s.repo.ListTasksForMonth(ctx, filter)
	if err != nil {
		if err.Code >= 500 {
			log.Error().Err(err).Int("month", filter.Month).Int("year", filter.Year).Msg("Failed to fetch tasks for monthly sheet")
			return nil, app_errors.NewUnavailableError("report.upstream_unavailable", err)
		}
		return nil, err
	}

	if tasks == nil {
		tasks = []entity.TaskEntity{}
	}

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, tasks, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("Failed to cache task list")
		}
	}

	return tasks, nil
}

func (s *ReportService) buildSheet(filter *entity.TaskListFilter, tasks []entity.TaskEntity) *report_dto.MonthlySheetResponse {
	result := s.sheet.Aggregate(tasks, time.Month(filter.Month), filter.Year)

	rows := make([]report_dto.TaskRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, report_dto.TaskRow{
			ID:         task.ID,
			Title:      task.Title,
			AssignedTo: task.AssignedTo,
			Company:    task.Company,
			StartDate:  task.StartDate,
			EndDate:    task.EndDate,
			Priority:   task.Priority,
			Status:     task.Status,
			Progress:   task.Progress,
		})
	}

	return &report_dto.MonthlySheetResponse{
		Month:       filter.Month,
		Year:        filter.Year,
		DaysInMonth: result.DaysInMonth,
		Filter:      *filter,
		Tasks:       rows,
		StatusGrid:  result.StatusGrid,
		DetailGrid:  result.DetailGrid,
		Summary:     worksheet.Summarize(result.StatusGrid, result.DetailGrid),
	}
}

func taskListCacheKey(gen int64, filter *entity.TaskListFilter) string {
	return fmt.Sprintf("report:tasks:%d:%04d-%02d:role=%s:user=%s:company=%s",
		gen, filter.Year, filter.Month,
		orEmpty(filter.Role), orEmpty(filter.UserID), orEmpty(filter.CompanyID),
	)
}

func exportCacheKey(exportID string) string {
	return "report:export:" + exportID
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
