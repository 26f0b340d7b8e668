package report_case

import (
	"context"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/abstraction/cache"
	"github.com/Xenn-00/arbeitszeit-meister/internal/config"
	report_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/Xenn-00/arbeitszeit-meister/internal/queue"
	task_repo "github.com/Xenn-00/arbeitszeit-meister/internal/repo/task-repo"
	user_repo "github.com/Xenn-00/arbeitszeit-meister/internal/repo/user-repo"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ReportService struct {
	repo      task_repo.TaskRepoContract
	userRepo  user_repo.UserRepoContract
	cache     cache.Cache
	taskQueue queue.TaskQueueClient
	tracker   *RequestTracker
	sheet     *worksheet.Sheet
	cacheTTL  time.Duration
	exportTTL time.Duration
	now       func() time.Time
}

func NewReportService(db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig) ReportServiceContract {
	rule := worksheet.RuleAllCompleted
	if cfg.REPORT.Lenient {
		rule = worksheet.RuleNoneOpen
	}

	return &ReportService{
		repo:      task_repo.NewTaskRepo(db),
		userRepo:  user_repo.NewUserRepo(db),
		cache:     cache.NewRedisCache(redis),
		taskQueue: queue.NewTaskQueue(redis),
		tracker:   NewRequestTracker(),
		sheet:     worksheet.New(worksheet.WithCompletionRule(rule)),
		cacheTTL:  cfg.REPORT.TaskCacheTTL,
		exportTTL: cfg.REPORT.ExportTTL,
		now:       time.Now,
	}
}

func (s *ReportService) MonthlySheet(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*report_dto.MonthlySheetResponse, *app_errors.AppError) {
	key := trackerKey(actor, "sheet")
	ctx, ticket, done := s.tracker.Begin(ctx, key)
	defer done()

	filter, tasks, err := s.collect(ctx, actor, query)

	// Eine neuere Anfrage desselben Benutzers hat diese abgelöst; das Ergebnis ist nicht mehr aktuell.
	if !s.tracker.IsLatest(key, ticket) {
		log.Debug().Str("user_id", actor.UserID).Uint64("ticket", ticket).Msg("monthly sheet request superseded")
		return nil, supersededError()
	}
	if err != nil {
		// Ist die Datenquelle nur vorübergehend weg, gibt es ein leeres Raster neben dem Fehler.
		if err.Retryable && filter != nil {
			return s.buildSheet(filter, []entity.TaskEntity{}), err
		}
		return nil, err
	}

	return s.buildSheet(filter, tasks), nil
}

func (s *ReportService) MonthlyReport(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*report_dto.MonthlyReportResponse, *app_errors.AppError) {
	key := trackerKey(actor, "report")
	ctx, ticket, done := s.tracker.Begin(ctx, key)
	defer done()

	filter, tasks, err := s.collect(ctx, actor, query)
	if !s.tracker.IsLatest(key, ticket) {
		log.Debug().Str("user_id", actor.UserID).Uint64("ticket", ticket).Msg("monthly report request superseded")
		return nil, supersededError()
	}
	if err != nil {
		if err.Retryable && filter != nil {
			empty := []entity.TaskEntity{}
			return &report_dto.MonthlyReportResponse{
				Sheet:  s.buildSheet(filter, empty),
				Report: worksheet.BuildTaskReport(empty),
			}, err
		}
		return nil, err
	}

	return &report_dto.MonthlyReportResponse{
		Sheet:  s.buildSheet(filter, tasks),
		Report: worksheet.BuildTaskReport(tasks),
	}, nil
}

func (s *ReportService) ListFilterUsers(ctx context.Context, actor entity.Actor, query *report_dto.FilterUsersQuery) ([]report_dto.FilterUserItem, *app_errors.AppError) {
	filter := &entity.UserListFilter{}

	switch actor.Role {
	case entity.RoleAdmin:
		filter.Role = query.Role
	case entity.RoleManager:
		if actor.CompanyID == nil {
			return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
		}
		staff := string(entity.RoleStaff)
		filter.Role = &staff
		filter.CompanyID = actor.CompanyID
	case entity.RoleStaff:
		self := actor.UserID
		filter.UserID = &self
	default:
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
	}

	users, err := s.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]report_dto.FilterUserItem, 0, len(users))
	for _, u := range users {
		items = append(items, report_dto.FilterUserItem{
			ID:          u.ID,
			Name:        u.Name,
			Role:        u.Role,
			CompanyID:   u.CompanyID,
			CompanyName: u.CompanyName,
		})
	}

	return items, nil
}

// UserMonthlySummary berechnet die Monatszusammenfassung über alle Aufgaben eines Benutzers.
func (s *ReportService) UserMonthlySummary(ctx context.Context, user *entity.UserEntity, month, year int) (*worksheet.Summary, *app_errors.AppError) {
	userID := user.ID
	filter := &entity.TaskListFilter{Month: month, Year: year, UserID: &userID}

	tasks, err := s.loadTasks(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := s.sheet.Aggregate(tasks, time.Month(month), year)
	summary := worksheet.Summarize(result.StatusGrid, result.DetailGrid)
	return &summary, nil
}

func (s *ReportService) collect(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*entity.TaskListFilter, []entity.TaskEntity, *app_errors.AppError) {
	filter, err := s.scopeFilter(ctx, actor, query)
	if err != nil {
		return nil, nil, err
	}

	// Der Filter wird auch im Fehlerfall zurückgegeben, damit ein leeres Raster gebaut werden kann.
	tasks, err := s.loadTasks(ctx, filter)
	if err != nil {
		return filter, nil, err
	}

	return filter, tasks, nil
}

func supersededError() *app_errors.AppError {
	return app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "conflict.request_superseded", nil)
}

func trackerKey(actor entity.Actor, view string) string {
	return actor.UserID + ":" + view
}
