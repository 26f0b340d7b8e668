package report_case

import (
	"context"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	use_cases "github.com/Xenn-00/arbeitszeit-meister/internal/use-cases"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/goccy/go-json"
)

var fixedNow = time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)

func newTestService(repo *MockTaskRepo, userRepo *MockUserRepo, c *use_cases.MockCache, q *use_cases.MockTaskQueue) *ReportService {
	return &ReportService{
		repo:      repo,
		userRepo:  userRepo,
		cache:     c,
		taskQueue: q,
		tracker:   NewRequestTracker(),
		sheet:     worksheet.New(),
		cacheTTL:  time.Minute,
		exportTTL: time.Hour,
		now:       func() time.Time { return fixedNow },
	}
}

// memoryCache speichert JSON wie der Redis-Cache, nur im Speicher.
func memoryCache() (*use_cases.MockCache, map[string][]byte) {
	store := map[string][]byte{}
	c := &use_cases.MockCache{
		GetFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
			raw, ok := store[key]
			if !ok {
				return false, nil
			}
			if err := json.Unmarshal(raw, dest); err != nil {
				return false, app_errors.NewAppError(500, app_errors.ErrInternal, "internal_error", err)
			}
			return true, nil
		},
		SetFn: func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError {
			raw, err := json.Marshal(val)
			if err != nil {
				return app_errors.NewAppError(500, app_errors.ErrInternal, "internal_error", err)
			}
			store[key] = raw
			return nil
		},
		DelFn: func(ctx context.Context, key string) error {
			delete(store, key)
			return nil
		},
	}
	return c, store
}

func strPtr(s string) *string {
	return &s
}

// marchTask: 1. bis 10. März 2024, Tag 5 erledigt (4h), Tag 6 in Arbeit (2h).
func marchTask(id, assignee string) entity.TaskEntity {
	return entity.TaskEntity{
		ID:         id,
		Title:      "Inventur " + id,
		AssignedTo: entity.UserRef{ID: assignee, Name: "Name " + assignee},
		Company:    entity.CompanyRef{ID: "company-1", Name: "Muster GmbH"},
		StartDate:  entity.NewDate(2024, time.March, 1),
		EndDate:    entity.NewDate(2024, time.March, 10),
		Priority:   entity.PriorityMedium,
		Status:     entity.TaskInProgress,
		Days: []entity.DayEntry{
			{
				Date: entity.NewDate(2024, time.March, 5),
				SubTasks: []entity.SubTask{
					{Description: "Regale zählen", Status: entity.SubTaskCompleted, HoursSpent: 4},
				},
			},
			{
				Date: entity.NewDate(2024, time.March, 6),
				SubTasks: []entity.SubTask{
					{Description: "Lager zählen", Status: entity.SubTaskInProgress, HoursSpent: 2},
				},
			},
		},
	}
}
