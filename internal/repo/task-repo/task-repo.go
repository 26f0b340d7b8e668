package task_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/abstraction/tx"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepo struct {
	db *pgxpool.Pool
}

func NewTaskRepo(db *pgxpool.Pool) TaskRepoContract {
	return &TaskRepo{
		db: db,
	}
}

const taskColumns = `
	t.id, t.title, t.description,
	u.id, u.name,
	c.id, c.name,
	t.start_date, t.end_date, t.priority, t.status, t.progress,
	t.total_hours, t.completed_subtasks, t.total_subtasks,
	t.created_at, t.updated_at
`

// ListTasksForMonth lädt alle Aufgaben, deren Zeitraum den Monat schneidet, samt Tagen und Teilaufgaben.
func (r *TaskRepo) ListTasksForMonth(ctx context.Context, filter *entity.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError) {
	monthStart := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	query := `SELECT ` + taskColumns + `
	FROM tasks t
	JOIN users u ON u.id = t.assigned_to
	LEFT JOIN companies c ON c.id = t.company_id
	WHERE t.start_date <= $1
		AND t.end_date >= $2
	`
	args := []any{monthEnd, monthStart}
	argsPos := 3

	if filter.Role != nil {
		query += fmt.Sprintf(" AND u.role = $%d", argsPos)
		args = append(args, *filter.Role)
		argsPos++
	}

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND t.assigned_to = $%d", argsPos)
		args = append(args, *filter.UserID)
		argsPos++
	}

	if filter.CompanyID != nil {
		query += fmt.Sprintf(" AND t.company_id = $%d", argsPos)
		args = append(args, *filter.CompanyID)
		argsPos++
	}

	query += " ORDER BY t.start_date, t.created_at, t.id;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err, "task_not_found")
	}
	defer rows.Close()

	tasks := []entity.TaskEntity{}
	index := map[string]int{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, app_errors.MapPgxError(err, "task_not_found")
		}
		index[task.ID] = len(tasks)
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err, "task_not_found")
	}

	if len(tasks) == 0 {
		return tasks, nil
	}

	if err := r.attachDays(ctx, tasks, index, monthStart, monthEnd); err != nil {
		return nil, err
	}

	return tasks, nil
}

// attachDays lädt die Tage des Monats und ihre Teilaufgaben in einer Abfrage, sortiert nach Datum.
func (r *TaskRepo) attachDays(ctx context.Context, tasks []entity.TaskEntity, index map[string]int, from, to time.Time) *app_errors.AppError {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}

	query := `
	SELECT d.id, d.task_id, d.day, d.remarks, d.hours_logged,
		s.id, s.description, s.status, s.hours_spent, s.remarks, s.created_at, s.completed_at
	FROM task_days d
	LEFT JOIN sub_tasks s ON s.task_day_id = d.id
	WHERE d.task_id = ANY($1::uuid[])
		AND d.day BETWEEN $2 AND $3
	ORDER BY d.task_id, d.day, s.created_at, s.id;
	`

	rows, err := r.db.Query(ctx, query, ids, from, to)
	if err != nil {
		return app_errors.MapPgxError(err, "task_not_found")
	}
	defer rows.Close()

	// Position des Tages innerhalb von task.Days, damit Teilaufgaben an den richtigen Eintrag gehängt werden.
	dayPos := map[string]int{}
	for rows.Next() {
		var (
			dayID, taskID string
			day           time.Time
			dayRemarks    *string
			hoursLogged   *float64
			subID         *string
			subDesc       *string
			subStatus     *string
			subHours      *float64
			subRemarks    *string
			subCreatedAt  *time.Time
			subDoneAt     *time.Time
		)
		if err := rows.Scan(&dayID, &taskID, &day, &dayRemarks, &hoursLogged,
			&subID, &subDesc, &subStatus, &subHours, &subRemarks, &subCreatedAt, &subDoneAt); err != nil {
			return app_errors.MapPgxError(err, "task_not_found")
		}

		ti, ok := index[taskID]
		if !ok {
			continue
		}
		task := &tasks[ti]

		pos, seen := dayPos[dayID]
		if !seen {
			pos = len(task.Days)
			dayPos[dayID] = pos
			task.Days = append(task.Days, entity.DayEntry{
				ID:          dayID,
				Date:        entity.DateOf(day),
				Remarks:     dayRemarks,
				HoursLogged: hoursLogged,
			})
		}

		if subID == nil {
			continue
		}
		sub := entity.SubTask{
			ID:          *subID,
			Status:      entity.SubTaskStatus(deref(subStatus)),
			Description: deref(subDesc),
			Remarks:     subRemarks,
			CreatedAt:   subCreatedAt,
			CompletedAt: subDoneAt,
		}
		if subHours != nil {
			sub.HoursSpent = *subHours
		}
		task.Days[pos].SubTasks = append(task.Days[pos].SubTasks, sub)
	}

	if err := rows.Err(); err != nil {
		return app_errors.MapPgxError(err, "task_not_found")
	}
	return nil
}

func (r *TaskRepo) GetTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	query := `SELECT ` + taskColumns + `
	FROM tasks t
	JOIN users u ON u.id = t.assigned_to
	LEFT JOIN companies c ON c.id = t.company_id
	WHERE t.id = $1;
	`

	task, err := scanTask(r.db.QueryRow(ctx, query, taskID))
	if err != nil {
		return nil, app_errors.MapPgxError(err, "task_not_found")
	}
	return task, nil
}

func (r *TaskRepo) UpsertDay(ctx context.Context, t tx.Tx, log *entity.DayLog) (string, *app_errors.AppError) {
	pgxTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return "", appErr
	}

	query := `
	INSERT INTO task_days (id, task_id, day, remarks)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (task_id, day) DO UPDATE
		SET remarks = COALESCE(EXCLUDED.remarks, task_days.remarks)
	RETURNING id;
	`

	var dayID string
	if err := pgxTx.QueryRow(ctx, query, log.DayID, log.TaskID, log.Date.Time, log.Remarks).Scan(&dayID); err != nil {
		return "", app_errors.MapPgxError(err, "task_not_found")
	}
	return dayID, nil
}

func (r *TaskRepo) InsertSubTask(ctx context.Context, t tx.Tx, log *entity.DayLog) *app_errors.AppError {
	pgxTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return appErr
	}

	query := `
	INSERT INTO sub_tasks (
		id,
		task_day_id,
		description,
		status,
		hours_spent,
		remarks,
		created_by,
		created_at,
		completed_at
	) VALUES (
		$1,$2,$3,$4,$5,$6,$7,$8,$9
	);
	`

	sub := log.SubTask
	if _, err := pgxTx.Exec(ctx, query,
		sub.ID,
		log.DayID,
		sub.Description,
		sub.Status,
		sub.HoursSpent,
		sub.Remarks,
		log.LoggedBy,
		sub.CreatedAt,
		sub.CompletedAt,
	); err != nil {
		return app_errors.MapPgxError(err, "task_not_found")
	}
	return nil
}

// RecomputeDayHours setzt hours_logged des Tages auf die Summe seiner Teilaufgaben.
func (r *TaskRepo) RecomputeDayHours(ctx context.Context, t tx.Tx, dayID string) (float64, *app_errors.AppError) {
	pgxTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return 0, appErr
	}

	query := `
	UPDATE task_days
	SET hours_logged = (
		SELECT COALESCE(SUM(hours_spent), 0) FROM sub_tasks WHERE task_day_id = $1
	)
	WHERE id = $1
	RETURNING hours_logged;
	`

	var hours float64
	if err := pgxTx.QueryRow(ctx, query, dayID).Scan(&hours); err != nil {
		return 0, app_errors.MapPgxError(err, "task_not_found")
	}
	return hours, nil
}

// RecomputeCounters schreibt Stunden, Teilaufgabenzähler und Fortschritt der Aufgabe aus den Teilaufgaben neu.
func (r *TaskRepo) RecomputeCounters(ctx context.Context, t tx.Tx, taskID string) (*entity.TaskCounters, *app_errors.AppError) {
	pgxTx, appErr := tx.Unwrap(t)
	if appErr != nil {
		return nil, appErr
	}

	query := `
	WITH agg AS (
		SELECT
			COALESCE(SUM(s.hours_spent), 0)                        AS hours,
			COUNT(s.id) FILTER (WHERE s.status = 'completed')      AS completed,
			COUNT(s.id)                                            AS total
		FROM task_days d
		JOIN sub_tasks s ON s.task_day_id = d.id
		WHERE d.task_id = $1
	)
	UPDATE tasks
	SET total_hours = agg.hours,
		completed_subtasks = agg.completed,
		total_subtasks = agg.total,
		progress = CASE WHEN agg.total = 0 THEN 0
			ELSE ROUND(agg.completed::numeric * 100 / agg.total)::int END,
		updated_at = now()
	FROM agg
	WHERE tasks.id = $1
	RETURNING tasks.id, tasks.total_hours, tasks.completed_subtasks, tasks.total_subtasks, tasks.progress;
	`

	var c entity.TaskCounters
	if err := pgxTx.QueryRow(ctx, query, taskID).Scan(&c.TaskID, &c.TotalHours, &c.CompletedSubtasks, &c.TotalSubtasks, &c.Progress); err != nil {
		return nil, app_errors.MapPgxError(err, "task_not_found")
	}
	return &c, nil
}

func scanTask(row pgx.Row) (*entity.TaskEntity, error) {
	var (
		task                 entity.TaskEntity
		companyID, companyNm *string
		startDate, endDate   time.Time
		priority, status     string
	)
	if err := row.Scan(
		&task.ID, &task.Title, &task.Description,
		&task.AssignedTo.ID, &task.AssignedTo.Name,
		&companyID, &companyNm,
		&startDate, &endDate, &priority, &status, &task.Progress,
		&task.TotalHours, &task.CompletedSubtasks, &task.TotalSubtasks,
		&task.CreatedAt, &task.UpdatedAt,
	); err != nil {
		return nil, err
	}

	task.Company = entity.CompanyRef{ID: deref(companyID), Name: deref(companyNm)}
	task.StartDate = entity.DateOf(startDate)
	task.EndDate = entity.DateOf(endDate)
	task.Priority = entity.TaskPriority(priority)
	task.Status = entity.TaskStatus(status)
	return &task, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
