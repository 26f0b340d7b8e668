package worksheet

import (
	"maps"
	"slices"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
)

// StatusCell ist der Status eines Tages samt Momentaufnahme der Aufgabendaten,
// damit die Darstellung nicht erneut gegen die Aufgabenliste joinen muss.
type StatusCell struct {
	Status            DayStatus           `json:"status"`
	TaskTitle         string              `json:"task_title"`
	TaskDescription   *string             `json:"task_description,omitempty"`
	Progress          int                 `json:"progress"`
	TotalHours        float64             `json:"total_hours"`
	CompletedSubtasks int                 `json:"completed_subtasks"`
	TotalSubtasks     int                 `json:"total_subtasks"`
	Priority          entity.TaskPriority `json:"priority"`
}

// StatusGrid: Aufgaben-ID -> Tag im Monat -> Zelle. Tage ohne Eintrag sind "not-started".
type StatusGrid map[string]map[int]StatusCell

// DetailGrid: Aufgaben-ID -> Tag im Monat -> Tagesdetails.
type DetailGrid map[string]map[int]DayDetail

type Result struct {
	Month       time.Month `json:"month"`
	Year        int        `json:"year"`
	DaysInMonth int        `json:"days_in_month"`
	StatusGrid  StatusGrid `json:"status_grid"`
	DetailGrid  DetailGrid `json:"detail_grid"`
}

// Aggregate nutzt die Standardregel.
func Aggregate(tasks []entity.TaskEntity, month time.Month, year int) Result {
	return defaultSheet.Aggregate(tasks, month, year)
}

// Aggregate berechnet für jede Aufgabe und jeden Tag 1..DaysInMonth den Status.
// Jede Aufgabe erhält eine (eventuell leere) Zeile; die Eingabe wird nicht verändert.
func (s *Sheet) Aggregate(tasks []entity.TaskEntity, month time.Month, year int) Result {
	days := DaysInMonth(month, year)
	result := Result{
		Month:       month,
		Year:        year,
		DaysInMonth: days,
		StatusGrid:  make(StatusGrid, len(tasks)),
		DetailGrid:  make(DetailGrid, len(tasks)),
	}

	for i := range tasks {
		task := &tasks[i]
		statusRow := make(map[int]StatusCell)
		detailRow := make(map[int]DayDetail)

		for day := 1; day <= days; day++ {
			status := s.DayStatus(task, day, month, year)
			if status == StatusNotStarted {
				continue
			}

			statusRow[day] = StatusCell{
				Status:            status,
				TaskTitle:         task.Title,
				TaskDescription:   task.Description,
				Progress:          task.Progress,
				TotalHours:        task.TotalHours,
				CompletedSubtasks: task.CompletedSubtasks,
				TotalSubtasks:     task.TotalSubtasks,
				Priority:          task.Priority,
			}

			if detail := DayDetails(task, day, month, year); detail != nil {
				detailRow[day] = *detail
			}
		}

		result.StatusGrid[task.ID] = statusRow
		result.DetailGrid[task.ID] = detailRow
	}

	return result
}

type Summary struct {
	TotalWorkDays          int     `json:"total_work_days"`
	CompletedDays          int     `json:"completed_days"`
	InProgressDays         int     `json:"in_progress_days"`
	PendingDays            int     `json:"pending_days"`
	TotalHoursLogged       float64 `json:"total_hours_logged"`
	TotalSubtasksCompleted int     `json:"total_subtasks_completed"`
	CompletionRate         int     `json:"completion_rate"`
}

// Summarize zählt jede belegte Zelle beider Raster. "not-started" fehlt im Raster und zählt daher nicht.
func Summarize(statusGrid StatusGrid, detailGrid DetailGrid) Summary {
	var sum Summary

	// Sortiert, damit die Stundensumme bei gleicher Eingabe bitgleich bleibt.
	for _, taskID := range slices.Sorted(maps.Keys(statusGrid)) {
		row := statusGrid[taskID]
		for _, day := range slices.Sorted(maps.Keys(row)) {
			cell := row[day]
			sum.TotalWorkDays++
			switch cell.Status {
			case StatusCompleted:
				sum.CompletedDays++
			case StatusInProgress:
				sum.InProgressDays++
			case StatusPending:
				sum.PendingDays++
			}

			if detail, ok := detailGrid[taskID][day]; ok {
				sum.TotalHoursLogged += detail.HoursLogged
				sum.TotalSubtasksCompleted += detail.CompletedSubtasks
			}
		}
	}

	sum.CompletionRate = percent(sum.CompletedDays, sum.TotalWorkDays)
	return sum
}
