package worksheet

import (
	"cmp"
	"slices"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
)

type TaskSummary struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	TotalHours     float64 `json:"total_hours"`
	CompletionRate int     `json:"completion_rate"`
}

type ChartSlice struct {
	Name  entity.TaskStatus `json:"name"`
	Value int               `json:"value"`
}

type UserReport struct {
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	TotalHours     float64 `json:"total_hours"`
}

// TaskReport ist die aufgabenbezogene Sicht des Berichts, unabhängig vom Tagesraster.
type TaskReport struct {
	Summary     TaskSummary  `json:"summary"`
	StatusChart []ChartSlice `json:"status_chart"`
	UserReports []UserReport `json:"user_reports"`
}

var chartOrder = []entity.TaskStatus{
	entity.TaskPending,
	entity.TaskInProgress,
	entity.TaskCompleted,
	entity.TaskDelayed,
}

func BuildTaskReport(tasks []entity.TaskEntity) TaskReport {
	report := TaskReport{
		StatusChart: make([]ChartSlice, 0, len(chartOrder)),
		UserReports: []UserReport{},
	}

	byStatus := make(map[entity.TaskStatus]int, len(chartOrder))
	byUser := make(map[string]*UserReport)

	for _, task := range tasks {
		report.Summary.TotalTasks++
		report.Summary.TotalHours += task.TotalHours
		byStatus[task.Status]++
		if task.Status == entity.TaskCompleted {
			report.Summary.CompletedTasks++
		}

		if task.AssignedTo.ID == "" {
			continue
		}
		u, ok := byUser[task.AssignedTo.ID]
		if !ok {
			u = &UserReport{UserID: task.AssignedTo.ID, Name: task.AssignedTo.Name}
			byUser[task.AssignedTo.ID] = u
		}
		u.TotalTasks++
		u.TotalHours += task.TotalHours
		if task.Status == entity.TaskCompleted {
			u.CompletedTasks++
		}
	}

	report.Summary.CompletionRate = percent(report.Summary.CompletedTasks, report.Summary.TotalTasks)

	for _, status := range chartOrder {
		report.StatusChart = append(report.StatusChart, ChartSlice{Name: status, Value: byStatus[status]})
	}

	for _, u := range byUser {
		report.UserReports = append(report.UserReports, *u)
	}
	slices.SortFunc(report.UserReports, func(a, b UserReport) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.UserID, b.UserID))
	})

	return report
}

// ExportRow ist eine flache Zeile pro belegtem Tag, wie sie ein Tabellen-Export erwartet.
type ExportRow struct {
	TaskID            string      `json:"task_id"`
	TaskTitle         string      `json:"task_title"`
	Assignee          string      `json:"assignee"`
	Company           string      `json:"company"`
	Date              entity.Date `json:"date"`
	Day               int         `json:"day"`
	Status            DayStatus   `json:"status"`
	HoursLogged       float64     `json:"hours_logged"`
	CompletedSubtasks int         `json:"completed_subtasks"`
	TotalSubtasks     int         `json:"total_subtasks"`
	Remarks           string      `json:"remarks,omitempty"`
}

// ExportRows folgt der Reihenfolge der Aufgabenliste, innerhalb einer Aufgabe aufsteigend nach Tag.
func ExportRows(tasks []entity.TaskEntity, result Result) []ExportRow {
	rows := []ExportRow{}
	for _, task := range tasks {
		statusRow := result.StatusGrid[task.ID]
		for day := 1; day <= result.DaysInMonth; day++ {
			cell, ok := statusRow[day]
			if !ok {
				continue
			}
			row := ExportRow{
				TaskID:    task.ID,
				TaskTitle: task.Title,
				Assignee:  task.AssignedTo.Name,
				Company:   task.Company.Name,
				Date:      entity.NewDate(result.Year, result.Month, day),
				Day:       day,
				Status:    cell.Status,
			}
			if detail, ok := result.DetailGrid[task.ID][day]; ok {
				row.HoursLogged = detail.HoursLogged
				row.CompletedSubtasks = detail.CompletedSubtasks
				row.TotalSubtasks = detail.TotalSubtasks
				row.Remarks = detail.Remarks
			}
			rows = append(rows, row)
		}
	}
	return rows
}
