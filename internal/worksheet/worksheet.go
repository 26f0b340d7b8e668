// Package worksheet leitet aus Aufgaben mit Tageseinträgen den Arbeitsstatus jedes
// Kalendertags eines Monats ab und fasst den Monat zusammen.
//
// Alle Funktionen sind rein: sie lesen nur die übergebenen Aufgaben, verändern sie nicht
// und halten keinen Zustand zwischen zwei Aufrufen. Der Status eines Tages hängt
// ausschließlich von den Teilaufgaben dieses Tages ab, nie vom Gesamtstatus der Aufgabe.
package worksheet

import (
	"math"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
)

type DayStatus string

const (
	StatusNotStarted DayStatus = "not-started"
	StatusPending    DayStatus = "pending"
	StatusInProgress DayStatus = "in-progress"
	StatusCompleted  DayStatus = "completed"
)

// CompletionRule legt fest, wann ein Tag mit Teilaufgaben als erledigt gilt.
type CompletionRule int

const (
	// RuleAllCompleted: jede Teilaufgabe des Tages muss "completed" sein.
	RuleAllCompleted CompletionRule = iota
	// RuleNoneOpen: erledigt, solange keine Teilaufgabe "pending" oder "in-progress" ist.
	RuleNoneOpen
)

type Sheet struct {
	rule CompletionRule
}

type Option func(*Sheet)

func WithCompletionRule(rule CompletionRule) Option {
	return func(s *Sheet) {
		s.rule = rule
	}
}

func New(opts ...Option) *Sheet {
	s := &Sheet{rule: RuleAllCompleted}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSheet = New()

// DaysInMonth liefert die Anzahl der Tage, berechnet als Tag 0 des Folgemonats.
// Für einen ungültigen Monat wird 0 geliefert.
func DaysInMonth(month time.Month, year int) int {
	if month < time.January || month > time.December {
		return 0
	}
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsDayInRange prüft, ob (year, month, day) innerhalb von [start, end] liegt.
// start zählt ab 00:00:00, end bis zum Ende seines Tages.
func IsDayInRange(day int, month time.Month, year int, start, end time.Time) bool {
	candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	from := startOfDay(start)
	to := startOfDay(end).Add(24*time.Hour - time.Nanosecond)

	return !candidate.Before(from) && !candidate.After(to)
}

// FindDayEntry sucht den ersten Tageseintrag für den Zieltag. Einträge ohne Datum werden übersprungen.
func FindDayEntry(task *entity.TaskEntity, day int, month time.Month, year int) *entity.DayEntry {
	if task == nil {
		return nil
	}
	target := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	for i := range task.Days {
		entry := &task.Days[i]
		if entry.Date.IsZero() {
			continue
		}
		if startOfDay(entry.Date.Time).Equal(target) {
			return entry
		}
	}
	return nil
}

// DayStatusOf nutzt die Standardregel (alle Teilaufgaben erledigt).
func DayStatusOf(task *entity.TaskEntity, day int, month time.Month, year int) DayStatus {
	return defaultSheet.DayStatus(task, day, month, year)
}

// DayStatus leitet den Status eines Tages ab. Die erste zutreffende Regel gewinnt.
func (s *Sheet) DayStatus(task *entity.TaskEntity, day int, month time.Month, year int) DayStatus {
	if !placeable(task) || day < 1 || day > DaysInMonth(month, year) {
		return StatusNotStarted
	}
	if !IsDayInRange(day, month, year, task.StartDate.Time, task.EndDate.Time) {
		return StatusNotStarted
	}

	entry := FindDayEntry(task, day, month, year)
	if entry == nil {
		return StatusPending
	}

	if len(entry.SubTasks) > 0 {
		if s.dayCompleted(entry.SubTasks) {
			return StatusCompleted
		}
		return StatusInProgress
	}

	if sumHours(entry.SubTasks) > 0 {
		return StatusInProgress
	}

	return StatusPending
}

func (s *Sheet) dayCompleted(subTasks []entity.SubTask) bool {
	switch s.rule {
	case RuleNoneOpen:
		for _, st := range subTasks {
			if st.Status == entity.SubTaskPending || st.Status == entity.SubTaskInProgress {
				return false
			}
		}
		return true
	default:
		for _, st := range subTasks {
			if st.Status != entity.SubTaskCompleted {
				return false
			}
		}
		return true
	}
}

// DayDetail ist die Detailansicht eines Tageseintrags.
type DayDetail struct {
	Date              entity.Date      `json:"date"`
	HoursLogged       float64          `json:"hours_logged"`
	SubTasks          []entity.SubTask `json:"sub_tasks"`
	Remarks           string           `json:"remarks"`
	CompletedSubtasks int              `json:"completed_subtasks,omitempty"`
	TotalSubtasks     int              `json:"total_subtasks,omitempty"`
	SubtaskCompletion int              `json:"subtask_completion,omitempty"`
}

// DayDetails liefert nil, wenn für den Tag kein Eintrag existiert.
func DayDetails(task *entity.TaskEntity, day int, month time.Month, year int) *DayDetail {
	entry := FindDayEntry(task, day, month, year)
	if entry == nil {
		return nil
	}

	detail := &DayDetail{
		Date:     entry.Date,
		SubTasks: append([]entity.SubTask{}, entry.SubTasks...),
	}
	if entry.HoursLogged != nil {
		detail.HoursLogged = *entry.HoursLogged
	} else {
		detail.HoursLogged = sumHours(entry.SubTasks)
	}
	if entry.Remarks != nil {
		detail.Remarks = *entry.Remarks
	}

	if len(entry.SubTasks) > 0 {
		for _, st := range entry.SubTasks {
			if st.Status == entity.SubTaskCompleted {
				detail.CompletedSubtasks++
			}
		}
		detail.TotalSubtasks = len(entry.SubTasks)
		detail.SubtaskCompletion = percent(detail.CompletedSubtasks, detail.TotalSubtasks)
	}

	return detail
}

func placeable(task *entity.TaskEntity) bool {
	if task == nil || task.StartDate.IsZero() || task.EndDate.IsZero() {
		return false
	}
	return !task.EndDate.Before(task.StartDate.Time)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sumHours(subTasks []entity.SubTask) float64 {
	var sum float64
	for _, st := range subTasks {
		sum += st.HoursSpent
	}
	return sum
}

// percent rundet part/total*100; total 0 ergibt 0.
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
