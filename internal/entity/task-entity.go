package entity

import "time"

// TaskEntity repräsentiert eine zugewiesene Aufgabe mit Datumsbereich und täglichem Fortschritt.
type TaskEntity struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Description       *string      `json:"description,omitempty"`
	AssignedTo        UserRef      `json:"assigned_to"`
	Company           CompanyRef   `json:"company"`
	StartDate         Date         `json:"start_date"`
	EndDate           Date         `json:"end_date"`
	Priority          TaskPriority `json:"priority"`
	Status            TaskStatus   `json:"status"`
	Progress          int          `json:"progress"`
	TotalHours        float64      `json:"total_hours"`
	CompletedSubtasks int          `json:"completed_subtasks"`
	TotalSubtasks     int          `json:"total_subtasks"`
	Days              []DayEntry   `json:"days,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         *time.Time   `json:"updated_at,omitempty"`
}

// DayEntry ist die an einem Kalendertag geleistete Arbeit an einer Aufgabe.
type DayEntry struct {
	ID          string    `json:"id,omitempty"`
	Date        Date      `json:"date"`
	SubTasks    []SubTask `json:"sub_tasks,omitempty"`
	Remarks     *string   `json:"remarks,omitempty"`
	HoursLogged *float64  `json:"hours_logged,omitempty"`
}

type SubTask struct {
	ID          string        `json:"id,omitempty"`
	Description string        `json:"description"`
	Status      SubTaskStatus `json:"status"`
	HoursSpent  float64       `json:"hours_spent"`
	Remarks     *string       `json:"remarks,omitempty"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CompanyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DayLog ist die Zeile, die beim Protokollieren einer Teilaufgabe angelegt oder fortgeschrieben wird.
type DayLog struct {
	DayID    string
	TaskID   string
	Date     Date
	SubTask  SubTask
	Remarks  *string
	LoggedBy string
}

// TaskCounters sind die denormalisierten Zähler einer Aufgabe nach einer Schreiboperation.
type TaskCounters struct {
	TaskID            string  `json:"task_id"`
	TotalHours        float64 `json:"total_hours"`
	CompletedSubtasks int     `json:"completed_subtasks"`
	TotalSubtasks     int     `json:"total_subtasks"`
	Progress          int     `json:"progress"`
}

// TaskListFilter ist der bereits nach Rolle eingeschränkte Filter für das Laden eines Monats.
type TaskListFilter struct {
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	Role      *string `json:"role,omitempty"`
	UserID    *string `json:"user_id,omitempty"`
	CompanyID *string `json:"company_id,omitempty"`
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
	TaskDelayed    TaskStatus = "delayed"
)

type SubTaskStatus string

const (
	SubTaskPending    SubTaskStatus = "pending"
	SubTaskInProgress SubTaskStatus = "in-progress"
	SubTaskCompleted  SubTaskStatus = "completed"
	SubTaskDelayed    SubTaskStatus = "delayed"
)

func (s SubTaskStatus) IsValid() bool {
	switch s {
	case SubTaskPending, SubTaskInProgress, SubTaskCompleted, SubTaskDelayed:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)
