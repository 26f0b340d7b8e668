package report_dto

import (
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
)

// TaskRow ist die Zeilenbeschriftung der Monatsübersicht.
type TaskRow struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	AssignedTo entity.UserRef      `json:"assigned_to"`
	Company    entity.CompanyRef   `json:"company"`
	StartDate  entity.Date         `json:"start_date"`
	EndDate    entity.Date         `json:"end_date"`
	Priority   entity.TaskPriority `json:"priority"`
	Status     entity.TaskStatus   `json:"status"`
	Progress   int                 `json:"progress"`
}

type MonthlySheetResponse struct {
	Month       int                   `json:"month"`
	Year        int                   `json:"year"`
	DaysInMonth int                   `json:"days_in_month"`
	Filter      entity.TaskListFilter `json:"filter"`
	Tasks       []TaskRow             `json:"tasks"`
	StatusGrid  worksheet.StatusGrid  `json:"status_grid"`
	DetailGrid  worksheet.DetailGrid  `json:"detail_grid"`
	Summary     worksheet.Summary     `json:"summary"`
}

type MonthlyReportResponse struct {
	Sheet  *MonthlySheetResponse `json:"sheet"`
	Report worksheet.TaskReport  `json:"report"`
}

type FilterUserItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Role        entity.UserRole `json:"role"`
	CompanyID   *string         `json:"company_id,omitempty"`
	CompanyName *string         `json:"company_name,omitempty"`
}

type ExportStatus string

const (
	ExportPending ExportStatus = "pending"
	ExportReady   ExportStatus = "ready"
	ExportFailed  ExportStatus = "failed"
)

// ExportResponse ist zugleich der in Redis abgelegte Exportdatensatz.
type ExportResponse struct {
	ExportID    string                `json:"export_id"`
	Status      ExportStatus          `json:"status"`
	RequestedBy string                `json:"requested_by"`
	Filter      entity.TaskListFilter `json:"filter"`
	Summary     *worksheet.Summary    `json:"summary,omitempty"`
	Rows        []worksheet.ExportRow `json:"rows,omitempty"`
	Error       string                `json:"error,omitempty"`
	RequestedAt time.Time             `json:"requested_at"`
	CompletedAt *time.Time            `json:"completed_at,omitempty"`
}
