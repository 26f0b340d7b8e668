package worker_task

import "github.com/Xenn-00/arbeitszeit-meister/internal/entity"

const TaskExportMonthlyReport = "report:export_monthly"

const TaskMonthlySummaryDigest = "low:monthly_summary_digest"

type ExportMonthlyReportPayload struct {
	ExportID    string                `json:"export_id"`
	RequestedBy string                `json:"requested_by"`
	Filter      entity.TaskListFilter `json:"filter"`
}

// MonthlySummaryDigestPayload ist beim Cron-Lauf leer, dann gilt der Vormonat.
type MonthlySummaryDigestPayload struct {
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}
