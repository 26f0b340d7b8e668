package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	sheetMonth   int
	sheetYear    int
	sheetLenient bool
	sheetUserID  string
)

var sheetCmd = &cobra.Command{
	Use:   "sheet <file|->",
	Short: "Monatsübersicht aus einem Aufgaben-Export berechnen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if sheetMonth == 0 {
			sheetMonth = int(now.Month())
		}
		if sheetYear == 0 {
			sheetYear = now.Year()
		}
		if sheetMonth < 1 || sheetMonth > 12 {
			return fmt.Errorf("month must be between 1 and 12, got %d", sheetMonth)
		}

		tasks, err := loadTasksFile(args[0])
		if err != nil {
			return err
		}
		log.Debug().Int("tasks", len(tasks)).Str("file", args[0]).Msg("task dump loaded")

		report := buildSheetReport(filterByAssignee(tasks, sheetUserID), sheetMonth, sheetYear, sheetLenient)
		return writeReport(cmd.OutOrStdout(), outputFormat, report)
	},
}

func init() {
	sheetCmd.Flags().IntVarP(&sheetMonth, "month", "m", 0, "Monat 1-12 (Standard: aktueller Monat)")
	sheetCmd.Flags().IntVarP(&sheetYear, "year", "y", 0, "Jahr (Standard: aktuelles Jahr)")
	sheetCmd.Flags().BoolVar(&sheetLenient, "lenient", false, "Tag gilt als erledigt, sobald keine Teilaufgabe offen ist")
	sheetCmd.Flags().StringVar(&sheetUserID, "user-id", "", "nur Aufgaben dieses Benutzers")
}

type sheetReport struct {
	Month       int                   `json:"month"`
	Year        int                   `json:"year"`
	DaysInMonth int                   `json:"days_in_month"`
	Summary     worksheet.Summary     `json:"summary"`
	Rows        []worksheet.ExportRow `json:"rows"`

	tasks  []entity.TaskEntity
	result worksheet.Result
}

func buildSheetReport(tasks []entity.TaskEntity, month, year int, lenient bool) *sheetReport {
	rule := worksheet.RuleAllCompleted
	if lenient {
		rule = worksheet.RuleNoneOpen
	}
	sheet := worksheet.New(worksheet.WithCompletionRule(rule))

	result := sheet.Aggregate(tasks, time.Month(month), year)
	return &sheetReport{
		Month:       month,
		Year:        year,
		DaysInMonth: result.DaysInMonth,
		Summary:     worksheet.Summarize(result.StatusGrid, result.DetailGrid),
		Rows:        worksheet.ExportRows(tasks, result),
		tasks:       tasks,
		result:      result,
	}
}

func filterByAssignee(tasks []entity.TaskEntity, userID string) []entity.TaskEntity {
	if userID == "" {
		return tasks
	}
	out := []entity.TaskEntity{}
	for _, t := range tasks {
		if t.AssignedTo.ID == userID {
			out = append(out, t)
		}
	}
	return out
}

var statusGlyph = map[worksheet.DayStatus]string{
	worksheet.StatusPending:    "P",
	worksheet.StatusInProgress: "I",
	worksheet.StatusCompleted:  "C",
}

// writeText druckt pro Aufgabe eine Zeile mit einem Zeichen je Tag; "." steht für not-started.
func writeText(w io.Writer, r *sheetReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d (%d Tage)\n\n", time.Month(r.Month), r.Year, r.DaysInMonth)

	width := 5
	for _, t := range r.tasks {
		width = max(width, len([]rune(t.Title)))
	}
	width = min(width, 40)

	fmt.Fprintf(&b, "%-*s  ", width, "Task")
	for day := 1; day <= r.DaysInMonth; day++ {
		fmt.Fprintf(&b, "%d", day%10)
	}
	b.WriteString("\n")

	for _, t := range r.tasks {
		title := []rune(t.Title)
		if len(title) > width {
			title = title[:width]
		}
		fmt.Fprintf(&b, "%-*s  ", width, string(title))
		row := r.result.StatusGrid[t.ID]
		for day := 1; day <= r.DaysInMonth; day++ {
			glyph := "."
			if cell, ok := row[day]; ok {
				glyph = statusGlyph[cell.Status]
			}
			b.WriteString(glyph)
		}
		b.WriteString("\n")
	}

	s := r.Summary
	fmt.Fprintf(&b, "\nWork days       %d\n", s.TotalWorkDays)
	fmt.Fprintf(&b, "Completed       %d\n", s.CompletedDays)
	fmt.Fprintf(&b, "In progress     %d\n", s.InProgressDays)
	fmt.Fprintf(&b, "Pending         %d\n", s.PendingDays)
	fmt.Fprintf(&b, "Hours logged    %.1f\n", s.TotalHoursLogged)
	fmt.Fprintf(&b, "Subtasks done   %d\n", s.TotalSubtasksCompleted)
	fmt.Fprintf(&b, "Completion rate %d%%\n", s.CompletionRate)

	_, err := io.WriteString(w, b.String())
	return err
}
