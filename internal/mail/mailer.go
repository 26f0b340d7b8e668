package mail

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/config"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Mailer interface {
	SendMonthlySummary(user *entity.UserEntity, month, year int, summary *worksheet.Summary) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
	client       *http.Client
}

func NewMailer(cfg *config.AppConfig) Mailer {
	if cfg.APP.State == "prod" {
		return &MailService{
			DomainSender: cfg.MAILTRAP.API.MailtrapDomain,
			MailtrapUrl:  cfg.MAILTRAP.API.MailtrapURL,
			MailAPI:      cfg.MAILTRAP.API.MailtrapTokenAPI,
			client:       &http.Client{Timeout: 10 * time.Second},
		}
	}
	return &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *MailService) SendMonthlySummary(user *entity.UserEntity, month, year int, summary *worksheet.Summary) error {
	period := fmt.Sprintf("%s %d", time.Month(month).String(), year)

	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "Arbeitszeit Meister - Monatsübersicht",
		},
		"to": []map[string]string{
			{
				"email": user.Email,
				"name":  user.Name,
			},
		},
		"subject": fmt.Sprintf("Your work summary for %s", period),
		"text": fmt.Sprintf(`Hi %s,

here is your work summary for %s.

Work days      : %d
Completed days : %d
In progress    : %d
Pending        : %d
Hours logged   : %.1f
Subtasks done  : %d
Completion rate: %d%%

Days without any logged progress stay pending. Please keep your daily entries up to date.`,
			user.Name,
			period,
			summary.TotalWorkDays,
			summary.CompletedDays,
			summary.InProgressDays,
			summary.PendingDays,
			summary.TotalHoursLogged,
			summary.TotalSubtasksCompleted,
			summary.CompletionRate,
		),
		"category": "Monthly Summary",
	}

	return m.send(payload)
}

func (m *MailService) send(payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error when marshalling payload body.")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.MailtrapUrl, bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Msg("Error when building the request.")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := m.client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error when get response from server.")
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	return nil
}
