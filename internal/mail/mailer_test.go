package mail

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMonthlySummary(t *testing.T) {
	var got map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := &MailService{DomainSender: "noreply@example.com", MailtrapUrl: srv.URL, MailAPI: "token-1", client: srv.Client()}

	err := m.SendMonthlySummary(
		&entity.UserEntity{Email: "anna@example.com", Name: "Anna"},
		3, 2024,
		&worksheet.Summary{TotalWorkDays: 10, CompletedDays: 1, CompletionRate: 10},
	)

	require.NoError(t, err)
	assert.Equal(t, "Bearer token-1", auth)
	assert.Equal(t, "Your work summary for March 2024", got["subject"])
	assert.Contains(t, got["text"], "Completion rate: 10%")
	to := got["to"].([]any)[0].(map[string]any)
	assert.Equal(t, "anna@example.com", to["email"])
}

func TestSendMonthlySummary_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":["bad sender"]}`))
	}))
	defer srv.Close()

	m := &MailService{MailtrapUrl: srv.URL, client: srv.Client()}

	err := m.SendMonthlySummary(&entity.UserEntity{Email: "a@example.com"}, 3, 2024, &worksheet.Summary{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=400")
	assert.Contains(t, err.Error(), "bad sender")
}
