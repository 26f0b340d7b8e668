package worker_handler

import (
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	"github.com/Xenn-00/arbeitszeit-meister/internal/mail"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/stretchr/testify/mock"
)

var _ mail.Mailer = (*MockMailer)(nil)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendMonthlySummary(user *entity.UserEntity, month, year int, summary *worksheet.Summary) error {
	args := m.Called(user, month, year, summary)
	return args.Error(0)
}
