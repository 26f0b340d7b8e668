package use_cases

import (
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/queue"
	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

var _ queue.TaskQueueClient = (*MockTaskQueue)(nil)

// Mock TaskQueue for testing
type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueMonthlyReportExport(payload *worker_task.ExportMonthlyReportPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueMonthlySummaryDigest(payload *worker_task.MonthlySummaryDigestPayload, processAt time.Time) error {
	args := m.Called(payload, processAt)
	return args.Error(0)
}
