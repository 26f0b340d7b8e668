package queue

import (
	"time"

	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type TaskQueueClient interface {
	EnqueueMonthlyReportExport(payload *worker_task.ExportMonthlyReportPayload) error
	EnqueueMonthlySummaryDigest(payload *worker_task.MonthlySummaryDigestPayload, processAt time.Time) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueMonthlyReportExport(payload *worker_task.ExportMonthlyReportPayload) error {
	log.Info().Str("export_id", payload.ExportID).Msg("Preparing enqueueing payload.")
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	// TaskID macht doppeltes Einreihen desselben Exports wirkungslos.
	task := asynq.NewTask(worker_task.TaskExportMonthlyReport, p,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.TaskID(payload.ExportID),
		asynq.Timeout(2*time.Minute),
	)

	_, err = q.client.Enqueue(task)
	return err
}

func (q *TaskQueue) EnqueueMonthlySummaryDigest(payload *worker_task.MonthlySummaryDigestPayload, processAt time.Time) error {
	log.Info().Msg("Preparing enqueueing payload.")
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(worker_task.TaskMonthlySummaryDigest, p, asynq.Queue("low"), asynq.ProcessAt(processAt))

	_, err = q.client.Enqueue(task)
	return err
}
