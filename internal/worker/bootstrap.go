package worker

import (
	"fmt"

	worker_handler "github.com/Xenn-00/arbeitszeit-meister/internal/worker/handlers"
	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHander) {
	mux.HandleFunc(worker_task.TaskExportMonthlyReport, h.ExportMonthlyReport())
	mux.HandleFunc(worker_task.TaskMonthlySummaryDigest, h.MonthlySummaryDigest())
}

type cronJob struct {
	spec  string
	task  *asynq.Task
	queue string
	desc  string
}

func cronJobs() []cronJob {
	return []cronJob{
		{
			spec:  "0 6 1 * *",
			task:  asynq.NewTask(worker_task.TaskMonthlySummaryDigest, nil),
			queue: "low",
			desc:  "send monthly summary digest",
		},
	}
}

// Scheduler ist die Teilmenge von *asynq.Scheduler, die für die Cron-Registrierung gebraucht wird.
type Scheduler interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

func RegisterCronJobs(s Scheduler) error {
	for _, job := range cronJobs() {
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
