package worker_handler

import (
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/config"
	"github.com/Xenn-00/arbeitszeit-meister/internal/mail"
	user_repo "github.com/Xenn-00/arbeitszeit-meister/internal/repo/user-repo"
	report_case "github.com/Xenn-00/arbeitszeit-meister/internal/use-cases/report-case"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type WorkerHander struct {
	reports report_case.ReportServiceContract
	ur      user_repo.UserRepoContract
	mailer  mail.Mailer
	now     func() time.Time
}

func NewWorkerHandler(db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig, mailer mail.Mailer) *WorkerHander {
	return &WorkerHander{
		reports: report_case.NewReportService(db, redis, cfg),
		ur:      user_repo.NewUserRepo(db),
		mailer:  mailer,
		now:     time.Now,
	}
}
