package worker

import (
	"errors"
	"testing"
	"time"

	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduler struct {
	specs []string
	types []string
	err   error
}

func (f *fakeScheduler) Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.specs = append(f.specs, cronspec)
	f.types = append(f.types, task.Type())
	return "entry-1", nil
}

func TestRegisterCronJobs(t *testing.T) {
	s := &fakeScheduler{}

	require.NoError(t, RegisterCronJobs(s))
	assert.Equal(t, []string{"0 6 1 * *"}, s.specs)
	assert.Equal(t, []string{worker_task.TaskMonthlySummaryDigest}, s.types)
}

func TestRegisterCronJobs_Error(t *testing.T) {
	s := &fakeScheduler{err: errors.New("invalid cron expression")}

	err := RegisterCronJobs(s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "send monthly summary digest")
}

func TestCronJobsUseLowQueue(t *testing.T) {
	for _, job := range cronJobs() {
		assert.Equal(t, "low", job.queue, job.desc)
	}
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, retryDelay(1, nil, nil))
	assert.Equal(t, 15*time.Second, retryDelay(3, nil, nil))
	assert.Equal(t, time.Minute, retryDelay(50, nil, nil))
}

func TestAsynqRedisOpt_CopiesClientOptions(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "cache:6380", Username: "worker", Password: "geheim", DB: 3})
	defer rdb.Close()

	opt := asynqRedisOpt(rdb)

	assert.Equal(t, "cache:6380", opt.Addr)
	assert.Equal(t, "worker", opt.Username)
	assert.Equal(t, "geheim", opt.Password)
	assert.Equal(t, 3, opt.DB)
	assert.Nil(t, opt.TLSConfig)
}
