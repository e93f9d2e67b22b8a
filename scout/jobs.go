package scout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/doniyor117/AdvoAi/core"
	"github.com/doniyor117/AdvoAi/status"
)

const (
	defaultJobPoolSize = 4

	startedMessage        = "Scout Agent ishga tushirildi. Yangilanishlarni /api/scout/status orqali kuzating."
	alreadyRunningMessage = "Scout Agent allaqachon ishlayapti. Tugashini kuting."

	startedDurationSeconds        = 60
	alreadyRunningDurationSeconds = 30
)

// TriggerResult is the outcome of a trigger request.
type TriggerResult struct {
	Status                   string `json:"status"`
	JobID                    string `json:"job_id"`
	Message                  string `json:"message"`
	EstimatedDurationSeconds int    `json:"estimated_duration_seconds"`
}

// Manager owns discovery jobs: admission control, background execution
// and per-job status queues. A new cycle is rejected while any job is
// running unless the caller forces it.
type Manager struct {
	pipeline *Pipeline
	bus      *status.Bus
	pool     *ants.Pool
	logger   *slog.Logger

	mu   sync.Mutex
	jobs map[string]core.Job
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager) error

// WithManagerLogger sets a custom logger.
// Default is slog.Default().
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithJobPoolSize sets the worker pool size for background jobs.
func WithJobPoolSize(size int) ManagerOption {
	return func(m *Manager) error {
		if size < 1 {
			size = 1
		}
		if m.pool != nil {
			m.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		m.pool = pool
		return nil
	}
}

// NewManager creates a job manager.
func NewManager(pipeline *Pipeline, bus *status.Bus, opts ...ManagerOption) (*Manager, error) {
	if pipeline == nil {
		return nil, ErrPipelineRequired
	}
	if bus == nil {
		return nil, ErrBusRequired
	}

	pool, err := ants.NewPool(defaultJobPoolSize)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		pipeline: pipeline,
		bus:      bus,
		pool:     pool,
		logger:   slog.Default().With("component", "scout-manager"),
		jobs:     make(map[string]core.Job),
	}

	for _, opt := range opts {
		if optErr := opt(m); optErr != nil {
			m.Release()
			return nil, optErr
		}
	}

	return m, nil
}

// Trigger starts a new discovery cycle as a detached job. When a job is
// already running and force is false, no new job starts and the result
// reports "already_running".
func (m *Manager) Trigger(keywords []string, dateFilter string, force bool) (TriggerResult, error) {
	m.mu.Lock()
	if len(m.jobs) > 0 && !force {
		m.mu.Unlock()
		return TriggerResult{
			Status:                   "already_running",
			JobID:                    "",
			Message:                  alreadyRunningMessage,
			EstimatedDurationSeconds: alreadyRunningDurationSeconds,
		}, nil
	}

	jobID := uuid.NewString()
	m.jobs[jobID] = core.Job{ID: jobID, Started: time.Now().UTC()}
	m.mu.Unlock()

	queue := m.bus.Register(jobID)

	err := m.pool.Submit(func() {
		m.run(jobID, queue, keywords, dateFilter)
	})
	if err != nil {
		m.mu.Lock()
		delete(m.jobs, jobID)
		m.mu.Unlock()
		m.bus.Release(jobID)
		return TriggerResult{}, fmt.Errorf("submitting scout job: %w", err)
	}

	m.logger.Info("scout job started", "job_id", jobID, "keywords", len(keywords), "force", force)

	return TriggerResult{
		Status:                   "started",
		JobID:                    jobID,
		Message:                  startedMessage,
		EstimatedDurationSeconds: startedDurationSeconds,
	}, nil
}

// run executes one cycle and always cleans up the registry entry and the
// job's bus registration, whatever the outcome. Subscribers that already
// hold the queue can still drain the terminal event after release.
func (m *Manager) run(jobID string, queue *status.Queue, keywords []string, dateFilter string) {
	defer func() {
		m.mu.Lock()
		delete(m.jobs, jobID)
		m.mu.Unlock()
		m.bus.Release(jobID)
	}()

	report, err := m.pipeline.RunCycle(context.Background(), queue, keywords, dateFilter)
	if err != nil {
		m.logger.Error("scout job failed", "job_id", jobID, "err", err)
		queue.Publish(status.NewEvent(status.EventError,
			fmt.Sprintf("⚠️ Scout xatoligi: %v", err),
			status.Details{Progress: 0}))
		return
	}

	m.logger.Info("scout job finished", "job_id", jobID,
		"ingested", report.Ingested, "checked", report.Checked)
	queue.Publish(status.NewEvent(status.EventComplete,
		fmt.Sprintf("✅ Scout tugadi! %d ta yangi hujjat qo'shildi.", report.Ingested),
		status.Details{Progress: 100, Ingested: report.Ingested, Checked: report.Checked}))
}

// Running reports whether any job is currently registered.
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs) > 0
}

// Release releases the worker pool.
// The manager should not be used after calling Release.
func (m *Manager) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}
