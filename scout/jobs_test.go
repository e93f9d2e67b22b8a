package scout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doniyor117/AdvoAi/ai/mock"
	"github.com/doniyor117/AdvoAi/core"
	"github.com/doniyor117/AdvoAi/status"
)

// slowSearch blocks long enough for admission-control assertions.
type slowSearch struct {
	delay time.Duration
	hits  []core.CandidateDocument
}

func (s *slowSearch) Search(ctx context.Context, query string, maxResults int) ([]core.CandidateDocument, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return s.hits, nil
}

func newTestManager(t *testing.T, search SearchProvider, scraper Scraper) (*Manager, *status.Bus) {
	t.Helper()

	p, err := NewPipeline(newFakeStore(), mock.NewRelevanceJudge(), search, scraper,
		WithSearchDelay(0), WithJudgeDelay(0))
	require.NoError(t, err)

	bus := status.NewBus()
	m, err := NewManager(p, bus)
	require.NoError(t, err)
	t.Cleanup(m.Release)

	return m, bus
}

func waitForIdle(t *testing.T, m *Manager) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for m.Running() {
		if time.Now().After(deadline) {
			t.Fatal("job did not finish in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTriggerStartsJob(t *testing.T) {
	search := &slowSearch{delay: 10 * time.Millisecond}
	m, bus := newTestManager(t, search, &fakeScraper{})

	result, err := m.Trigger([]string{"grant"}, "", false)
	require.NoError(t, err)

	assert.Equal(t, "started", result.Status)
	assert.NotEmpty(t, result.JobID)
	assert.Equal(t, startedDurationSeconds, result.EstimatedDurationSeconds)

	queue, err := bus.Queue(result.JobID)
	require.NoError(t, err)

	// The job ends with a terminal complete event.
	var terminal status.Event
	for {
		e, err := queue.Next(context.Background(), 5*time.Second)
		require.NoError(t, err)
		if e.Type.Terminal() {
			terminal = e
			break
		}
	}
	assert.Equal(t, status.EventComplete, terminal.Type)
	assert.Equal(t, 100, terminal.Details.Progress)

	waitForIdle(t, m)
}

func TestTriggerRejectsConcurrentJob(t *testing.T) {
	search := &slowSearch{delay: 200 * time.Millisecond}
	m, _ := newTestManager(t, search, &fakeScraper{})

	first, err := m.Trigger([]string{"grant"}, "", false)
	require.NoError(t, err)
	require.Equal(t, "started", first.Status)

	second, err := m.Trigger([]string{"grant"}, "", false)
	require.NoError(t, err)
	assert.Equal(t, "already_running", second.Status)
	assert.Empty(t, second.JobID)
	assert.Equal(t, alreadyRunningDurationSeconds, second.EstimatedDurationSeconds)

	waitForIdle(t, m)
}

func TestTriggerForceStartsSecondJob(t *testing.T) {
	search := &slowSearch{delay: 200 * time.Millisecond}
	m, _ := newTestManager(t, search, &fakeScraper{})

	first, err := m.Trigger([]string{"grant"}, "", false)
	require.NoError(t, err)
	require.Equal(t, "started", first.Status)

	second, err := m.Trigger([]string{"grant"}, "", true)
	require.NoError(t, err)
	assert.Equal(t, "started", second.Status)
	assert.NotEmpty(t, second.JobID)
	assert.NotEqual(t, first.JobID, second.JobID)

	waitForIdle(t, m)
}

func TestRegistryCleanupAfterRun(t *testing.T) {
	search := &slowSearch{delay: 10 * time.Millisecond}
	m, bus := newTestManager(t, search, &fakeScraper{})

	result, err := m.Trigger([]string{"grant"}, "", false)
	require.NoError(t, err)

	waitForIdle(t, m)

	// Registry entry and queue registration are gone once the run ends.
	assert.False(t, m.Running())
	_, err = bus.Queue(result.JobID)
	assert.ErrorIs(t, err, status.ErrUnknownJob)
}

func TestNewManagerValidation(t *testing.T) {
	bus := status.NewBus()

	_, err := NewManager(nil, bus)
	assert.ErrorIs(t, err, ErrPipelineRequired)

	p, err := NewPipeline(newFakeStore(), mock.NewRelevanceJudge(), &fakeSearch{}, &fakeScraper{})
	require.NoError(t, err)

	_, err = NewManager(p, nil)
	assert.ErrorIs(t, err, ErrBusRequired)
}
