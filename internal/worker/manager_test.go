package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// loopWorker крутится до Stop, как настоящий воркер очереди
type loopWorker struct {
	*BaseWorker
	started atomic.Bool
}

func newLoopWorker(name string) *loopWorker {
	return &loopWorker{BaseWorker: NewBaseWorker(name, "test-group", zap.NewNop())}
}

func (w *loopWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	for w.Pause(ctx, 5*time.Millisecond) {
	}
	return nil
}

// stuckWorker игнорирует Stop
type stuckWorker struct {
	*BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(ctx context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StartRequiresWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	a, b := newLoopWorker("a"), newLoopWorker("b")
	m.Register(a)
	m.Register(b)
	assert.Equal(t, 2, m.Count())

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, func() bool {
		return a.started.Load() && b.started.Load()
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := NewWorkerManager(zap.NewNop()).WithShutdownTimeout(20 * time.Millisecond)
	w := &stuckWorker{BaseWorker: NewBaseWorker("stuck", "test-group", zap.NewNop()), release: make(chan struct{})}
	defer close(w.release)
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Stop())
}

func TestBaseWorker_PauseAndStop(t *testing.T) {
	w := NewBaseWorker("pause", "test-group", zap.NewNop())
	assert.NotEmpty(t, w.ConsumerName())
	assert.Equal(t, "test-group", w.ConsumerGroup())

	assert.True(t, w.Pause(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, w.Pause(ctx, time.Second))

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.False(t, w.Pause(context.Background(), time.Second))
}
