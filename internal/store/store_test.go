package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"restaurant-analytics/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type stubSource struct {
	loads       atomic.Int32
	invalidated atomic.Int32
	gate        chan struct{}
	mu          sync.Mutex
	err         error
}

func (s *stubSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	n := s.loads.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &domain.Snapshot{
		Restaurants: []domain.Restaurant{{ID: int(n), Name: "generation"}},
	}, nil
}

func (s *stubSource) Invalidate(ctx context.Context) error {
	s.invalidated.Add(1)
	return nil
}

func (s *stubSource) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func newTestStore(source Source) (*Store, *manualClock) {
	clock := &manualClock{now: time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)}
	return New(source, WithClock(clock), WithTTL(300*time.Second)), clock
}

func generation(t *testing.T, snapshot *domain.Snapshot) int {
	t.Helper()
	require.NotNil(t, snapshot)
	require.Len(t, snapshot.Restaurants, 1)
	return snapshot.Restaurants[0].ID
}

func TestStore_ReusesSnapshotWithinTTL(t *testing.T) {
	source := &stubSource{}
	s, clock := newTestStore(source)
	ctx := context.Background()

	first, err := s.Snapshot(ctx)
	require.NoError(t, err)
	clock.Advance(299 * time.Second)
	second, err := s.Snapshot(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), source.loads.Load())
}

func TestStore_ReloadsOnceTTLElapses(t *testing.T) {
	source := &stubSource{}
	s, clock := newTestStore(source)
	ctx := context.Background()

	first, err := s.Snapshot(ctx)
	require.NoError(t, err)
	loadedAt, ok := s.LoadedAt()
	require.True(t, ok)

	clock.Advance(300 * time.Second)
	second, err := s.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, generation(t, first))
	assert.Equal(t, 2, generation(t, second))
	newLoadedAt, _ := s.LoadedAt()
	assert.Equal(t, loadedAt.Add(300*time.Second), newLoadedAt)
}

func TestStore_FailedReloadKeepsPreviousSnapshot(t *testing.T) {
	source := &stubSource{}
	s, clock := newTestStore(source)
	ctx := context.Background()

	_, err := s.Snapshot(ctx)
	require.NoError(t, err)
	loadedAt, _ := s.LoadedAt()

	source.fail(&domain.LoadError{Source: "file", Err: errors.New("unexpected end of JSON input")})
	clock.Advance(time.Hour)

	snapshot, err := s.Snapshot(ctx)
	assert.Nil(t, snapshot)
	var loadErr *domain.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "file", loadErr.Source)

	stillLoadedAt, ok := s.LoadedAt()
	assert.True(t, ok)
	assert.Equal(t, loadedAt, stillLoadedAt)

	source.fail(nil)
	snapshot, err = s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, generation(t, snapshot))
}

func TestStore_WrapsPlainErrors(t *testing.T) {
	source := &stubSource{}
	source.fail(errors.New("connection refused"))
	s, _ := newTestStore(source)

	_, err := s.Snapshot(context.Background())

	var loadErr *domain.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "snapshot", loadErr.Source)
	assert.EqualError(t, errors.Unwrap(err), "connection refused")
	_, ok := s.LoadedAt()
	assert.False(t, ok)
}

func TestStore_ConcurrentStaleReadersShareOneReload(t *testing.T) {
	source := &stubSource{gate: make(chan struct{})}
	s, _ := newTestStore(source)

	const readers = 16
	var wg sync.WaitGroup
	results := make([]*domain.Snapshot, readers)
	errs := make([]error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.Snapshot(context.Background())
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(source.gate)
	wg.Wait()

	assert.Equal(t, int32(1), source.loads.Load())
	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

func TestStore_CancelledCallerDoesNotFailReload(t *testing.T) {
	source := &stubSource{}
	s, _ := newTestStore(source)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snapshot, err := s.Snapshot(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, generation(t, snapshot))
}

func TestStore_InvalidateForcesReload(t *testing.T) {
	source := &stubSource{}
	s, _ := newTestStore(source)
	ctx := context.Background()

	require.NoError(t, s.Invalidate(ctx))
	_, err := s.Snapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Invalidate(ctx))
	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, generation(t, snapshot))
	assert.Equal(t, int32(2), source.invalidated.Load())
}

func TestStore_NilSnapshotIsALoadError(t *testing.T) {
	s := New(sourceFunc(func(context.Context) (*domain.Snapshot, error) { return nil, nil }))

	_, err := s.Snapshot(context.Background())

	var loadErr *domain.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

type sourceFunc func(context.Context) (*domain.Snapshot, error)

func (f sourceFunc) Load(ctx context.Context) (*domain.Snapshot, error) { return f(ctx) }
