// Package store keeps the current dataset snapshot and decides when it must
// be reloaded from its source.
package store

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"restaurant-analytics/internal/domain"

	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 300 * time.Second

// Source produces a complete snapshot or an error, never a partial dataset.
type Source interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// Invalidator is implemented by sources that keep their own cached copy.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var SystemClock Clock = ClockFunc(time.Now)

type entry struct {
	snapshot *domain.Snapshot
	loadedAt time.Time
	stale    bool
}

// Store publishes snapshots through an atomic pointer, so readers see either
// the previous complete snapshot or the next one. Concurrent readers that find
// the snapshot expired share a single reload.
type Store struct {
	source  Source
	ttl     time.Duration
	clock   Clock
	current atomic.Pointer[entry]
	reloads singleflight.Group
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithClock(clock Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func New(source Source, opts ...Option) *Store {
	s := &Store{
		source: source,
		ttl:    DefaultTTL,
		clock:  SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current snapshot, reloading it first when it is older
// than the TTL or has been invalidated. A failed reload returns a
// *domain.LoadError and leaves the published snapshot untouched.
func (s *Store) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if e := s.current.Load(); s.fresh(e) {
		return e.snapshot, nil
	}

	result, err, _ := s.reloads.Do("snapshot", func() (interface{}, error) {
		if e := s.current.Load(); s.fresh(e) {
			return e.snapshot, nil
		}
		// One caller's cancellation must not fail the reload for everyone
		// waiting on it.
		return s.reload(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Snapshot), nil
}

func (s *Store) fresh(e *entry) bool {
	return e != nil && !e.stale && s.clock.Now().Sub(e.loadedAt) < s.ttl
}

func (s *Store) reload(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.source.Load(ctx)
	if err == nil && snapshot == nil {
		err = errors.New("source returned no snapshot")
	}
	if err != nil {
		var loadErr *domain.LoadError
		if !errors.As(err, &loadErr) {
			err = &domain.LoadError{Source: "snapshot", Err: err}
		}
		log.Printf("ERROR: snapshot reload failed: %v", err)
		return nil, err
	}

	s.current.Store(&entry{snapshot: snapshot, loadedAt: s.clock.Now()})
	log.Printf("Snapshot loaded: %d restaurants, %d orders", len(snapshot.Restaurants), len(snapshot.Orders))
	return snapshot, nil
}

// Invalidate marks the snapshot stale so the next read reloads it. The
// snapshot itself stays in place until a reload replaces it.
func (s *Store) Invalidate(ctx context.Context) error {
	for {
		e := s.current.Load()
		if e == nil || e.stale {
			break
		}
		stale := &entry{snapshot: e.snapshot, loadedAt: e.loadedAt, stale: true}
		if s.current.CompareAndSwap(e, stale) {
			break
		}
	}

	if inv, ok := s.source.(Invalidator); ok {
		return inv.Invalidate(ctx)
	}
	return nil
}

// LoadedAt reports when the current snapshot was published.
func (s *Store) LoadedAt() (time.Time, bool) {
	e := s.current.Load()
	if e == nil {
		return time.Time{}, false
	}
	return e.loadedAt, true
}
