// Package section models the lifecycle shared by the data-driven page
// sections: fetch once on mount, fall back on any failure, never mix.
package section

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/logger"
)

type State int

const (
	Loading State = iota
	ReadyRemote
	ReadyFallback
)

func (s State) String() string {
	switch s {
	case ReadyRemote:
		return "ready(remote)"
	case ReadyFallback:
		return "ready(fallback)"
	}
	return "loading"
}

func (s State) Ready() bool { return s != Loading }

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Fetchable holds one section's data. Ready states are terminal, and a
// result arriving after Unmount is dropped.
type Fetchable[T any] struct {
	name     string
	fetch    FetchFunc[T]
	fallback func() T
	logger   logger.Logger

	mu        sync.Mutex
	state     State
	data      T
	mounted   bool
	unmounted bool
}

func NewFetchable[T any](name string, fetch FetchFunc[T], fallback func() T, log logger.Logger) *Fetchable[T] {
	return &Fetchable[T]{name: name, fetch: fetch, fallback: fallback, logger: log}
}

func (f *Fetchable[T]) Name() string { return f.name }

// Mount enters Loading and performs the single fetch. It blocks until the
// fetch returns; callers run it on its own goroutine.
func (f *Fetchable[T]) Mount(ctx context.Context) {
	f.mu.Lock()
	if f.mounted || f.unmounted || f.state.Ready() {
		f.mu.Unlock()
		return
	}
	f.mounted = true
	f.state = Loading
	f.mu.Unlock()

	data, err := f.fetch(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unmounted {
		f.logger.Debug("Dropping result for unmounted section", zap.String("section", f.name))
		return
	}
	if err != nil {
		f.logger.Warn("Section fetch failed, using fallback content",
			zap.String("section", f.name), zap.Error(err))
		f.data = f.fallback()
		f.state = ReadyFallback
		return
	}
	f.data = data
	f.state = ReadyRemote
}

// Unmount is final: a later Mount does nothing.
func (f *Fetchable[T]) Unmount() {
	f.mu.Lock()
	f.mounted = false
	f.unmounted = true
	f.mu.Unlock()
}

// Snapshot returns the current state and data together.
func (f *Fetchable[T]) Snapshot() (State, T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.data
}

func (f *Fetchable[T]) State() State {
	s, _ := f.Snapshot()
	return s
}

func (f *Fetchable[T]) Data() T {
	_, d := f.Snapshot()
	return d
}
