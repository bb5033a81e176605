// Package loader makes optional enhancement capabilities (the celebration
// effect and the poster rasterizer) available on demand. Core transitions
// never wait on it: callers check Ready at call time or queue a
// continuation with OnReady.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"quickreview/internal/logging"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ID names a loadable capability.
type ID string

const (
	Confetti   ID = "confetti"
	Rasterizer ID = "rasterizer"
)

// ErrUnknownCapability is returned for ids nobody registered.
var ErrUnknownCapability = errors.New("unknown capability")

// LoadFunc brings a capability up. It is called at most once per
// successful load.
type LoadFunc func(ctx context.Context) error

// Loader tracks registered capabilities and their readiness.
type Loader struct {
	mu      sync.Mutex
	funcs   map[ID]LoadFunc
	ready   map[ID]bool
	waiting map[ID][]func()
	group   singleflight.Group
}

// New creates an empty loader.
func New() *Loader {
	return &Loader{
		funcs:   make(map[ID]LoadFunc),
		ready:   make(map[ID]bool),
		waiting: make(map[ID][]func()),
	}
}

// Register associates fn with id, replacing any earlier registration.
func (l *Loader) Register(id ID, fn LoadFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.funcs[id] = fn
}

// Ready reports whether id has loaded successfully.
func (l *Loader) Ready(id ID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ready[id]
}

// OnReady runs fn once id is ready: immediately when it already is,
// otherwise right after the load completes. Continuations for a load that
// fails stay queued for a later successful attempt.
func (l *Loader) OnReady(id ID, fn func()) {
	l.mu.Lock()
	if l.ready[id] {
		l.mu.Unlock()
		fn()
		return
	}
	l.waiting[id] = append(l.waiting[id], fn)
	l.mu.Unlock()
}

// EnsureLoaded loads id unless it is already loaded. Concurrent callers
// share a single in-flight load.
func (l *Loader) EnsureLoaded(ctx context.Context, id ID) error {
	l.mu.Lock()
	if l.ready[id] {
		l.mu.Unlock()
		return nil
	}
	fn, ok := l.funcs[id]
	l.mu.Unlock()
	if !ok {
		return fmt.Errorf("load %s: %w", id, ErrUnknownCapability)
	}

	_, err, _ := l.group.Do(string(id), func() (interface{}, error) {
		if l.Ready(id) {
			return nil, nil
		}
		log := logging.Get(logging.CategoryLoader)
		log.Debug("loading capability %s", id)
		if err := fn(ctx); err != nil {
			log.Warn("capability %s failed to load: %v", id, err)
			return nil, fmt.Errorf("load %s: %w", id, err)
		}

		l.mu.Lock()
		l.ready[id] = true
		queued := l.waiting[id]
		delete(l.waiting, id)
		l.mu.Unlock()

		log.Info("capability %s ready (%d queued continuations)", id, len(queued))
		for _, cont := range queued {
			cont()
		}
		return nil, nil
	})
	return err
}

// LoadAll loads every id in parallel and returns the first error. Ids that
// do load stay ready even when a sibling fails.
func (l *Loader) LoadAll(ctx context.Context, ids ...ID) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return l.EnsureLoaded(gctx, id)
		})
	}
	return g.Wait()
}
