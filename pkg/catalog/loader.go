package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"agritrust/entities"
)

// FetchFunc fetches the full product collection from the backing store.
type FetchFunc func(ctx context.Context) ([]entities.ProductView, error)

// Loader serializes collection refreshes. Overlapping loads are collapsed by
// singleflight, and a completion belonging to an older initiation never
// overwrites a newer one (last-initiated-wins).
type Loader struct {
	fetch FetchFunc

	mu      sync.Mutex
	seq     uint64 // last initiated load
	applied uint64 // load whose result is currently held
	current []entities.ProductView

	sf singleflight.Group
}

func NewLoader(fetch FetchFunc) *Loader { return &Loader{fetch: fetch} }

// Load starts a refresh and returns its result. The shared snapshot is only
// replaced when this load is the newest one initiated.
func (l *Loader) Load(ctx context.Context) ([]entities.ProductView, error) {
	l.mu.Lock()
	l.seq++
	version := l.seq
	l.mu.Unlock()

	v, err, _ := l.sf.Do("products", func() (any, error) {
		return l.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	got := v.([]entities.ProductView)

	l.mu.Lock()
	if version > l.applied {
		l.applied = version
		l.current = got
	}
	l.mu.Unlock()
	return got, nil
}

// Current returns the last applied snapshot, which may be nil before the
// first successful Load.
func (l *Loader) Current() []entities.ProductView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Invalidate drops the snapshot so the next Load hits the store.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.current = nil
	l.mu.Unlock()
}
