// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    MalformedEvery: 10, // sample logs: ~every 10th malformed document
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c := jsonext.New(jsonext.Options{Hooks: hooks}) // or `raw` if you don't want async
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/jsonext"
)

// Hooks forwards events to inner on a fixed pool of workers. Events that
// arrive while the queue is full are dropped, never blocking the codec.
type Hooks struct {
	inner   jsonext.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex // guards q against send after close
	closed  bool
	dropped atomic.Uint64
}

var _ jsonext.Hooks = (*Hooks)(nil)

func New(inner jsonext.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events after Close are
// dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped returns how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) UnsupportedType(name string, key bool) {
	h.try(func() { h.inner.UnsupportedType(name, key) })
}
func (h *Hooks) MalformedInput(err error)    { h.try(func() { h.inner.MalformedInput(err) }) }
func (h *Hooks) EncoderReplaced(name string) { h.try(func() { h.inner.EncoderReplaced(name) }) }
