// Package viewstate exposes each remote operation as an observable value of
// type resource.Resource[T]. A holder starts idle, publishes Loading
// synchronously when a refresh begins, then publishes exactly one terminal
// Success or Error from a background goroutine. A newer refresh cancels the
// in-flight one and suppresses its publication, so observers never see a
// stale terminal state after a fresh Loading.
package viewstate

import (
	"context"
	"sync"

	"github.com/pisystem/client/internal/resource"
)

// Holder is the shared state machine behind every concrete holder. The zero
// value is not usable; embed it via newHolder.
type Holder[T any] struct {
	mu      sync.Mutex
	value   resource.Resource[T]
	started bool
	gen     uint64
	cancel  context.CancelFunc
	subs    map[int]func(resource.Resource[T])
	nextSub int
}

func newHolder[T any]() *Holder[T] {
	return &Holder[T]{subs: make(map[int]func(resource.Resource[T]))}
}

// Value returns the last published Resource and true, or (zero, false) when
// nothing has been published yet.
func (h *Holder[T]) Value() (resource.Resource[T], bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.value, h.started
}

// Subscribe registers fn to be called on every publication, starting with
// the current value if there is one. The returned function removes the
// subscription; calling it twice is harmless.
func (h *Holder[T]) Subscribe(fn func(resource.Resource[T])) func() {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	current, started := h.value, h.started
	h.mu.Unlock()

	if started {
		fn(current)
	}
	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// publish records r as the current value and notifies subscribers. Callbacks
// run outside the lock, so a subscriber may call back into the holder.
func (h *Holder[T]) publish(r resource.Resource[T]) {
	h.mu.Lock()
	h.value = r
	h.started = true
	fns := make([]func(resource.Resource[T]), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(r)
	}
}

// run starts a refresh: Loading is published before run returns, the fetch
// runs in a goroutine, and its terminal Resource is published only if no
// newer refresh has started in the meantime. The previous in-flight fetch,
// if any, is cancelled.
func (h *Holder[T]) run(ctx context.Context, fetch func(context.Context) resource.Resource[T]) {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.gen++
	gen := h.gen
	h.mu.Unlock()

	h.publish(resource.Loading[T]())

	go func() {
		defer cancel()
		res := fetch(ctx)

		h.mu.Lock()
		if gen != h.gen {
			h.mu.Unlock()
			return
		}
		h.cancel = nil
		h.mu.Unlock()

		h.publish(res)
	}()
}

// Close cancels the in-flight fetch, if any. The holder remains usable.
func (h *Holder[T]) Close() {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.gen++
	h.mu.Unlock()
}
