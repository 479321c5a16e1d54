package page

import (
	"net/http"
	"sync"
)

// EventsPath is where the dev server streams reload events.
const EventsPath = "/__raio/events"

// Reload fans change notifications out to connected browsers.
type Reload struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}

	done      chan struct{}
	closeOnce sync.Once
}

// NewReload creates an empty hub.
func NewReload() *Reload {
	return &Reload{
		subs: map[chan struct{}]struct{}{},
		done: make(chan struct{}),
	}
}

// Close ends every open stream. Streams opened afterwards return at once.
func (h *Reload) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Subscribe registers a listener. The channel holds at most one pending
// notification.
func (h *Reload) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a listener.
func (h *Reload) Unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

// Notify wakes every listener without blocking on slow ones.
func (h *Reload) Notify() {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()
}

// Subscribers returns the number of connected listeners.
func (h *Reload) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// ServeHTTP streams reload events as server-sent events.
func (h *Reload) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	_, _ = w.Write([]byte("event: ready\ndata: 1\n\n"))
	flusher.Flush()

	for {
		select {
		case <-req.Context().Done():
			return
		case <-h.done:
			return
		case <-ch:
			_, _ = w.Write([]byte("event: reload\ndata: 1\n\n"))
			flusher.Flush()
		}
	}
}
