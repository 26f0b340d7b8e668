package report_case

import (
	"context"
	"sync"
)

// RequestTracker setzt "letzte Anfrage gewinnt" pro Schlüssel durch. Eine neue Anfrage bricht den Kontext
// der vorherigen ab und erhält ein höheres Ticket.
type RequestTracker struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]trackedRequest
}

type trackedRequest struct {
	ticket uint64
	cancel context.CancelFunc
}

func NewRequestTracker() *RequestTracker {
	return &RequestTracker{
		inflight: make(map[string]trackedRequest),
	}
}

// Begin registriert eine neue Anfrage. done muss aufgerufen werden, sobald die Anfrage beendet ist.
func (t *RequestTracker) Begin(ctx context.Context, key string) (context.Context, uint64, func()) {
	reqCtx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	t.seq++
	ticket := t.seq
	if prev, ok := t.inflight[key]; ok {
		prev.cancel()
	}
	t.inflight[key] = trackedRequest{ticket: ticket, cancel: cancel}
	t.mu.Unlock()

	done := func() {
		t.mu.Lock()
		if cur, ok := t.inflight[key]; ok && cur.ticket == ticket {
			delete(t.inflight, key)
		}
		t.mu.Unlock()
		cancel()
	}

	return reqCtx, ticket, done
}

// IsLatest meldet, ob ticket noch die jüngste Anfrage für key ist.
func (t *RequestTracker) IsLatest(key string, ticket uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.inflight[key]
	return ok && cur.ticket == ticket
}
