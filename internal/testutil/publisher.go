package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/taskdesk/internal/events"
)

// RecordingPublisher is an in-process events.EventPublisher that records
// sent events and lets tests push incoming ones
type RecordingPublisher struct {
	mu       sync.Mutex
	sent     []events.Event
	scope    string
	incoming chan events.Event
	notify   chan struct{}
	closed   bool
}

var _ events.EventPublisher = (*RecordingPublisher)(nil)

// NewRecordingPublisher creates a publisher with an empty record
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{
		incoming: make(chan events.Event, 16),
		notify:   make(chan struct{}, 1),
	}
}

func (p *RecordingPublisher) Connect(context.Context) error { return nil }

func (p *RecordingPublisher) SendEvent(event events.Event) error {
	p.mu.Lock()
	p.sent = append(p.sent, event)
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
	return nil
}

func (p *RecordingPublisher) Listen(context.Context) (<-chan events.Event, error) {
	return p.incoming, nil
}

func (p *RecordingPublisher) Subscribe(scope string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scope = scope
	return nil
}

func (p *RecordingPublisher) Origin() string { return "recording" }

func (p *RecordingPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.incoming)
	}
	return nil
}

// Deliver pushes an event to whoever is listening
func (p *RecordingPublisher) Deliver(event events.Event) {
	p.incoming <- event
}

// Scope returns the last subscribed scope
func (p *RecordingPublisher) Scope() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scope
}

// Sent returns a copy of every event sent so far
func (p *RecordingPublisher) Sent() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.sent...)
}

// IsClosed reports whether Close was called
func (p *RecordingPublisher) IsClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// WaitForSent waits until at least n events were sent and returns them
func (p *RecordingPublisher) WaitForSent(t *testing.T, n int, timeout time.Duration) []events.Event {
	t.Helper()

	deadline := time.After(timeout)
	for {
		if sent := p.Sent(); len(sent) >= n {
			return sent
		}
		select {
		case <-p.notify:
		case <-deadline:
			t.Fatalf("Timeout waiting for %d sent events, got %d", n, len(p.Sent()))
			return nil
		}
	}
}
