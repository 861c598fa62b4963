package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// Services depend on it rather than on *Client so the daemon stays optional.
type EventPublisher interface {
	// Connect establishes a connection to the daemon socket
	Connect(ctx context.Context) error

	// SendEvent queues an event to be sent to the daemon
	SendEvent(event Event) error

	// Listen starts listening for events from other clients
	Listen(ctx context.Context) (<-chan Event, error)

	// Subscribe changes the scope this client hears about
	Subscribe(scope string) error

	// Origin returns the identifier stamped on events from this client
	Origin() string

	// Close closes the connection to the daemon and stops all goroutines
	Close() error
}

// Compile-time verification that *Client implements EventPublisher
var _ EventPublisher = (*Client)(nil)
