package events

import "time"

// ProtocolVersion is bumped whenever Message changes incompatibly
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventTagsInvalidated means a mutation invalidated the listed API tags
	EventTagsInvalidated EventType = "tags_invalidated"
	// EventSessionChanged means a client logged in or out
	EventSessionChanged EventType = "session_changed"

	EventPing EventType = "ping"
	EventPong EventType = "pong"
)

// Event is a change notification shared between running clients
type Event struct {
	Type EventType

	// Scope is the API base URL the change applies to. Empty means every scope.
	Scope string

	// Origin identifies the sending process so it can ignore its own echoes
	Origin string

	Tags          []string `json:",omitempty"`
	Authenticated bool     `json:",omitempty"`

	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number assigned by the daemon
}

// SubscribeMessage is sent by clients to choose which scope they hear about
type SubscribeMessage struct {
	Scope string // "" = all scopes
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int
	Type      string            // "event", "subscribe", "ping", "pong"
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}

// Matches reports whether an event for eventScope should reach a subscriber of subScope
func Matches(eventScope, subScope string) bool {
	return eventScope == "" || subScope == "" || eventScope == subScope
}
