package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"slices"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// EnvDebounceMS overrides the tag batching window in milliseconds
const EnvDebounceMS = "TASKDESK_EVENT_DEBOUNCE_MS"

// ErrQueueFull is returned by SendEvent when the batcher is not keeping up
var ErrQueueFull = errors.New("event queue full")

// Client is a connection to the taskdesk daemon for sharing live updates.
// It handles event sending, receiving, batching, reconnection, and subscriptions.
type Client struct {
	socketPath string
	origin     string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	// Batching configuration
	eventQueue chan Event
	debounce   time.Duration
	closed     bool

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	scope        string
	lastSequence int64

	ctx    context.Context
	cancel context.CancelFunc

	batcherOnce sync.Once
	batcherDone chan struct{}
}

// NewClient creates a new event client for scope but does not connect.
// The socket path is the full path to the Unix domain socket.
func NewClient(socketPath, scope string) *Client {
	debounceMs := 100
	if envVal := os.Getenv(EnvDebounceMS); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounceMs = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		origin:      uuid.NewString(),
		eventQueue:  make(chan Event, 100),
		debounce:    time.Duration(debounceMs) * time.Millisecond,
		maxRetries:  5,
		baseDelay:   1 * time.Second,
		scope:       scope,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}
}

// Origin returns the identifier stamped on every event this client sends
func (c *Client) Origin() string {
	return c.origin
}

// Connect establishes a connection to the daemon socket and subscribes to the client's scope.
// Dial failures are returned as *DaemonError.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return ClassifyDaemonError(unwrapDial(err))
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)
	// A fresh daemon numbers events from 1 again
	c.lastSequence = 0

	msg := Message{
		Version:   ProtocolVersion,
		Type:      "subscribe",
		Subscribe: &SubscribeMessage{Scope: c.scope},
	}
	if err := c.encoder.Encode(msg); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Error("Error closing connection", "error", closeErr)
		}
		c.conn = nil
		return fmt.Errorf("failed to send subscription: %w", err)
	}

	c.batcherOnce.Do(func() {
		go c.startBatcher()
	})

	return nil
}

// unwrapDial digs the syscall error out of a *net.OpError so classification works
func unwrapDial(err error) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		var sysErr *os.SyscallError
		if errors.As(opErr.Err, &sysErr) {
			if errors.Is(sysErr.Err, syscall.ENOENT) {
				return os.ErrNotExist
			}
			if errors.Is(sysErr.Err, syscall.EACCES) {
				return os.ErrPermission
			}
			return sysErr.Err
		}
	}
	return err
}

// SendEvent queues an event to be sent to the daemon. Origin, scope and
// timestamp are filled in when empty. Returns ErrQueueFull instead of blocking.
func (c *Client) SendEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("event client closed")
	}

	if event.Origin == "" {
		event.Origin = c.origin
	}
	if event.Scope == "" {
		event.Scope = c.scope
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// tagBatch accumulates tag invalidations within one debounce window
type tagBatch struct {
	pending bool
	tags    []string
	scope   string
}

func (b *tagBatch) add(event Event) {
	if !b.pending {
		b.pending = true
		b.scope = event.Scope
	} else if b.scope != event.Scope {
		// Mixed scopes within one window: widen to every scope
		b.scope = ""
	}
	for _, tag := range event.Tags {
		if !slices.Contains(b.tags, tag) {
			b.tags = append(b.tags, tag)
		}
	}
}

// startBatcher runs in a goroutine. Tag invalidations are merged and sent at most
// once per debounce window. Session changes are sent immediately, after any
// pending tags, so ordering between the two is kept.
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var batch tagBatch

	flushPending := func() {
		if !batch.pending {
			return
		}
		event := Event{
			Type:      EventTagsInvalidated,
			Scope:     batch.scope,
			Origin:    c.origin,
			Tags:      batch.tags,
			Timestamp: time.Now(),
		}
		if err := c.sendToSocket(event); err != nil && !isConnectionError(err) {
			slog.Error("Failed to send batched event", "error", err)
		}
		batch = tagBatch{}
	}

	handle := func(event Event) {
		if event.Type == EventTagsInvalidated {
			batch.add(event)
			return
		}
		flushPending()
		if err := c.sendToSocket(event); err != nil && !isConnectionError(err) {
			slog.Error("Failed to send event", "type", event.Type, "error", err)
		}
	}

	for {
		select {
		case <-c.ctx.Done():
			flushPending()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				flushPending()
				return
			}
			handle(event)

		case <-ticker.C:
			flushPending()
		}
	}
}

// sendToSocket writes one event to the daemon
func (c *Client) sendToSocket(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("not connected to daemon")
	}

	// Short write deadline to detect dead connections
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	msg := Message{
		Version: ProtocolVersion,
		Type:    "event",
		Event:   &event,
	}
	if event.Type == EventPong {
		msg.Type = "pong"
	}
	return c.encoder.Encode(msg)
}

// Listen returns a channel of events sent by other clients in this client's scope.
// It reconnects automatically. The channel is closed when ctx is done or
// reconnection gives up.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()
	connected := c.conn != nil
	c.mu.Unlock()
	if !connected {
		return nil, fmt.Errorf("not connected to daemon")
	}

	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.ctx.Done():
			return
		default:
		}

		err := c.readEvents(ctx, eventChan)
		if err == nil || ctx.Err() != nil || c.ctx.Err() != nil {
			return
		}

		slog.Warn("Connection to daemon lost, reconnecting", "error", err)
		if c.reconnect(ctx) {
			slog.Info("Reconnected to daemon")
			continue
		}

		slog.Error("Failed to reconnect to daemon, giving up", "attempts", c.maxRetries)
		return
	}
}

// readEvents reads messages from the socket until the connection fails
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return fmt.Errorf("connection closed")
		}
		// Read deadline detects hung connections; the daemon pings every 30s
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil || msg.Event.Origin == c.origin {
				continue
			}
			// Sequence IDs come from the daemon; anything not newer is a duplicate
			if msg.Event.SequenceID != 0 && msg.Event.SequenceID <= c.lastSequence {
				continue
			}
			c.lastSequence = msg.Event.SequenceID
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return ctx.Err()
			}

		case "ping":
			if err := c.sendToSocket(Event{Type: EventPong, Origin: c.origin}); err != nil && !isConnectionError(err) {
				slog.Error("Failed to send pong", "error", err)
			}
		}
	}
}

// isConnectionError checks if an error is a network connection error
func isConnectionError(err error) bool {
	return errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET)
}

// reconnect attempts to reconnect with exponential backoff: 1s, 2s, 4s, 8s, 16s
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-c.ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.conn != nil {
				if err := c.conn.Close(); err != nil && !isConnectionError(err) {
					slog.Error("Error closing connection during reconnect", "error", err)
				}
				c.conn = nil
			}
			c.mu.Unlock()

			if err := c.Connect(ctx); err == nil {
				slog.Info("Reconnected to daemon", "attempt", i+1, "max_retries", c.maxRetries)
				return true
			}

			slog.Debug("Reconnection attempt failed", "attempt", i+1, "retry_in", delay)
			delay *= 2
		}
	}

	return false
}

// Subscribe changes the scope this client hears about. "" means every scope.
func (c *Client) Subscribe(scope string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scope = scope

	if c.conn == nil {
		return fmt.Errorf("not connected to daemon")
	}

	// An earlier write deadline may have expired while idle
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	return c.encoder.Encode(Message{
		Version:   ProtocolVersion,
		Type:      "subscribe",
		Subscribe: &SubscribeMessage{Scope: scope},
	})
}

// Close flushes pending events, closes the connection and stops all goroutines.
// It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.eventQueue)
	started := c.conn != nil
	c.mu.Unlock()

	// Let the batcher flush before cancelling, so pending tags are not lost
	if started {
		select {
		case <-c.batcherDone:
		case <-time.After(2 * c.debounce):
		}
	}
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}
