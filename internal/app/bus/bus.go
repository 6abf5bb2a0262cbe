package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"procman/internal/config/logger"
)

// subscriberBuffer is the per-subscriber channel depth; slow consumers drop
// messages rather than stall the publisher
const subscriberBuffer = 64

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventMonitorStarted  MessageType = "monitor_started"
	EventMonitorStopped  MessageType = "monitor_stopped"
	EventMonitorPaused   MessageType = "monitor_paused"
	EventMonitorResumed  MessageType = "monitor_resumed"
	EventSortChanged     MessageType = "sort_changed"
	EventFilterChanged   MessageType = "filter_changed"
	EventIntervalChanged MessageType = "interval_changed"
	EventProcessKilled   MessageType = "process_killed"
	EventProcessesKilled MessageType = "processes_killed"
	EventCommandRejected MessageType = "command_rejected"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
}

// MonitorStarted indicates the sampling loops were spawned
type MonitorStarted struct {
	SortBy   string
	Interval int
}

// SortChanged indicates a new display ordering criterion
type SortChanged struct {
	SortBy string
}

// FilterChanged indicates a new display filter
type FilterChanged struct {
	Kind  string
	Value string
}

// IntervalChanged indicates a new sampling interval
type IntervalChanged struct {
	Seconds int
}

// ProcessKilled indicates a single process was terminated
type ProcessKilled struct {
	PID int
}

// ProcessesKilled indicates a bulk termination by criterion
type ProcessesKilled struct {
	Kind  string
	Value string
	Count int
}

// CommandRejected indicates the control surface refused user input
type CommandRejected struct {
	Command string
	Reason  string
}

// Bus handles pub/sub messaging between the control surface, the event log,
// and anything else observing monitor state
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(log logger.Logger) Bus {
	return &bus{
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, subscriberBuffer)
	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, FormatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

// FormatData renders an event payload as a short human-readable fragment
func FormatData(data interface{}) string {
	switch d := data.(type) {
	case MonitorStarted:
		return fmt.Sprintf("{sort: %s, interval: %ds}", d.SortBy, d.Interval)
	case SortChanged:
		return fmt.Sprintf("{sort: %s}", d.SortBy)
	case FilterChanged:
		return fmt.Sprintf("{kind: %s, value: %s}", d.Kind, d.Value)
	case IntervalChanged:
		return fmt.Sprintf("{seconds: %d}", d.Seconds)
	case ProcessKilled:
		return fmt.Sprintf("{pid: %d}", d.PID)
	case ProcessesKilled:
		return fmt.Sprintf("{kind: %s, value: %s, killed: %d}", d.Kind, d.Value, d.Count)
	case CommandRejected:
		return fmt.Sprintf("{command: %s, reason: %s}", d.Command, d.Reason)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
