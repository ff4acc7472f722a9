//go:generate mockgen -source=bus.go -destination=bus_mock.go -package=bus
package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Log buffer events
const (
	EventLogsReset          MessageType = "logs_reset"
	EventLogsAppended       MessageType = "logs_appended"
	EventLogsPrepended      MessageType = "logs_prepended"
	EventLogsCleared        MessageType = "logs_cleared"
	EventLogsFailed         MessageType = "logs_failed"
	EventAutoRefreshChanged MessageType = "auto_refresh_changed"
)

// Monitor backend events
const (
	EventTaskStatusChanged  MessageType = "task_status_changed"
	EventStreamConnected    MessageType = "stream_connected"
	EventStreamDisconnected MessageType = "stream_disconnected"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// LogsReset indicates the buffer was replaced, either emptied or seeded from history
type LogsReset struct {
	TaskID  *int
	Content string
}

// LogsAppended carries the increment appended by a forward poll
type LogsAppended struct {
	TaskID    int
	Content   string
	Rotated   bool
	Truncated bool
}

// LogsPrepended carries an older history page placed above the buffer
type LogsPrepended struct {
	TaskID  int
	Content string
	HasMore bool
}

// LogsCleared indicates the server-side log for a task was cleared
type LogsCleared struct {
	TaskID int
}

// LogsFailed carries the error recorded in the controller error slot
type LogsFailed struct {
	TaskID *int
	Error  error
}

// AutoRefreshChanged indicates the polling timer was armed or disarmed
type AutoRefreshChanged struct {
	Enabled bool
}

// TaskStatusChanged mirrors the monitor's task_status_changed websocket event
type TaskStatusChanged struct {
	ID      int
	Running bool
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	cfg         *config.Config
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	var busLog logger.Logger
	if log != nil {
		busLog = log.WithComponent("BUS")
	}

	return &bus{
		cfg:         cfg,
		subscribers: make([]chan Message, 0),
		log:         busLog,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.cfg.Logs.Buffer)
	if b.closed {
		close(ch)
		return ch
	}

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
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
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

func formatData(data interface{}) string {
	switch d := data.(type) {
	case LogsReset:
		return fmt.Sprintf("{task: %s, chars: %d}", formatTask(d.TaskID), len(d.Content))
	case LogsAppended:
		return fmt.Sprintf("{task: %d, chars: %d, rotated: %t, truncated: %t}", d.TaskID, len(d.Content), d.Rotated, d.Truncated)
	case LogsPrepended:
		return fmt.Sprintf("{task: %d, chars: %d, more: %t}", d.TaskID, len(d.Content), d.HasMore)
	case LogsCleared:
		return fmt.Sprintf("{task: %d}", d.TaskID)
	case LogsFailed:
		return fmt.Sprintf("{task: %s, error: %v}", formatTask(d.TaskID), d.Error)
	case AutoRefreshChanged:
		return fmt.Sprintf("{enabled: %t}", d.Enabled)
	case TaskStatusChanged:
		return fmt.Sprintf("{task: %d, running: %t}", d.ID, d.Running)
	case nil:
		return "{}"
	default:
		return fmt.Sprintf("%+v", data)
	}
}

func formatTask(id *int) string {
	if id == nil {
		return "none"
	}

	return fmt.Sprintf("%d", *id)
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
