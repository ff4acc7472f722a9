//go:generate mockgen -source=events.go -destination=events_mock.go -package=events
package events

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"lookout/internal/app/errors"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// Event names sent by the monitor, plus the synthetic connection events
const (
	EventConnected         = "connected"
	EventDisconnected      = "disconnected"
	EventTaskStatusChanged = "task_status_changed"
	EventTasksUpdated      = "tasks_updated"
)

// Handler receives the raw data field of a frame
type Handler func(data json.RawMessage)

// Subscription is the handle returned by Subscribe
type Subscription interface {
	Unsubscribe()
}

// Stream dispatches monitor websocket frames to subscribed handlers
type Stream interface {
	Start()
	Stop()
	Connected() bool
	Subscribe(event string, handler Handler) Subscription
}

// TaskStatus is the payload of task_status_changed
type TaskStatus struct {
	ID      int  `json:"id"`
	Running bool `json:"is_running"`
}

// DecodeTaskStatus parses a task_status_changed payload
func DecodeTaskStatus(data json.RawMessage) (TaskStatus, error) {
	var status TaskStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return TaskStatus{}, err
	}

	return status, nil
}

type frame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type stream struct {
	url       string
	reconnect time.Duration
	header    http.Header
	dialer    *websocket.Dialer
	log       logger.Logger

	mu        sync.Mutex
	handlers  map[string]map[int]Handler
	nextID    int
	connected bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewStream creates a stopped stream for the configured server
func NewStream(cfg *config.Config, log logger.Logger) Stream {
	header := http.Header{}
	if cfg.HasCredentials() {
		token := base64.StdEncoding.EncodeToString([]byte(cfg.Server.Username + ":" + cfg.Server.Password))
		header.Set("Authorization", "Basic "+token)
	}

	return &stream{
		url:       cfg.EventsURL(),
		reconnect: cfg.Events.Reconnect,
		header:    header,
		dialer:    &websocket.Dialer{HandshakeTimeout: cfg.Server.Timeout},
		log:       log.WithComponent("EVENTS"),
		handlers:  make(map[string]map[int]Handler),
	}
}

// Start connects in the background and keeps reconnecting until Stop; calling it twice is a no-op
func (s *stream) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
}

// Stop closes the connection and waits for the reader to exit. Must not be called from a Handler
func (s *stream) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Connected reports whether a websocket connection is currently open
func (s *stream) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.connected
}

// Subscribe registers handler for event until the returned handle is released
func (s *stream) Subscribe(event string, handler Handler) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	if s.handlers[event] == nil {
		s.handlers[event] = make(map[int]Handler)
	}

	s.handlers[event][id] = handler

	return &subscription{stream: s, event: event, id: id}
}

func (s *stream) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		err := s.session(ctx)
		if ctx.Err() != nil {
			return
		}

		s.log.Warn().Err(err).Msgf("Event stream closed, reconnecting in %s", s.reconnect)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.reconnect):
		}
	}
}

// session holds one connection until it fails or ctx is cancelled
func (s *stream) session(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.url, s.header)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToConnectStream, err)
	}

	closed := make(chan struct{})
	defer close(closed)

	go func() {
		select {
		case <-ctx.Done():
		case <-closed:
		}

		conn.Close()
	}()

	s.setConnected(true)
	s.log.Info().Str("url", s.url).Msg("Event stream connected")
	s.emit(EventConnected, json.RawMessage(`{"isConnected":true}`))

	defer func() {
		s.setConnected(false)
		s.emit(EventDisconnected, json.RawMessage(`{"isConnected":false}`))
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			s.log.Warn().Err(err).Msg("Failed to parse event frame")
			continue
		}

		if f.Type != "" {
			s.emit(f.Type, f.Data)
		}
	}
}

func (s *stream) setConnected(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connected = v
}

func (s *stream) emit(event string, data json.RawMessage) {
	s.mu.Lock()
	handlers := make([]Handler, 0, len(s.handlers[event]))
	for _, h := range s.handlers[event] {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(data)
	}
}

type subscription struct {
	stream *stream
	event  string
	id     int
	once   sync.Once
}

// Unsubscribe removes the handler; repeated calls do nothing
func (sub *subscription) Unsubscribe() {
	sub.once.Do(func() {
		sub.stream.mu.Lock()
		defer sub.stream.mu.Unlock()

		delete(sub.stream.handlers[sub.event], sub.id)

		if len(sub.stream.handlers[sub.event]) == 0 {
			delete(sub.stream.handlers, sub.event)
		}
	})
}
