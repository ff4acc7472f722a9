//go:generate mockgen -source=session.go -destination=session_mock.go -package=session
package session

import (
	"context"
	"sync"

	"lookout/internal/app/api"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// Watcher is notified whenever the logged-in state flips
type Watcher func(loggedIn bool)

// Session is the process-wide authentication state shared by the API client and the event stream
type Session interface {
	Login(ctx context.Context) error
	Logout()
	LoggedIn() bool
	Username() string
	Watch(fn Watcher) (cancel func())
}

type session struct {
	mu       sync.Mutex
	client   api.Client
	cfg      *config.Config
	log      logger.Logger
	username string
	loggedIn bool
	watchers map[int]Watcher
	nextID   int
}

// NewSession creates a logged-out session and hooks it to the client's 401 handling
func NewSession(cfg *config.Config, client api.Client, log logger.Logger) Session {
	s := &session{
		client:   client,
		cfg:      cfg,
		log:      log.WithComponent("SESSION"),
		watchers: make(map[int]Watcher),
	}

	client.OnUnauthorized(s.Logout)

	return s
}

// Login verifies the configured credentials and marks the session as logged in
func (s *session) Login(ctx context.Context) error {
	username, password := s.cfg.Server.Username, s.cfg.Server.Password

	if err := s.client.CheckAuth(ctx, username, password); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("Login failed")
		return err
	}

	s.client.SetCredentials(username, password)

	s.mu.Lock()
	changed := !s.loggedIn
	s.username = username
	s.loggedIn = true
	watchers := s.snapshotWatchers()
	s.mu.Unlock()

	s.log.Info().Str("username", username).Msg("Logged in")

	if changed {
		notify(watchers, true)
	}

	return nil
}

// Logout clears the session; calling it while logged out does nothing
func (s *session) Logout() {
	s.mu.Lock()
	if !s.loggedIn {
		s.mu.Unlock()
		return
	}

	s.loggedIn = false
	s.username = ""
	watchers := s.snapshotWatchers()
	s.mu.Unlock()

	s.log.Info().Msg("Logged out")

	notify(watchers, false)
}

// LoggedIn reports whether the last login succeeded and no 401 was seen since
func (s *session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loggedIn
}

// Username returns the logged-in user or an empty string
func (s *session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.username
}

// Watch registers fn for login state changes; the returned cancel is idempotent
func (s *session) Watch(fn Watcher) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.watchers[id] = fn

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.watchers, id)
		})
	}
}

func (s *session) snapshotWatchers() []Watcher {
	watchers := make([]Watcher, 0, len(s.watchers))
	for _, w := range s.watchers {
		watchers = append(watchers, w)
	}

	return watchers
}

func notify(watchers []Watcher, loggedIn bool) {
	for _, w := range watchers {
		w(loggedIn)
	}
}
