package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"lookout/internal/app/api"
	"lookout/internal/app/errors"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

type testDeps struct {
	client *api.MockClient
	log    *logger.MockLogger
	cfg    *config.Config
	unauth func()
}

func newTestSession(t *testing.T) (Session, *testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	deps := &testDeps{
		client: api.NewMockClient(ctrl),
		log:    logger.NewMockLogger(ctrl),
		cfg:    config.DefaultConfig(),
	}

	deps.cfg.Server.Username = "admin"
	deps.cfg.Server.Password = "admin123"

	componentLogger := logger.NewMockLogger(ctrl)
	componentLogger.EXPECT().Info().Return(nil).AnyTimes()
	componentLogger.EXPECT().Warn().Return(nil).AnyTimes()

	deps.log.EXPECT().WithComponent("SESSION").Return(componentLogger)
	deps.client.EXPECT().OnUnauthorized(gomock.Any()).Do(func(fn func()) { deps.unauth = fn })

	return NewSession(deps.cfg, deps.client, deps.log), deps
}

func Test_NewSession(t *testing.T) {
	s, deps := newTestSession(t)

	assert.NotNil(t, s)
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Username())
	assert.NotNil(t, deps.unauth)
}

func Test_Login(t *testing.T) {
	tests := []struct {
		name     string
		before   func(d *testDeps)
		error    error
		loggedIn bool
	}{
		{
			name: "Accepted",
			before: func(d *testDeps) {
				d.client.EXPECT().CheckAuth(gomock.Any(), "admin", "admin123").Return(nil)
				d.client.EXPECT().SetCredentials("admin", "admin123")
			},
			loggedIn: true,
		},
		{
			name: "Rejected",
			before: func(d *testDeps) {
				d.client.EXPECT().CheckAuth(gomock.Any(), "admin", "admin123").
					Return(fmt.Errorf("%w: %w", errors.ErrLoginRejected, errors.ErrUnauthorized))
			},
			error: errors.ErrLoginRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, deps := newTestSession(t)
			tt.before(deps)

			err := s.Login(context.Background())
			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.loggedIn, s.LoggedIn())
		})
	}
}

func Test_Watch(t *testing.T) {
	s, deps := newTestSession(t)

	deps.client.EXPECT().CheckAuth(gomock.Any(), "admin", "admin123").Return(nil).Times(2)
	deps.client.EXPECT().SetCredentials("admin", "admin123").Times(2)

	var changes []bool

	cancel := s.Watch(func(loggedIn bool) { changes = append(changes, loggedIn) })

	assert.NoError(t, s.Login(context.Background()))
	assert.NoError(t, s.Login(context.Background()))
	assert.Equal(t, "admin", s.Username())

	deps.unauth()
	deps.unauth()

	assert.False(t, s.LoggedIn())
	assert.Equal(t, []bool{true, false}, changes)

	cancel()
	cancel()

	assert.NoError(t, s.Login(context.Background()))
	assert.Equal(t, []bool{true, false}, changes)
}

type mockLifecycle struct {
	hooks []fx.Hook
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	m.hooks = append(m.hooks, hook)
}

func Test_register(t *testing.T) {
	tests := []struct {
		name        string
		credentials bool
		before      func(s *MockSession)
		error       error
	}{
		{
			name:        "No credentials skips login",
			credentials: false,
		},
		{
			name:        "Login succeeds",
			credentials: true,
			before: func(s *MockSession) {
				s.EXPECT().Login(gomock.Any()).Return(nil)
			},
		},
		{
			name:        "Unreachable server does not block startup",
			credentials: true,
			before: func(s *MockSession) {
				s.EXPECT().Login(gomock.Any()).Return(errors.ErrRequestFailed)
			},
		},
		{
			name:        "Rejected credentials abort startup",
			credentials: true,
			before: func(s *MockSession) {
				s.EXPECT().Login(gomock.Any()).Return(errors.ErrLoginRejected)
			},
			error: errors.ErrLoginRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSession := NewMockSession(ctrl)
			mockLogger := logger.NewMockLogger(ctrl)
			mockLogger.EXPECT().Debug().Return(nil).AnyTimes()

			cfg := config.DefaultConfig()
			if tt.credentials {
				cfg.Server.Username = "admin"
				cfg.Server.Password = "admin123"
			}

			if tt.before != nil {
				tt.before(mockSession)
			}

			lc := &mockLifecycle{}
			register(lc, cfg, mockSession, mockLogger)
			assert.Len(t, lc.hooks, 1)

			err := lc.hooks[0].OnStart(context.Background())
			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
			} else {
				assert.NoError(t, err)
			}

			mockSession.EXPECT().Logout()
			assert.NoError(t, lc.hooks[0].OnStop(context.Background()))
		})
	}
}
