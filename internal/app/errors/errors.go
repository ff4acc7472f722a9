package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrFailedToLoadEnv     = errors.New("failed to load env file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrServerURLRequired     = errors.New("server url is required")
	ErrInvalidServerURL      = errors.New("invalid server url")
	ErrInvalidRequestTimeout = errors.New("request timeout must be positive")
	ErrInvalidLogsSource     = errors.New("invalid logs source")
	ErrLogsDirRequired       = errors.New("logs source 'file' requires dir field")
	ErrInvalidLogsPattern    = errors.New("logs pattern must contain {id}")
	ErrInvalidPageSize       = errors.New("history page size must be between 1 and 1000")
	ErrInvalidRefresh        = errors.New("refresh interval must be positive")
	ErrInvalidLogsBuffer     = errors.New("logs buffer must be positive")
	ErrInvalidReconnect      = errors.New("events reconnect delay must be positive")

	ErrUnauthorized          = errors.New("unauthorized")
	ErrRequestFailed         = errors.New("request failed")
	ErrFailedToCreateRequest = errors.New("failed to create request")
	ErrFailedToDecodeBody    = errors.New("failed to decode response body")
	ErrLoginRejected         = errors.New("login rejected")
	ErrCredentialsRequired   = errors.New("username and password are required")

	ErrNoActiveTask       = errors.New("no active task")
	ErrInvalidTaskID      = errors.New("invalid task id")
	ErrTaskNotFound       = errors.New("task not found")
	ErrFailedToOpenLog    = errors.New("failed to open log file")
	ErrFailedToReadLog    = errors.New("failed to read log file")
	ErrFailedToClearLog   = errors.New("failed to clear log file")
	ErrInvalidGlobPattern = errors.New("invalid glob pattern")

	ErrFailedToConnectStream = errors.New("failed to connect event stream")
	ErrStreamNotStarted      = errors.New("event stream not started")

	ErrFileAlreadyExists   = errors.New("file already exists")
	ErrFailedToWriteConfig = errors.New("failed to write config file")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrClearCancelled      = errors.New("clear cancelled")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
