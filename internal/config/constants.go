package config

import "time"

// app constants
const (
	AppName        = "lookout"
	AppDescription = "terminal log viewer for marketplace monitor tasks"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.3.0"

	ConfigFile = "lookout.yaml"
	EnvFile    = ".env"
)

// server constants
const (
	DefaultServerURL = "http://127.0.0.1:8000"
	DefaultTimeout   = 10 * time.Second

	EnvUsername = "LOOKOUT_USERNAME"
	EnvPassword = "LOOKOUT_PASSWORD"
	EnvServer   = "LOOKOUT_SERVER"

	// Names used by the monitor's own .env file
	EnvWebUsername = "WEB_USERNAME"
	EnvWebPassword = "WEB_PASSWORD"
)

// logs source constants
const (
	SourceHTTP = "http"
	SourceFile = "file"

	TaskIDPlaceholder = "{id}"
	DefaultPattern    = "*_" + TaskIDPlaceholder + ".log"

	DefaultPageSize = 50
	MaxPageSize     = 1000

	DefaultRefresh     = 2000 * time.Millisecond
	DefaultLogsBuffer  = 100
	DefaultDebounce    = 150 * time.Millisecond
	LogTailChunkSize   = 8192
	DefaultLogFileMode = 0o644
)

// events constants
const (
	EventsPath       = "/ws"
	DefaultReconnect = 3000 * time.Millisecond
)

// ui constants
const (
	UITick        = 200 * time.Millisecond
	StatsInterval = time.Second

	DefaultLogFile   = "lookout.log"
	LogFileMaxSizeMB = 10
	LogFileBackups   = 3
)
