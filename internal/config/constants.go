package config

import "time"

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.3.0"
)

// monitor constants
const (
	// DefaultIntervalSeconds is how often the sampler loops refresh the table.
	DefaultIntervalSeconds = 5

	// PauseQuantum bounds pause/resume and stop latency; the loops re-check
	// the control flags at least this often regardless of the interval.
	PauseQuantum = 100 * time.Millisecond

	DefaultSortBy = "cpu"
)

// display constants
const (
	// DefaultDisplayRows caps how many processes one render shows.
	DefaultDisplayRows = 30

	// CommandDisplayWidth is the point past which commands are truncated.
	CommandDisplayWidth = 35
)

// event log constants
const (
	DefaultEventLogFile = "procman.log"
)

// config file constants
const (
	FileName = "procman.yaml"

	// WatchDebounce coalesces rapid config file writes into one reload.
	WatchDebounce = 300 * time.Millisecond
)
