package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidInterval      = errors.New("update interval must be a positive number of seconds")
	ErrInvalidSortCriterion = errors.New("invalid sorting criterion, use 'cpu' or 'memory'")
	ErrInvalidFilterKind    = errors.New("invalid filter kind, use 'user', 'cpu', 'memory', or 'command'")
	ErrInvalidFilterValue   = errors.New("invalid filter value")
	ErrInvalidDisplayRows   = errors.New("display rows must be positive")

	ErrMonitorAlreadyActive = errors.New("monitoring is already active")
	ErrMonitorNotActive     = errors.New("monitoring is not active")
	ErrMonitorAlreadyPaused = errors.New("monitoring is already paused")
	ErrMonitorNotPaused     = errors.New("monitoring is not paused")

	ErrInvalidPID       = errors.New("invalid PID")
	ErrCannotKillSelf   = errors.New("cannot kill the monitor's own process")
	ErrProcessNotFound  = errors.New("no such process")
	ErrNoProcessMatched = errors.New("no processes matched the criterion")

	ErrFailedToOpenEventLog = errors.New("failed to open event log file")
	ErrUnknownCommand       = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
