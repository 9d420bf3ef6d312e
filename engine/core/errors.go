package core

import (
	"errors"
)

var (
	ErrInvalidTolerance = errors.New("invalid tolerance")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrPropertyViolated = errors.New("property violated")
	ErrWatcherClosed    = errors.New("config watcher already closed")
)
