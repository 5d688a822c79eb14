package orchestrator

import "time"

const (
	// DefaultRetryCount is the number of retries for push attempts
	DefaultRetryCount = 3
	// DefaultRetryDelay is the base delay for exponential backoff
	DefaultRetryDelay = 2 * time.Second
	// DefaultTagMessagePrefix is used when no tag message is supplied
	DefaultTagMessagePrefix = "Release "
)
