package qa

import "time"

// Config holds runtime knobs for the Q&A service.
type Config struct {
	// QueryTimeout bounds every repository call. Zero disables the bound.
	QueryTimeout time.Duration
}
