package conversation

import "time"

// Reply is the outcome of one Handle call.
type Reply struct {
	Route  string  `json:"route"`
	Score  float64 `json:"score"`
	Answer string  `json:"answer"`
}

// Options configures the orchestrator. Zero values select defaults.
// Threshold is passed to the classifier unchanged, so callers set it explicitly
// (router.DefaultThreshold in the default configuration).
type Options struct {
	Threshold   float64
	MaxHistory  int // messages kept per session; 0 selects DefaultMaxHistory, < 0 keeps everything
	SessionTTL  time.Duration
	MaxSessions int
}
