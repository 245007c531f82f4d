package http

import (
	"shop-assistant/internal/router"
	"shop-assistant/pkg/log"
)

type handler struct {
	l         log.Logger
	router    router.Router
	threshold float64
}

// New creates the HTTP handler exposing intent classification. threshold is
// applied when a request does not carry its own.
func New(l log.Logger, r router.Router, threshold float64) *handler {
	return &handler{
		l:         l,
		router:    r,
		threshold: threshold,
	}
}
