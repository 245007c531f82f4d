package http

import (
	"shop-assistant/internal/faq"
	"shop-assistant/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          faq.UseCase
	defaultMode faq.IngestMode
}

// New creates the HTTP handler for the FAQ knowledge base. defaultMode is used
// when an ingest request names no mode.
func New(l log.Logger, uc faq.UseCase, defaultMode faq.IngestMode) *handler {
	if defaultMode == "" {
		defaultMode = faq.IngestExistence
	}
	return &handler{
		l:           l,
		uc:          uc,
		defaultMode: defaultMode,
	}
}
