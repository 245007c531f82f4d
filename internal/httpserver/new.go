package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shop-assistant/internal/conversation"
	"shop-assistant/internal/faq"
	"shop-assistant/internal/middleware"
	"shop-assistant/internal/router"
	"shop-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Middleware

	// Assistant domains
	conversationUC conversation.UseCase
	faqUC          faq.UseCase
	router         router.Router
	threshold      float64
	ingestMode     faq.IngestMode
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ConversationUC conversation.UseCase
	FAQUC          faq.UseCase
	Router         router.Router
	Threshold      float64
	IngestMode     faq.IngestMode
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		middleware:     cfg.Middleware,
		conversationUC: cfg.ConversationUC,
		faqUC:          cfg.FAQUC,
		router:         cfg.Router,
		threshold:      cfg.Threshold,
		ingestMode:     cfg.IngestMode,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation use case is required")
	}
	if srv.faqUC == nil {
		return errors.New("faq use case is required")
	}
	if srv.router == nil {
		return errors.New("router is required")
	}
	return nil
}
