package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "shop-assistant/internal/conversation/delivery/http"
	faqHTTP "shop-assistant/internal/faq/delivery/http"
	routerHTTP "shop-assistant/internal/router/delivery/http"
)

// Domain wiring follows one pattern: the use case is built by the composition
// root, the handler wraps it here, and RegisterRoutes mounts it on a group.

// setupChatDomain registers /api/v1/chat.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) {
	h := chatHTTP.New(srv.l, srv.conversationUC)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, srv.middleware)
	srv.l.Infof(ctx, "Chat domain registered")
}

// setupFAQDomain registers /api/v1/faq.
func (srv HTTPServer) setupFAQDomain(ctx context.Context, api *gin.RouterGroup) {
	h := faqHTTP.New(srv.l, srv.faqUC, srv.ingestMode)
	faqHTTP.RegisterRoutes(api.Group("/faq"), h, srv.middleware)
	srv.l.Infof(ctx, "FAQ domain registered (collection: %s)", srv.faqUC.Collection())
}

// setupRouterDomain registers /api/v1/router.
func (srv HTTPServer) setupRouterDomain(ctx context.Context, api *gin.RouterGroup) {
	h := routerHTTP.New(srv.l, srv.router, srv.threshold)
	routerHTTP.RegisterRoutes(api.Group("/router"), h, srv.middleware)
	srv.l.Infof(ctx, "Router domain registered with %d routes", len(srv.router.Routes()))
}
