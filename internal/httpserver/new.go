package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	httpDelivery "dentistry-assistant/internal/assistant/delivery/http"
	tgDelivery "dentistry-assistant/internal/assistant/delivery/telegram"
	"dentistry-assistant/internal/middleware"
	"dentistry-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Webhook protection
	middleware     middleware.Middleware
	webhookEnabled bool

	// Assistant transports
	telegramHandler tgDelivery.Handler
	messagesHandler httpDelivery.Handler

	// Observability
	metricsHandler http.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set X-Forwarded-For. Empty means the peer address is the client.
	TrustedProxies []string

	Middleware     middleware.Middleware
	WebhookEnabled bool

	TelegramHandler tgDelivery.Handler
	MessagesHandler httpDelivery.Handler

	MetricsHandler http.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		webhookEnabled:  cfg.WebhookEnabled,
		telegramHandler: cfg.TelegramHandler,
		messagesHandler: cfg.MessagesHandler,
		metricsHandler:  cfg.MetricsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.telegramHandler == nil && srv.messagesHandler == nil {
		return errors.New("at least one transport handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
