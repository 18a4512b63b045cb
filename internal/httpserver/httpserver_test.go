package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dentistry-assistant/internal/httpserver"
	"dentistry-assistant/internal/middleware"
	"dentistry-assistant/pkg/log"
	"dentistry-assistant/pkg/metrics"
)

type stubTelegram struct{ called int }

func (s *stubTelegram) HandleWebhook(c *gin.Context) {
	s.called++
	c.Status(http.StatusOK)
}

type stubMessages struct{ called int }

func (s *stubMessages) HandleMessages(c *gin.Context) {
	s.called++
	c.Status(http.StatusOK)
}

func newServer(t *testing.T, tg *stubTelegram, msgs *stubMessages, webhook bool) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveRoute("qna")

	cfg := httpserver.Config{
		Logger:         log.NewNop(),
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "development",
		Middleware:     middleware.New(log.NewNop(), middleware.Config{SecretToken: "s3cret"}),
		WebhookEnabled: webhook,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	if tg != nil {
		cfg.TelegramHandler = tg
	}
	if msgs != nil {
		cfg.MessagesHandler = msgs
	}
	srv, err := httpserver.New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv.Handler()
}

func request(h http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  httpserver.Config
	}{
		{"missing mode", httpserver.Config{Port: 1, MessagesHandler: &stubMessages{}}},
		{"missing port", httpserver.Config{Mode: gin.TestMode, MessagesHandler: &stubMessages{}}},
		{"missing transports", httpserver.Config{Mode: gin.TestMode, Port: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := httpserver.New(log.NewNop(), tt.cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
	if _, err := httpserver.New(nil, httpserver.Config{Mode: gin.TestMode, Port: 1, MessagesHandler: &stubMessages{}}); err == nil {
		t.Errorf("expected logger error")
	}
	if _, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: gin.TestMode, Port: 1, MessagesHandler: &stubMessages{}, TrustedProxies: []string{"not-an-ip"}}); err == nil {
		t.Errorf("expected trusted proxies error")
	}
}

func TestForwardedForTrust(t *testing.T) {
	newGuarded := func(trusted []string) http.Handler {
		srv, err := httpserver.New(log.NewNop(), httpserver.Config{
			Port:            8080,
			Mode:            gin.TestMode,
			TrustedProxies:  trusted,
			Middleware:      middleware.New(log.NewNop(), middleware.Config{AllowedIPs: []string{"149.154.160.0/20"}}),
			WebhookEnabled:  true,
			MessagesHandler: &stubMessages{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return srv.Handler()
	}
	send := func(h http.Handler) int {
		req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader("{}"))
		req.RemoteAddr = "10.1.2.3:4000"
		req.Header.Set("X-Forwarded-For", "149.154.167.1")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(newGuarded(nil)); code != http.StatusForbidden {
		t.Errorf("untrusted peer: expected 403, got %d", code)
	}
	if code := send(newGuarded([]string{"10.0.0.0/8"})); code != http.StatusOK {
		t.Errorf("trusted proxy: expected 200, got %d", code)
	}
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t, nil, &stubMessages{}, false)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := request(h, http.MethodGet, path, nil)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "dentistry-assistant") {
			t.Errorf("%s: unexpected response %d %s", path, w.Code, w.Body.String())
		}
	}

	w := request(h, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "dentabot_routes_total") {
		t.Errorf("metrics not exposed: %d", w.Code)
	}
}

func TestDomainRoutes(t *testing.T) {
	t.Run("webhook guard enabled", func(t *testing.T) {
		tg, msgs := &stubTelegram{}, &stubMessages{}
		h := newServer(t, tg, msgs, true)

		if w := request(h, http.MethodPost, "/webhook/telegram", nil); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 without secret, got %d", w.Code)
		}
		if w := request(h, http.MethodPost, "/webhook/telegram", map[string]string{"X-Telegram-Bot-Api-Secret-Token": "s3cret"}); w.Code != http.StatusOK {
			t.Errorf("expected 200 with secret, got %d", w.Code)
		}
		if w := request(h, http.MethodPost, "/api/messages", nil); w.Code != http.StatusOK {
			t.Errorf("expected 200 on messages, got %d", w.Code)
		}
		if tg.called != 1 || msgs.called != 1 {
			t.Errorf("unexpected calls tg=%d msgs=%d", tg.called, msgs.called)
		}
	})

	t.Run("webhook guard disabled", func(t *testing.T) {
		tg := &stubTelegram{}
		h := newServer(t, tg, nil, false)

		if w := request(h, http.MethodPost, "/webhook/telegram", nil); w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if w := request(h, http.MethodPost, "/api/messages", nil); w.Code != http.StatusNotFound {
			t.Errorf("messages route should not exist, got %d", w.Code)
		}
	})
}
