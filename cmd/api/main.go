package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dentistry-assistant/config"
	_ "dentistry-assistant/docs" // Swagger docs
	"dentistry-assistant/internal/activity"
	botDelivery "dentistry-assistant/internal/assistant/delivery/bot"
	httpDelivery "dentistry-assistant/internal/assistant/delivery/http"
	tgDelivery "dentistry-assistant/internal/assistant/delivery/telegram"
	"dentistry-assistant/internal/assistant/repository"
	calendarRepo "dentistry-assistant/internal/assistant/repository/gcalendar"
	luisRepo "dentistry-assistant/internal/assistant/repository/luis"
	qnaRepo "dentistry-assistant/internal/assistant/repository/qnamaker"
	schedulerRepo "dentistry-assistant/internal/assistant/repository/scheduler"
	"dentistry-assistant/internal/assistant/usecase"
	"dentistry-assistant/internal/httpserver"
	"dentistry-assistant/internal/middleware"
	"dentistry-assistant/pkg/datemath"
	"dentistry-assistant/pkg/gcalendar"
	"dentistry-assistant/pkg/log"
	"dentistry-assistant/pkg/luis"
	"dentistry-assistant/pkg/metrics"
	"dentistry-assistant/pkg/qnamaker"
	"dentistry-assistant/pkg/scheduler"
	"dentistry-assistant/pkg/telegram"
)

// @title       Contoso Dentistry Assistant API
// @description Chat assistant that answers office questions and books dental appointments.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Contoso Dentistry assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// 4. Cognitive services
	qnaClient, err := qnamaker.New(qnamaker.Config{
		Endpoint:        cfg.QnAMaker.Endpoint,
		KnowledgeBaseID: cfg.QnAMaker.KnowledgeBaseID,
		EndpointKey:     cfg.QnAMaker.EndpointKey,
		Top:             cfg.QnAMaker.Top,
		ScoreThreshold:  cfg.QnAMaker.ScoreThreshold,
	})
	if err != nil {
		logger.Fatalf(ctx, "QnA Maker client: %v", err)
	}

	luisClient, err := luis.New(luis.Config{
		Endpoint: cfg.LUIS.Endpoint,
		AppID:    cfg.LUIS.AppID,
		APIKey:   cfg.LUIS.APIKey,
		Slot:     cfg.LUIS.Slot,
	})
	if err != nil {
		logger.Fatalf(ctx, "LUIS client: %v", err)
	}

	// 5. Scheduler backend
	schedRepo, err := newSchedulerRepository(ctx, logger, cfg, m)
	if err != nil {
		logger.Fatalf(ctx, "Scheduler backend %q: %v", cfg.Scheduler.Backend, err)
	}
	logger.Infof(ctx, "Scheduler backend: %s", cfg.Scheduler.Backend)

	// 6. Use case and activity host
	assistantUC, err := usecase.New(
		logger,
		qnaRepo.New(logger, qnaClient, m),
		luisRepo.New(logger, luisClient, m),
		schedRepo,
		m,
	)
	if err != nil {
		logger.Fatalf(ctx, "Assistant use case: %v", err)
	}

	host := activity.New()
	botDelivery.Register(logger, assistantUC, host)

	// 7. Channels
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramHandler = setupTelegram(ctx, logger, cfg.Telegram, host)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		TrustedProxies: cfg.HTTPServer.TrustedProxies,

		Middleware: middleware.New(logger, middleware.Config{
			SecretToken:     cfg.Telegram.SecretToken,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}),
		WebhookEnabled:  cfg.Webhook.Enabled,
		TelegramHandler: telegramHandler,
		MessagesHandler: httpDelivery.New(logger, host),
		MetricsHandler:  promhttp.Handler(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newSchedulerRepository(ctx context.Context, logger log.Logger, cfg *config.Config, m *metrics.Metrics) (repository.SchedulerRepository, error) {
	if cfg.Scheduler.Backend != config.SchedulerBackendCalendar {
		client, err := scheduler.New(cfg.Scheduler.Endpoint, nil)
		if err != nil {
			return nil, err
		}
		return schedulerRepo.New(logger, client, m), nil
	}

	parser, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, err
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate the token")
		return nil, err
	}
	return calendarRepo.New(logger, calendarClient, parser, m, calendarRepo.Options{
		CalendarID: cfg.Scheduler.CalendarID,
		OpenHour:   cfg.Scheduler.OpenHour,
		CloseHour:  cfg.Scheduler.CloseHour,
	})
}

// setupTelegram resolves the bot identity and registers the webhook. Telegram
// is optional, so failures are logged and the channel is left disabled.
func setupTelegram(ctx context.Context, logger log.Logger, cfg config.TelegramConfig, host *activity.ActivityHandler) tgDelivery.Handler {
	bot := telegram.NewBot(cfg.BotToken)

	me, err := bot.GetMe(ctx)
	if err != nil {
		logger.Warnf(ctx, "Telegram disabled, getMe failed: %v", err)
		return nil
	}
	logger.Infof(ctx, "Telegram bot: @%s (%d)", me.Username, me.ID)

	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.NgrokAPIURL)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL != "" {
		whErr := bot.SetWebhook(ctx, telegram.WebhookConfig{
			URL:            webhookURL,
			SecretToken:    cfg.SecretToken,
			MaxConnections: 1,
			AllowedUpdates: []string{"message"},
		})
		if whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	return tgDelivery.New(logger, host, bot, me)
}
