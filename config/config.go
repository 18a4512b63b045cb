package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Scheduler backends.
const (
	SchedulerBackendHTTP     = "http"
	SchedulerBackendCalendar = "gcalendar"
)

var (
	ErrMissingQnAMaker       = errors.New("qnamaker endpoint, knowledge_base_id and endpoint_key are required")
	ErrMissingLUIS           = errors.New("luis endpoint, app_id and api_key are required")
	ErrMissingScheduler      = errors.New("scheduler endpoint is required for the http backend")
	ErrMissingCalendar       = errors.New("google_calendar.credentials_path is required for the gcalendar backend")
	ErrUnknownSchedulerStore = errors.New("unknown scheduler backend")
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Cognitive services
	QnAMaker QnAMakerConfig
	LUIS     LUISConfig

	// Appointments
	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig

	// Channels
	Telegram TelegramConfig
	Webhook  WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string // proxies allowed to set X-Forwarded-For; empty trusts none
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type QnAMakerConfig struct {
	Endpoint        string
	KnowledgeBaseID string
	EndpointKey     string
	Top             int
	ScoreThreshold  float64 // 0-1
}

type LUISConfig struct {
	Endpoint string
	AppID    string
	APIKey   string
	Slot     string
}

type SchedulerConfig struct {
	Backend    string // "http" or "gcalendar"
	Endpoint   string
	Timezone   string
	OpenHour   int
	CloseHour  int
	CalendarID string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	NgrokAPIURL string // dev only: discover the public URL from a local ngrok agent
}

type WebhookConfig struct {
	Enabled         bool
	AllowedIPs      []string
	RateLimitPerMin int
}

// legacyEnv maps keys to the environment names used by the Azure bot templates,
// so an existing .env keeps working.
var legacyEnv = map[string]string{
	"qnamaker.knowledge_base_id": "QnAKnowledgebaseId",
	"qnamaker.endpoint_key":      "QnAAuthKey",
	"qnamaker.endpoint":          "QnAEndpointHostName",
	"luis.app_id":                "LuisAppId",
	"luis.api_key":               "LuisAPIKey",
	"luis.endpoint":              "LuisAPIHostName",
	"scheduler.endpoint":         "SchedulerEndpoint",
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first; real environment variables win.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, legacy := range legacyEnv {
		_ = v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), legacy)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Cognitive services
	cfg.QnAMaker.Endpoint = v.GetString("qnamaker.endpoint")
	cfg.QnAMaker.KnowledgeBaseID = v.GetString("qnamaker.knowledge_base_id")
	cfg.QnAMaker.EndpointKey = v.GetString("qnamaker.endpoint_key")
	cfg.QnAMaker.Top = v.GetInt("qnamaker.top")
	cfg.QnAMaker.ScoreThreshold = v.GetFloat64("qnamaker.score_threshold")

	cfg.LUIS.Endpoint = v.GetString("luis.endpoint")
	cfg.LUIS.AppID = v.GetString("luis.app_id")
	cfg.LUIS.APIKey = v.GetString("luis.api_key")
	cfg.LUIS.Slot = v.GetString("luis.slot")

	// Appointments
	cfg.Scheduler.Backend = strings.ToLower(v.GetString("scheduler.backend"))
	cfg.Scheduler.Endpoint = v.GetString("scheduler.endpoint")
	cfg.Scheduler.Timezone = v.GetString("scheduler.timezone")
	cfg.Scheduler.OpenHour = v.GetInt("scheduler.open_hour")
	cfg.Scheduler.CloseHour = v.GetInt("scheduler.close_hour")
	cfg.Scheduler.CalendarID = v.GetString("scheduler.calendar_id")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")

	// Channels
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = v.GetString("telegram.secret_token")
	cfg.Telegram.NgrokAPIURL = v.GetString("telegram.ngrok_api_url")

	cfg.Webhook.Enabled = v.GetBool("webhook.enabled")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = stringList(v.Get("webhook.allowed_ips"))
	cfg.HTTPServer.TrustedProxies = stringList(v.Get("http_server.trusted_proxies"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails when any service the bot cannot run without is unconfigured.
func (c *Config) Validate() error {
	if c.QnAMaker.Endpoint == "" || c.QnAMaker.KnowledgeBaseID == "" || c.QnAMaker.EndpointKey == "" {
		return ErrMissingQnAMaker
	}
	if c.LUIS.Endpoint == "" || c.LUIS.AppID == "" || c.LUIS.APIKey == "" {
		return ErrMissingLUIS
	}
	switch c.Scheduler.Backend {
	case SchedulerBackendHTTP:
		if c.Scheduler.Endpoint == "" {
			return ErrMissingScheduler
		}
	case SchedulerBackendCalendar:
		if c.GoogleCalendar.CredentialsPath == "" {
			return ErrMissingCalendar
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSchedulerStore, c.Scheduler.Backend)
	}
	return nil
}

// stringList accepts either a YAML list or a comma-separated env value.
func stringList(raw any) []string {
	var parts []string
	switch val := raw.(type) {
	case string:
		parts = strings.Split(val, ",")
	case []any:
		for _, p := range val {
			parts = append(parts, fmt.Sprint(p))
		}
	case []string:
		parts = val
	}

	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("qnamaker.top", 1)
	v.SetDefault("qnamaker.score_threshold", 0.3)
	v.SetDefault("luis.slot", "production")

	v.SetDefault("scheduler.backend", SchedulerBackendHTTP)
	v.SetDefault("scheduler.timezone", "America/Los_Angeles")
	v.SetDefault("scheduler.open_hour", 9)
	v.SetDefault("scheduler.close_hour", 17)
	v.SetDefault("scheduler.calendar_id", "primary")
	v.SetDefault("google_calendar.token_path", "token.json")

	v.SetDefault("webhook.rate_limit_per_min", 60)
	v.SetDefault("webhook.enabled", true)
}
