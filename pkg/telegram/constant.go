package telegram

const (
	defaultAPIBase = "https://api.telegram.org/bot"

	// SecretTokenHeader carries the webhook secret_token on every delivered update.
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

	ChatTypePrivate    = "private"
	ChatTypeGroup      = "group"
	ChatTypeSupergroup = "supergroup"
)
