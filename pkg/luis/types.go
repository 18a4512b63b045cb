package luis

import (
	"encoding/json"
	"net/http"
	"time"
)

// Config holds the LUIS application settings.
type Config struct {
	Endpoint   string // e.g. https://westus.api.cognitive.microsoft.com
	AppID      string
	APIKey     string
	Slot       string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// PredictionResponse is the v3 prediction envelope.
type PredictionResponse struct {
	Query      string     `json:"query"`
	Prediction Prediction `json:"prediction"`
}

// Prediction holds the recognised intents and entities.
type Prediction struct {
	TopIntent string                     `json:"topIntent"`
	Intents   map[string]IntentScore     `json:"intents"`
	Entities  map[string]json.RawMessage `json:"entities"`
}

// IntentScore is the confidence of one intent.
type IntentScore struct {
	Score float64 `json:"score"`
}

// Instance is the instance metadata LUIS returns under entities.$instance when verbose=true.
type Instance struct {
	Type       string  `json:"type"`
	Text       string  `json:"text"`
	StartIndex int     `json:"startIndex"`
	Length     int     `json:"length"`
	Score      float64 `json:"score"`
	ModelType  string  `json:"modelType"`
}

// ErrorResponse is the error body returned by the prediction endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
