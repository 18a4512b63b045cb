package qnamaker

import (
	"net/http"
	"time"
)

// Config holds the knowledge base connection settings.
type Config struct {
	Endpoint        string // e.g. https://contoso-qna.azurewebsites.net
	KnowledgeBaseID string
	EndpointKey     string
	Top             int
	ScoreThreshold  float64
	Timeout         time.Duration
	HTTPClient      *http.Client
}

// GenerateAnswerRequest is the body of the generateAnswer call.
type GenerateAnswerRequest struct {
	Question       string  `json:"question"`
	Top            int     `json:"top"`
	ScoreThreshold float64 `json:"scoreThreshold"` // 0-100 on the wire
}

// GenerateAnswerResponse is the body returned by generateAnswer.
type GenerateAnswerResponse struct {
	Answers []Answer `json:"answers"`
}

// Answer is a single knowledge base match. Score is 0-100 on the wire.
type Answer struct {
	ID        int      `json:"id"`
	Answer    string   `json:"answer"`
	Score     float64  `json:"score"`
	Questions []string `json:"questions"`
	Source    string   `json:"source"`
}

// ErrorResponse is the error body returned by QnA Maker.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
