package qnamaker_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dentistry-assistant/pkg/qnamaker"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     qnamaker.Config
		wantErr error
	}{
		{"missing endpoint", qnamaker.Config{KnowledgeBaseID: "kb", EndpointKey: "key"}, qnamaker.ErrMissingEndpoint},
		{"missing kb", qnamaker.Config{Endpoint: "http://x", EndpointKey: "key"}, qnamaker.ErrMissingKnowledgeID},
		{"missing key", qnamaker.Config{Endpoint: "http://x", KnowledgeBaseID: "kb"}, qnamaker.ErrMissingEndpointKey},
		{"ok", qnamaker.Config{Endpoint: "http://x", KnowledgeBaseID: "kb", EndpointKey: "key"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := qnamaker.New(tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGenerateAnswer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/qnamaker/knowledgebases/kb-1/generateAnswer" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "EndpointKey test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"code": "Unauthorized", "message": "bad endpoint key"}}`))
			return
		}

		var req qnamaker.GenerateAnswerRequest
		json.NewDecoder(r.Body).Decode(&req)

		switch req.Question {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "no match":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"answers": [{"id": -1, "answer": "No good match found in KB.", "score": 0, "questions": []}]}`))
			return
		case "bad json":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"answers": [`))
			return
		}

		if req.Top != 3 || req.ScoreThreshold != 50 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"answers": [
				{"id": 7, "answer": "We accept most insurance plans.", "score": 92.5, "questions": ["Do you take insurance?"]},
				{"id": 8, "answer": "Call us for details.", "score": 61, "questions": ["insurance details"]}
			]
		}`))
	}))
	defer ts.Close()

	client, err := qnamaker.New(qnamaker.Config{
		Endpoint:        ts.URL + "/",
		KnowledgeBaseID: "kb-1",
		EndpointKey:     "test-key",
		Top:             3,
		ScoreThreshold:  0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		answers, err := client.GenerateAnswer(context.Background(), "Do you take insurance?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(answers) != 2 {
			t.Fatalf("expected 2 answers, got %d", len(answers))
		}
		if answers[0].Answer != "We accept most insurance plans." {
			t.Errorf("unexpected first answer: %s", answers[0].Answer)
		}
		if answers[0].Score != 0.925 {
			t.Errorf("expected normalised score 0.925, got %v", answers[0].Score)
		}
	})

	t.Run("No Match Filtered", func(t *testing.T) {
		answers, err := client.GenerateAnswer(context.Background(), "no match")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(answers) != 0 {
			t.Errorf("expected no answers, got %v", answers)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.GenerateAnswer(context.Background(), "cause_500"); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Decode Error Flow", func(t *testing.T) {
		if _, err := client.GenerateAnswer(context.Background(), "bad json"); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		bad, _ := qnamaker.New(qnamaker.Config{Endpoint: ts.URL, KnowledgeBaseID: "kb-1", EndpointKey: "wrong"})
		_, err := bad.GenerateAnswer(context.Background(), "hello")
		if err == nil || !strings.Contains(err.Error(), "bad endpoint key") {
			t.Fatalf("expected unauthorized error, got %v", err)
		}
	})
}
