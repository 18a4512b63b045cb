package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"dentistry-assistant/pkg/log"
)

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: log.ModeProduction, Encoding: log.EncodingConsole},
	}
	for _, cfg := range cases {
		if l := log.Init(cfg); l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
	}
}

func TestTraceID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := log.NewZap(zap.New(core))

	ctx := context.WithValue(context.Background(), log.TraceIDKey, "turn-1")
	l.Infof(ctx, "routed to %s", "qna")
	l.Warn(context.Background(), "no trace")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "routed to qna" {
		t.Errorf("unexpected message: %s", entries[0].Message)
	}
	if got := entries[0].ContextMap()["trace_id"]; got != "turn-1" {
		t.Errorf("expected trace_id turn-1, got %v", got)
	}
	if _, ok := entries[1].ContextMap()["trace_id"]; ok {
		t.Errorf("did not expect trace_id on second entry")
	}
}
