package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"actionsense/pkg/log"
)

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewWithZap(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-42")
	l.Infof(ctx, "resolved %d dates", 3)
	l.Warn(context.Background(), "no request id")

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "resolved 3 dates" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-42" {
		t.Errorf("request_id = %v", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("request_id should be absent without one in context")
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("level = %s", entries[1].Level)
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level"},
	} {
		if l := log.Init(cfg); l == nil {
			t.Errorf("Init(%+v) returned nil", cfg)
		}
	}
}

func TestRequestIDEmpty(t *testing.T) {
	if id := log.RequestID(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}
