package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyedFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewFromZap(zap.New(core)).With("component", "server")

	logger.Info("rendered", "renderer", "page", "blocks", 2)
	logger.Warn("slow render")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "server" || fields["renderer"] != "page" || fields["blocks"] != int64(2) {
		t.Fatalf("unexpected fields %v", fields)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected level %s", entries[1].Level)
	}
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		logger, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		logger.Debug("ok")
	}
}

func TestNop(t *testing.T) {
	Nop().Error("ignored", "err", "x")
}
