package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	if err := Initialize("debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !zap.L().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}

	if err := Initialize("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestBootstrap(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })
	zap.ReplaceGlobals(zap.NewNop())

	if err := Bootstrap(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !zap.L().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info level to be enabled after bootstrap")
	}
	if zap.L().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to stay disabled after bootstrap")
	}
}
