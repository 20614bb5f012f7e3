package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"shiftbook/internal/config"
)

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&config.Config{LogLevel: "warn"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "component=app") {
		t.Errorf("warn line missing:\n%s", out)
	}

	buf.Reset()
	logger = SetupLogger(&config.Config{LogLevel: "chatty"}, &buf)
	logger.InfoContext(context.Background(), "fallback")
	if !strings.Contains(buf.String(), "fallback") {
		t.Errorf("unknown level should fall back to info:\n%s", buf.String())
	}
}

func TestLoadAndValidateConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(nil, &buf)

	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("CURRENCY", "USD")
	cfg, err := LoadAndValidateConfig(logger)
	if err != nil {
		t.Fatalf("LoadAndValidateConfig() error = %v", err)
	}
	if cfg.DataBackend != "memory" || cfg.Currency != "USD" {
		t.Errorf("config = %+v", cfg)
	}

	t.Setenv("DATA_BACKEND", "sheets")
	if _, err := LoadAndValidateConfig(logger); err == nil {
		t.Error("LoadAndValidateConfig() with bad backend expected error")
	}
	if !strings.Contains(buf.String(), "Configuration validation failed") {
		t.Errorf("validation failure not logged:\n%s", buf.String())
	}
}
