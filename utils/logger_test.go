package utils

import (
	"testing"

	"voyago/config"

	"go.uber.org/zap/zapcore"
)

func initLoggerWith(t *testing.T, env, level string) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig.Env = env
	config.AppConfig.LogLevel = level
	t.Cleanup(func() {
		config.AppConfig = prev
		Logger = nil
	})
	InitializeLogger()
}

func TestInitializeLoggerLevelOverride(t *testing.T) {
	initLoggerWith(t, "development", "warn")

	core := Logger.Core()
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn level should be enabled")
	}
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info level should be disabled when LOG_LEVEL=warn")
	}
}

func TestInitializeLoggerDefaults(t *testing.T) {
	initLoggerWith(t, "development", "")
	if !Logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("development default should enable debug")
	}

	Logger = nil
	initLoggerWith(t, "production", "")
	if Logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("production default should disable debug")
	}
	if !Logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("production default should enable info")
	}
}

func TestInitializeLoggerBadLevel(t *testing.T) {
	initLoggerWith(t, "production", "loud")
	if !Logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("an unknown LOG_LEVEL should fall back to the mode default")
	}
}
