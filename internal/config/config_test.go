package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.FocusMinutes != 25 || cfg.ShortBreakMinutes != 5 || cfg.LongBreakMinutes != 15 || cfg.LongBreakInterval != 4 {
		t.Fatalf("unexpected focus defaults: %+v", cfg)
	}
	if cfg.SaveDebounce != 500*time.Millisecond || cfg.ReminderScanInterval != 30*time.Second || cfg.ReminderCooldown != time.Hour {
		t.Fatalf("unexpected timing defaults: %+v", cfg)
	}
	if cfg.HistoryLimit != 100 || cfg.SchedulerBuffer != 64 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.DBPath != filepath.Join(cfg.DataDir, "taskflow.db") {
		t.Fatalf("expected db inside data dir: %+v", cfg)
	}
	if err := cfg.PomodoroSettings().Validate(); err != nil {
		t.Fatalf("default pomodoro settings invalid: %v", err)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKFLOW_DATA_DIR", dir)
	t.Setenv("TASKFLOW_LOG_LEVEL", "DEBUG")
	t.Setenv("TASKFLOW_LOG_FORMAT", "text")
	t.Setenv("TASKFLOW_DESKTOP_NOTIFICATIONS", "true")
	t.Setenv("TASKFLOW_FOCUS_MINUTES", "50")
	t.Setenv("TASKFLOW_SHORT_BREAK_MINUTES", "10")
	t.Setenv("TASKFLOW_LONG_BREAK_MINUTES", "30")
	t.Setenv("TASKFLOW_LONG_BREAK_INTERVAL", "3")
	t.Setenv("TASKFLOW_SAVE_DEBOUNCE", "1s")
	t.Setenv("TASKFLOW_REMINDER_SCAN_INTERVAL", "1m")
	t.Setenv("TASKFLOW_REMINDER_COOLDOWN", "2h")
	t.Setenv("TASKFLOW_HISTORY_LIMIT", "0")
	t.Setenv("TASKFLOW_SCHEDULER_BUFFER", "128")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DataDir != dir || cfg.DBPath != filepath.Join(dir, "taskflow.db") {
		t.Fatalf("unexpected paths: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "text" || !cfg.DesktopNotifications {
		t.Fatalf("unexpected logging config: %+v", cfg)
	}
	settings := cfg.PomodoroSettings()
	if settings.FocusDuration != 3000 || settings.ShortBreakDuration != 600 || settings.LongBreakDuration != 1800 || settings.LongBreakInterval != 3 {
		t.Fatalf("unexpected pomodoro settings: %+v", settings)
	}
	if cfg.SaveDebounce != time.Second || cfg.ReminderScanInterval != time.Minute || cfg.ReminderCooldown != 2*time.Hour {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.HistoryLimit != 0 || cfg.SchedulerBuffer != 128 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("TASKFLOW_FOCUS_MINUTES", "-5")
	t.Setenv("TASKFLOW_SAVE_DEBOUNCE", "soon")
	t.Setenv("TASKFLOW_DESKTOP_NOTIFICATIONS", "maybe")
	t.Setenv("TASKFLOW_HISTORY_LIMIT", "-1")
	t.Setenv("TASKFLOW_DB_PATH", "custom/path.db")

	base := DefaultRuntimeConfig()
	cfg := RuntimeConfigFromEnv(base)
	if cfg.FocusMinutes != base.FocusMinutes || cfg.SaveDebounce != base.SaveDebounce {
		t.Fatalf("invalid values should be ignored: %+v", cfg)
	}
	if cfg.DesktopNotifications || cfg.HistoryLimit != base.HistoryLimit {
		t.Fatalf("invalid values should be ignored: %+v", cfg)
	}
	if cfg.DBPath != "custom/path.db" {
		t.Fatalf("expected explicit db path, got %q", cfg.DBPath)
	}
}
