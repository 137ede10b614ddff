package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

type RuntimeConfig struct {
	DataDir              string
	DBPath               string
	LogLevel             string
	LogFormat            string
	DesktopNotifications bool
	FocusMinutes         int
	ShortBreakMinutes    int
	LongBreakMinutes     int
	LongBreakInterval    int
	SaveDebounce         time.Duration
	ReminderScanInterval time.Duration
	ReminderCooldown     time.Duration
	HistoryLimit         int
	SchedulerBuffer      int
}

func DefaultRuntimeConfig() RuntimeConfig {
	dataDir := defaultDataDir()
	return RuntimeConfig{
		DataDir:              dataDir,
		DBPath:               filepath.Join(dataDir, "taskflow.db"),
		LogLevel:             "info",
		LogFormat:            "json",
		DesktopNotifications: false,
		FocusMinutes:         25,
		ShortBreakMinutes:    5,
		LongBreakMinutes:     15,
		LongBreakInterval:    4,
		SaveDebounce:         500 * time.Millisecond,
		ReminderScanInterval: 30 * time.Second,
		ReminderCooldown:     time.Hour,
		HistoryLimit:         100,
		SchedulerBuffer:      64,
	}
}

// RuntimeConfigFromEnv overlays TASKFLOW_* variables on base. Unparseable
// and out-of-range values are ignored. Setting TASKFLOW_DATA_DIR moves the
// default database path with it unless TASKFLOW_DB_PATH is set too.
func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKFLOW_DATA_DIR"); ok {
		if cfg.DBPath == filepath.Join(cfg.DataDir, "taskflow.db") {
			cfg.DBPath = filepath.Join(v, "taskflow.db")
		}
		cfg.DataDir = v
	}
	if v, ok := getEnvString("TASKFLOW_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("TASKFLOW_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvString("TASKFLOW_LOG_FORMAT"); ok {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := getEnvBool("TASKFLOW_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("TASKFLOW_FOCUS_MINUTES"); ok && v > 0 {
		cfg.FocusMinutes = v
	}
	if v, ok := getEnvInt("TASKFLOW_SHORT_BREAK_MINUTES"); ok && v > 0 {
		cfg.ShortBreakMinutes = v
	}
	if v, ok := getEnvInt("TASKFLOW_LONG_BREAK_MINUTES"); ok && v > 0 {
		cfg.LongBreakMinutes = v
	}
	if v, ok := getEnvInt("TASKFLOW_LONG_BREAK_INTERVAL"); ok && v > 0 {
		cfg.LongBreakInterval = v
	}
	if v, ok := getEnvDuration("TASKFLOW_SAVE_DEBOUNCE"); ok && v > 0 {
		cfg.SaveDebounce = v
	}
	if v, ok := getEnvDuration("TASKFLOW_REMINDER_SCAN_INTERVAL"); ok && v > 0 {
		cfg.ReminderScanInterval = v
	}
	if v, ok := getEnvDuration("TASKFLOW_REMINDER_COOLDOWN"); ok && v > 0 {
		cfg.ReminderCooldown = v
	}
	if v, ok := getEnvInt("TASKFLOW_HISTORY_LIMIT"); ok && v >= 0 {
		cfg.HistoryLimit = v
	}
	if v, ok := getEnvInt("TASKFLOW_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	return cfg
}

// PomodoroSettings converts the minute-based timer config to settings.
func (c RuntimeConfig) PomodoroSettings() model.PomodoroSettings {
	return model.PomodoroSettings{
		FocusDuration:      c.FocusMinutes * 60,
		ShortBreakDuration: c.ShortBreakMinutes * 60,
		LongBreakDuration:  c.LongBreakMinutes * 60,
		LongBreakInterval:  c.LongBreakInterval,
	}
}

func (c RuntimeConfig) LogPath() string {
	return filepath.Join(c.DataDir, "taskflow.log")
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "taskflow")
	}
	return ".taskflow"
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

func getEnvDuration(name string) (time.Duration, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
