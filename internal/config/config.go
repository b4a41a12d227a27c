// Package config loads persona settings from ~/.persona/config.toml and
// PERSONA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".persona"
	envPrefix  = "PERSONA"
)

const (
	BackendMemory = "memory"
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
)

const (
	KeyAPIURL                  = "api.url"
	KeyAPIModel                = "api.model"
	KeyAPIKey                  = "api.key"
	KeyAPIKeyRef               = "api.key_ref"
	KeyAPITimeout              = "api.timeout"
	KeyRateLimitSeconds        = "dispatch.rate_limit_seconds"
	KeySendRequests            = "dispatch.send_requests"
	KeySerializePerPersonality = "dispatch.serialize_per_personality"
	KeyDenialSentinel          = "denial.sentinel"
	KeyHistoryBackend          = "history.backend"
	KeyHistoryMaxWindow        = "history.max_window"
	KeyHistoryPath             = "history.path"
	KeyPersonalitiesPath       = "personalities.path"
	KeyRecordingEnabled        = "recording.enabled"
	KeyRecordingDir            = "recording.dir"
	KeyRecordingPrefix         = "recording.prefix"
	KeySecretsDir              = "secrets.dir"
	KeyLogLevel                = "log.level"
)

type Config struct {
	API           API
	Dispatch      Dispatch
	Denial        Denial
	History       History
	Personalities Personalities
	Recording     Recording
	Secrets       Secrets
	Log           Log
	// File is the config file that was read, empty when none exists.
	File string
}

type API struct {
	URL     string
	Model   string
	Key     string
	KeyRef  string
	Timeout time.Duration
}

type Dispatch struct {
	RateLimit               time.Duration
	SendRequests            bool
	SerializePerPersonality bool
}

type Denial struct {
	Sentinel string
}

type History struct {
	Backend   string
	MaxWindow int
	Path      string
}

type Personalities struct {
	Path string
}

type Recording struct {
	Enabled bool
	Dir     string
	Prefix  string
}

type Secrets struct {
	Dir string
}

type Log struct {
	Level string
}

// New returns a viper instance with persona's defaults, search path and
// environment binding. PERSONA_API_KEY overrides api.key and so on.
func New() *viper.Viper {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAPIURL, "https://api.openai.com/v1/chat/completions")
	v.SetDefault(KeyAPIModel, "gpt-4o-mini")
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyAPIKeyRef, "persona/api_key")
	v.SetDefault(KeyAPITimeout, "60s")
	v.SetDefault(KeyRateLimitSeconds, 3)
	v.SetDefault(KeySendRequests, true)
	v.SetDefault(KeySerializePerPersonality, true)
	v.SetDefault(KeyDenialSentinel, "REFUSE")
	v.SetDefault(KeyHistoryBackend, BackendTOML)
	v.SetDefault(KeyHistoryMaxWindow, 0)
	v.SetDefault(KeyHistoryPath, "")
	v.SetDefault(KeyPersonalitiesPath, "")
	v.SetDefault(KeyRecordingEnabled, false)
	v.SetDefault(KeyRecordingDir, "")
	v.SetDefault(KeyRecordingPrefix, "transcript")
	v.SetDefault(KeySecretsDir, "")
	v.SetDefault(KeyLogLevel, "warn")

	return v
}

// Load reads the config file if one exists, resolves default paths under
// ~/.persona and validates the result. Resolved paths are written back to
// v so adapters built from the same viper instance agree with Config.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = New()
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	timeout, err := parseDuration(v.GetString(KeyAPITimeout))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", KeyAPITimeout, err)
	}

	cfg := Config{
		API: API{
			URL:     strings.TrimSpace(v.GetString(KeyAPIURL)),
			Model:   strings.TrimSpace(v.GetString(KeyAPIModel)),
			Key:     strings.TrimSpace(v.GetString(KeyAPIKey)),
			KeyRef:  strings.TrimSpace(v.GetString(KeyAPIKeyRef)),
			Timeout: timeout,
		},
		Dispatch: Dispatch{
			RateLimit:               time.Duration(v.GetFloat64(KeyRateLimitSeconds) * float64(time.Second)),
			SendRequests:            v.GetBool(KeySendRequests),
			SerializePerPersonality: v.GetBool(KeySerializePerPersonality),
		},
		Denial:    Denial{Sentinel: v.GetString(KeyDenialSentinel)},
		History:   History{Backend: strings.ToLower(strings.TrimSpace(v.GetString(KeyHistoryBackend))), MaxWindow: v.GetInt(KeyHistoryMaxWindow)},
		Recording: Recording{Enabled: v.GetBool(KeyRecordingEnabled), Prefix: strings.TrimSpace(v.GetString(KeyRecordingPrefix))},
		Log:       Log{Level: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel)))},
		File:      v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	if err := cfg.resolvePaths(v); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.API.URL == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyAPIURL))
	}
	if c.API.Model == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyAPIModel))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyAPITimeout))
	}
	if c.Dispatch.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyRateLimitSeconds))
	}
	if c.History.MaxWindow < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyHistoryMaxWindow))
	}
	switch c.History.Backend {
	case BackendMemory, BackendTOML, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown %s %q (want memory, toml or sqlite)", KeyHistoryBackend, c.History.Backend))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}

// ParseLevel maps a log.level value onto slog. An empty level is warn.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown %s %q", KeyLogLevel, raw)
	}
}

func (c *Config) resolvePaths(v *viper.Viper) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	base := filepath.Join(homeDir, configDir)

	historyFile := "conversations.toml"
	if c.History.Backend == BackendSQLite {
		historyFile = "conversations.db"
	}

	paths := []struct {
		key      string
		fallback string
		target   *string
	}{
		{key: KeyHistoryPath, fallback: filepath.Join(base, historyFile), target: &c.History.Path},
		{key: KeyPersonalitiesPath, fallback: filepath.Join(base, "personalities.toml"), target: &c.Personalities.Path},
		{key: KeyRecordingDir, fallback: filepath.Join(base, "transcripts"), target: &c.Recording.Dir},
		{key: KeySecretsDir, fallback: filepath.Join(base, "secrets"), target: &c.Secrets.Dir},
	}

	for _, path := range paths {
		resolved, err := expandPath(v.GetString(path.key), homeDir)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path.key, err)
		}
		if resolved == "" {
			resolved = path.fallback
		}

		*path.target = resolved
		v.Set(path.key, resolved)
	}

	return nil
}

func expandPath(raw string, homeDir string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if raw == "~" {
		raw = homeDir
	} else if strings.HasPrefix(raw, "~/") {
		raw = filepath.Join(homeDir, raw[2:])
	}

	absPath, err := filepath.Abs(raw)
	if err != nil {
		return "", err
	}

	return filepath.Clean(absPath), nil
}

// parseDuration accepts Go durations ("90s") and bare seconds ("90").
func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}

	var seconds float64
	if _, err := fmt.Sscanf(raw, "%g", &seconds); err != nil {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}
