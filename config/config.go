package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Date resolution and action detection
	Datemath    DatemathConfig
	ActionSense ActionSenseConfig
	Schedule    ScheduleConfig

	// Collaborators
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type DatemathConfig struct {
	Timezone    string
	RuleVersion string
}

type ActionSenseConfig struct {
	StoreSize             int
	AutoRegisterThreshold float64
	LLMFallbackThreshold  float64
	LLMFallbackEnabled    bool
}

type ScheduleConfig struct {
	DefaultStart    string // HH:MM
	DefaultDuration time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string // OAuth desktop credentials only
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/actionsense/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/actionsense/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	cfg.Datemath.Timezone = v.GetString("datemath.timezone")
	cfg.Datemath.RuleVersion = v.GetString("datemath.rule_version")

	cfg.ActionSense.StoreSize = v.GetInt("actionsense.store_size")
	cfg.ActionSense.AutoRegisterThreshold = v.GetFloat64("actionsense.auto_register_threshold")
	cfg.ActionSense.LLMFallbackThreshold = v.GetFloat64("actionsense.llm_fallback_threshold")
	cfg.ActionSense.LLMFallbackEnabled = v.GetBool("actionsense.llm_fallback_enabled")

	cfg.Schedule.DefaultStart = v.GetString("schedule.default_start")
	cfg.Schedule.DefaultDuration = v.GetDuration("schedule.default_duration")

	cfg.Gemini.APIKey = expandEnvVar(v, v.GetString("gemini.api_key"))
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("datemath.timezone", "Asia/Seoul")
	v.SetDefault("datemath.rule_version", "v2")

	v.SetDefault("actionsense.store_size", 1000)
	v.SetDefault("actionsense.auto_register_threshold", 0.95)
	v.SetDefault("actionsense.llm_fallback_threshold", 0.8)
	v.SetDefault("actionsense.llm_fallback_enabled", true)

	v.SetDefault("schedule.default_start", "10:00")
	v.SetDefault("schedule.default_duration", "30m")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.timeout", "30s")

	v.SetDefault("google_calendar.credentials_path", "")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

// Validate rejects values the service cannot start with.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	switch c.Datemath.RuleVersion {
	case "", "v1", "v2":
	default:
		return fmt.Errorf("datemath.rule_version: unknown version %q", c.Datemath.RuleVersion)
	}
	if !inUnitRange(c.ActionSense.AutoRegisterThreshold) {
		return fmt.Errorf("actionsense.auto_register_threshold must be within [0,1], got %v", c.ActionSense.AutoRegisterThreshold)
	}
	if !inUnitRange(c.ActionSense.LLMFallbackThreshold) {
		return fmt.Errorf("actionsense.llm_fallback_threshold must be within [0,1], got %v", c.ActionSense.LLMFallbackThreshold)
	}
	if c.ActionSense.LLMFallbackThreshold > c.ActionSense.AutoRegisterThreshold {
		return fmt.Errorf("actionsense.llm_fallback_threshold (%v) exceeds auto_register_threshold (%v)",
			c.ActionSense.LLMFallbackThreshold, c.ActionSense.AutoRegisterThreshold)
	}
	if c.ActionSense.StoreSize <= 0 {
		return fmt.Errorf("actionsense.store_size must be positive, got %d", c.ActionSense.StoreSize)
	}
	if _, err := time.Parse("15:04", c.Schedule.DefaultStart); err != nil {
		return fmt.Errorf("schedule.default_start must be HH:MM, got %q", c.Schedule.DefaultStart)
	}
	if c.Schedule.DefaultDuration <= 0 {
		return fmt.Errorf("schedule.default_duration must be positive")
	}
	if c.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}

func inUnitRange(f float64) bool {
	return f >= 0 && f <= 1
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
