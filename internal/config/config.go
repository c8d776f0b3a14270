package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultConfigFile = "config.yaml"

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// CalendarConfig controls how "today" and display text are resolved
type CalendarConfig struct {
	Locale   string `yaml:"locale"`   // pt-BR, en-US
	Timezone string `yaml:"timezone"` // IANA name, e.g. America/Sao_Paulo
}

type Config struct {
	// Server settings
	Port               string
	ReadTimeoutSeconds int

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
	// Calendar settings
	Calendar CalendarConfig `yaml:"calendar"`
}

type YAMLConfig struct {
	Server struct {
		Port               string `yaml:"port"`
		ReadTimeoutSeconds int    `yaml:"read_timeout_seconds"`
	} `yaml:"server"`

	Logging  LoggingConfig  `yaml:"logging"`
	Calendar CalendarConfig `yaml:"calendar"`
}

// Load reads .env (if present), then config.yaml (or CONFIG_FILE), then the
// environment. Explicit environment variables win over YAML.
func Load() *Config {
	return LoadFrom(getEnv("CONFIG_FILE", DefaultConfigFile))
}

// LoadFrom is Load with an explicit YAML path
func LoadFrom(path string) *Config {
	// A missing .env is the normal case outside development
	_ = godotenv.Load()

	cfg := &Config{
		Port:               "8080",
		ReadTimeoutSeconds: 10,
		Logging: LoggingConfig{
			LogLevel: "info",
			LogFile:  "expiry.log",
		},
		Calendar: CalendarConfig{
			Locale:   "pt-BR",
			Timezone: "America/Sao_Paulo",
		},
	}

	if yamlCfg := loadYAMLConfig(path); yamlCfg != nil {
		if yamlCfg.Server.Port != "" {
			cfg.Port = yamlCfg.Server.Port
		}
		if yamlCfg.Server.ReadTimeoutSeconds > 0 {
			cfg.ReadTimeoutSeconds = yamlCfg.Server.ReadTimeoutSeconds
		}
		if yamlCfg.Logging.LogLevel != "" {
			cfg.Logging.LogLevel = yamlCfg.Logging.LogLevel
		}
		if yamlCfg.Logging.LogFile != "" {
			cfg.Logging.LogFile = yamlCfg.Logging.LogFile
		}
		if yamlCfg.Calendar.Locale != "" {
			cfg.Calendar.Locale = yamlCfg.Calendar.Locale
		}
		if yamlCfg.Calendar.Timezone != "" {
			cfg.Calendar.Timezone = yamlCfg.Calendar.Timezone
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.ReadTimeoutSeconds = getEnvInt("READ_TIMEOUT_SECONDS", cfg.ReadTimeoutSeconds)
	cfg.Logging.LogLevel = getEnv("LOG_LEVEL", cfg.Logging.LogLevel)
	cfg.Logging.LogFile = getEnv("LOG_FILE", cfg.Logging.LogFile)
	cfg.Calendar.Locale = getEnv("EXPIRY_LOCALE", cfg.Calendar.Locale)
	cfg.Calendar.Timezone = getEnv("EXPIRY_TIMEZONE", cfg.Calendar.Timezone)

	return cfg
}

// Location resolves the configured timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	if c.Calendar.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func loadYAMLConfig(path string) *YAMLConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		// Could not read config file - silently return nil
		return nil
	}

	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		// Could not parse config file - silently return nil
		return nil
	}

	return &yamlCfg
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
