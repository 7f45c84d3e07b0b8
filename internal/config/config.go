package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/abdulachik/legendaly/internal/locale"
	"github.com/joho/godotenv"
)

const (
	MaxQuoteCount = 10

	defaultAnthropicModel = "claude-sonnet-4-20250514"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	Home         string // LEGENDALY_HOME (default: ~/.legendaly)
	DatabasePath string // default: <home>/data/legendaly.db
	VecLitePath  string // default: <home>/data/echoes.veclite

	// Model provider
	Provider        string // "openai" or "anthropic"
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string
	Model           string

	// Generation
	Tone       string // may combine tones with "+"
	Language   locale.Language
	Category   string
	UserPrompt string
	QuoteCount int

	// Display
	FetchInterval time.Duration
	TypeSpeed     time.Duration
	DisplayTime   time.Duration
	FadeSteps     int
	FadeDelay     time.Duration

	// Features
	MinRating           int
	Interactive         bool
	EnableNotifications bool

	// Server
	Port int

	// Logging
	LogLevel string
	Verbose  bool
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	home := getEnv("LEGENDALY_HOME", defaultHome())
	provider := strings.ToLower(getEnv("LLM_PROVIDER", "openai"))

	defaultModel := "gpt-4o"
	if provider == "anthropic" {
		defaultModel = defaultAnthropicModel
	}

	cfg := &Config{
		Home:            home,
		DatabasePath:    getEnv("DATABASE_PATH", filepath.Join(home, "data", "legendaly.db")),
		VecLitePath:     getEnv("VECLITE_PATH", filepath.Join(home, "data", "echoes.veclite")),
		Provider:        provider,
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		Model:           getEnv("MODEL", defaultModel),
		Tone:            getEnv("TONE", "epic"),
		Language:        locale.Parse(getEnv("LANGUAGE", string(locale.Default))),
		Category:        getEnv("CATEGORY", ""),
		UserPrompt:      getEnv("USER_PROMPT", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.QuoteCount, err = getInt("QUOTE_COUNT", MaxQuoteCount); err != nil {
		return nil, err
	}
	cfg.QuoteCount = min(max(cfg.QuoteCount, 1), MaxQuoteCount)

	if cfg.FadeSteps, err = getInt("FADE_STEPS", 8); err != nil {
		return nil, err
	}
	if cfg.MinRating, err = getInt("MIN_RATING", 0); err != nil {
		return nil, err
	}
	if cfg.Port, err = getInt("PORT", 3000); err != nil {
		return nil, err
	}

	if cfg.FetchInterval, err = getDuration("FETCH_INTERVAL", 3*time.Second, time.Second); err != nil {
		return nil, err
	}
	if cfg.TypeSpeed, err = getDuration("TYPE_SPEED", 40*time.Millisecond, time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.DisplayTime, err = getDuration("DISPLAY_TIME", 2*time.Second, time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.FadeDelay, err = getDuration("FADE_DELAY", 100*time.Millisecond, time.Millisecond); err != nil {
		return nil, err
	}

	if cfg.Interactive, err = getBool("INTERACTIVE", false); err != nil {
		return nil, err
	}
	if cfg.EnableNotifications, err = getBool("ENABLE_NOTIFICATIONS", false); err != nil {
		return nil, err
	}
	if cfg.Verbose, err = getBool("VERBOSE", false); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("LEGENDALY_HOME is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.MinRating < 0 || c.MinRating > 5 {
		return fmt.Errorf("invalid MIN_RATING: %d (must be 0-5)", c.MinRating)
	}
	return nil
}

// ValidateForGeneration checks configuration needed to call a model.
func (c *Config) ValidateForGeneration() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Model == "" {
		return fmt.Errorf("MODEL is required")
	}
	switch c.Provider {
	case "openai":
		if c.OpenAIAPIKey == "" && c.OpenAIBaseURL == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER is openai")
		}
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER is anthropic")
		}
	default:
		return fmt.Errorf("invalid LLM_PROVIDER: %s (must be 'openai' or 'anthropic')", c.Provider)
	}
	return nil
}

// ValidateForServe checks all configuration needed for the HTTP server.
func (c *Config) ValidateForServe() error {
	if err := c.ValidateForGeneration(); err != nil {
		return err
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	return nil
}

// BaseTone is the first tone of a combined tone such as "epic+zen".
func (c *Config) BaseTone() string {
	base, _, _ := strings.Cut(c.Tone, "+")
	return base
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".legendaly"
	}
	return filepath.Join(home, ".legendaly")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultVal bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// getDuration accepts Go durations ("1.5s") or bare integers in unit.
func getDuration(key string, defaultVal, unit time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultVal, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * unit, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
