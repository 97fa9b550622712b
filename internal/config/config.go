package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

type Config struct {
	Model   ModelConfig
	Store   StoreConfig
	Web     WebConfig
	Presets PresetsConfig
}

// ModelConfig holds the chat-completion endpoint settings. All three values
// are required at request time; nothing is ever hardcoded.
type ModelConfig struct {
	BaseURL string // endpoint base, e.g. https://api.openai.com
	APIKey  string
	Name    string // model identifier, e.g. gpt-4.1-mini
}

// Validate reports the first missing model variable so the caller can tell
// the user exactly which one to set.
func (c *ModelConfig) Validate() error {
	if c.BaseURL == "" {
		return &MissingVarError{Variable: "MODEL_BASE_URL"}
	}
	if c.APIKey == "" {
		return &MissingVarError{Variable: "MODEL_API_KEY"}
	}
	if c.Name == "" {
		return &MissingVarError{Variable: "MODEL_NAME"}
	}
	return nil
}

// MissingVarError names a required environment variable that is unset.
type MissingVarError struct {
	Variable string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("missing required environment variable %s", e.Variable)
}

type StoreConfig struct {
	Driver       string // "postgres" (default) or "mysql"
	URL          string // connection URL / DSN
	MaxOpenConns int    // default 25
	MaxIdleConns int    // default 5
}

type WebConfig struct {
	Host string
	Port int
}

// PresetsConfig lists the form suggestions the UI offers. Values are
// conventions, not an enforced enum: any string a caller sends is accepted.
type PresetsConfig struct {
	PropertyTypes []string `yaml:"property_types" json:"property_types"`
	Tones         []string `yaml:"tones" json:"tones"`
	Audiences     []string `yaml:"audiences" json:"audiences"`
	Languages     []string `yaml:"languages" json:"languages"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func Load() *Config {
	var presets PresetsConfig
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		// Embedded file, so this can only happen if the build itself is broken.
		panic("failed to unmarshal embedded presets.yaml: " + err.Error())
	}

	driver := os.Getenv("STORE_DRIVER")
	if driver == "" {
		driver = "postgres"
	}

	return &Config{
		Model: ModelConfig{
			BaseURL: os.Getenv("MODEL_BASE_URL"),
			APIKey:  os.Getenv("MODEL_API_KEY"),
			Name:    os.Getenv("MODEL_NAME"),
		},
		Store: StoreConfig{
			Driver:       driver,
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", 5),
		},
		Web: WebConfig{
			Host: envString("WEB_HOST", "0.0.0.0"),
			Port: envInt("WEB_PORT", 8080),
		},
		Presets: presets,
	}
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
