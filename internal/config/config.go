package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every tunable of the application. The defaults reproduce the
// stock behavior, so the binary runs with no configuration at all; each value
// can be overridden through its environment variable.
type Config struct {
	Dictionary DictionaryConfig
	LLM        LLMConfig
	UI         UIConfig
	LogLevel   string `env:"MULTIDICT_LOG_LEVEL" env-default:"info"`
}

// DictionaryConfig points at the free dictionary service.
type DictionaryConfig struct {
	BaseURL string `env:"MULTIDICT_DICTIONARY_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
}

// LLMConfig points at the generative-text service. An empty APIKey is valid
// and means the execution environment supplies authorization implicitly.
type LLMConfig struct {
	BaseURL string `env:"MULTIDICT_LLM_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string `env:"MULTIDICT_LLM_MODEL" env-default:"gemini-2.5-flash-preview-05-20"`
	APIKey  string `env:"MULTIDICT_LLM_API_KEY" env-default:""`
}

// UIConfig carries the theme attributes passed explicitly to GUI
// construction; nothing GUI-related lives in package-level state.
type UIConfig struct {
	WindowWidth  float32 `env:"MULTIDICT_WINDOW_WIDTH" env-default:"700"`
	WindowHeight float32 `env:"MULTIDICT_WINDOW_HEIGHT" env-default:"550"`
	TextSize     float32 `env:"MULTIDICT_TEXT_SIZE" env-default:"13"`
	Padding      float32 `env:"MULTIDICT_PADDING" env-default:"6"`
	Background   string  `env:"MULTIDICT_BACKGROUND" env-default:"#f0f0f0"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}
