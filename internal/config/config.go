// Package config loads asman settings from defaults, an optional YAML
// file and ASMAN_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/asmanlearning/asman/internal/lessons"
	"github.com/asmanlearning/asman/internal/llm"
	"github.com/asmanlearning/asman/internal/store"
)

// Config holds all application configuration.
type Config struct {
	LLM       llm.Config      `mapstructure:"llm"`
	Lessons   lessons.Config  `mapstructure:"lessons"`
	Narration NarrationConfig `mapstructure:"narration"`
	Log       LogConfig       `mapstructure:"log"`
	Store     StoreConfig     `mapstructure:"store"`
	Trace     TraceConfig     `mapstructure:"trace"`
}

// NarrationConfig selects the text-to-speech backend.
type NarrationConfig struct {
	Backend      string `mapstructure:"backend" validate:"oneof=google none"`
	OutputDir    string `mapstructure:"output_dir"`
	LanguageCode string `mapstructure:"language_code" validate:"required"`
	// Voice is a Google voice name such as "en-IN-Wavenet-D". Empty lets
	// the service pick one for the language.
	Voice string `mapstructure:"voice"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Mode  string `mapstructure:"mode" validate:"oneof=dev prod"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// StoreConfig locates the local SQLite database. Empty Path uses
// store.DefaultDBPath.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// TraceConfig turns on the stdout span exporter.
type TraceConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// apiKeyEnvs maps provider key settings to their environment variables,
// the ASMAN_ form first and the conventional name as a fallback.
var apiKeyEnvs = []struct {
	key  string
	envs []string
}{
	{"llm.gemini.api_key", []string{"ASMAN_GEMINI_API_KEY", "GEMINI_API_KEY"}},
	{"llm.openai.api_key", []string{"ASMAN_OPENAI_API_KEY", "OPENAI_API_KEY"}},
	{"llm.anthropic.api_key", []string{"ASMAN_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"}},
	{"llm.openrouter.api_key", []string{"ASMAN_OPENROUTER_API_KEY", "OPENROUTER_API_KEY"}},
	{"llm.provider", []string{"ASMAN_LLM_PROVIDER"}},
}

// Load reads configuration. When path is empty the file is looked up as
// config.yaml under $XDG_CONFIG_HOME/asman and is optional; an explicit
// path must exist. Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(dir, "asman"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("ASMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, b := range apiKeyEnvs {
		if err := v.BindEnv(append([]string{b.key}, b.envs...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", b.key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. A missing API key is not an error
// here: generation then falls back to offline packs.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	llmDefaults := llm.DefaultConfig()
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", llmDefaults.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", llmDefaults.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", llmDefaults.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", llmDefaults.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", llmDefaults.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", llmDefaults.OpenRouter.BaseURL)
	v.SetDefault("llm.openrouter.referer", "")

	lessonDefaults := lessons.DefaultConfig()
	v.SetDefault("lessons.max_tokens", lessonDefaults.MaxTokens)
	v.SetDefault("lessons.temperature", lessonDefaults.Temperature)
	v.SetDefault("lessons.structured_output", lessonDefaults.StructuredOutput)

	v.SetDefault("narration.backend", "none")
	v.SetDefault("narration.output_dir", defaultNarrationDir())
	v.SetDefault("narration.language_code", "en-IN")
	v.SetDefault("narration.voice", "")

	v.SetDefault("log.mode", "dev")
	v.SetDefault("log.level", "warn")

	v.SetDefault("store.path", "")

	v.SetDefault("trace.enabled", false)
}

func defaultNarrationDir() string {
	dir, err := store.DataHome()
	if err != nil {
		return filepath.Join(os.TempDir(), "asman-narration")
	}
	return filepath.Join(dir, "narration")
}
