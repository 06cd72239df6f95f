package lessons

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int     `mapstructure:"max_tokens" validate:"gt=0"`
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=1"`

	// StructuredOutput also passes LessonPackSchema to the provider. The
	// parser validates either way.
	StructuredOutput bool `mapstructure:"structured_output"`
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
