package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains the settings needed to verify tokens issued by the
// external identity provider. The service never issues credentials itself.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// PromptTemplatePath optionally overrides the built-in prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	// TimeoutSeconds is the hard deadline for a single provider call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0,lte=300"`
}

// GenerationConfig bounds the generation pipeline.
type GenerationConfig struct {
	// MinTextLength and MaxTextLength bound the raw source text. The
	// trimmed text must also reach MinTextLength so padding-only
	// submissions are rejected.
	MinTextLength int `mapstructure:"min_text_length" validate:"required,gt=0"`
	MaxTextLength int `mapstructure:"max_text_length" validate:"required,gtfield=MinTextLength"`

	// MaxCards caps how many candidates from a single provider response
	// are kept for staging.
	MaxCards int `mapstructure:"max_cards" validate:"required,gt=0"`
}
