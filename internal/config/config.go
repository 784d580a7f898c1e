package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Kitan-Dara06/flashcard-generator-public/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	HTTP   HTTPConfig   `mapstructure:"http" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth" validate:"required"`
	OpenAI OpenAIConfig `mapstructure:"openai" validate:"required"`
	Env    string       `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	MaxPDFPages int `mapstructure:"max_pdf_pages" validate:"min=1"`
}

type HTTPConfig struct {
	Port         string        `mapstructure:"port" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"min=1"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=1"`
}

type AuthConfig struct {
	// Password is either the clear-text gate password or a bcrypt hash of it.
	// Left empty, the gate answers "Password not configured".
	Password   string        `mapstructure:"password"`
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"min=1"`
}

type OpenAIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	Model       string        `mapstructure:"model" validate:"required"`
	Temperature float64       `mapstructure:"temperature" validate:"min=0,max=2"`
	MaxTokens   int           `mapstructure:"max_tokens" validate:"min=1"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"min=1"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("auth.password", "APP_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind APP_PASSWORD: %w", err)
	}
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY: %w", err)
	}
	if err := v.BindEnv("openai.base_url", "OPENAI_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_BASE_URL: %w", err)
	}
	if err := v.BindEnv("http.port", "HTTP_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind HTTP_PORT: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
