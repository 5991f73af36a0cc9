package models

import (
	"errors"
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the shell reads at startup.
type Config struct {
	Title             string `yaml:"title" env:"CHATROOM_TITLE" validate:"required"`
	Placeholder       string `yaml:"placeholder" env:"CHATROOM_PLACEHOLDER"`
	InputHeight       int    `yaml:"input_height" env:"CHATROOM_INPUT_HEIGHT" validate:"gte=1,lte=20"`
	CharLimit         int    `yaml:"char_limit" env:"CHATROOM_CHAR_LIMIT" validate:"gte=0"`
	MemberPanePercent int    `yaml:"member_pane_percent" env:"CHATROOM_MEMBER_PANE_PERCENT" validate:"gte=10,lte=60"`
	AltScreen         bool   `yaml:"alt_screen" env:"CHATROOM_ALT_SCREEN"`
	Mouse             bool   `yaml:"mouse" env:"CHATROOM_MOUSE"`
	LogFile           string `yaml:"log_file,omitempty" env:"CHATROOM_LOG_FILE"`
	LogLevel          string `yaml:"log_level" env:"CHATROOM_LOG_LEVEL" validate:"oneof=debug info warn error"`
}

var DefaultConfig = Config{
	Title:             "Chat Room",
	Placeholder:       "Type a message...",
	InputHeight:       3,
	CharLimit:         0,
	MemberPanePercent: 30,
	AltScreen:         true,
	Mouse:             true,
	LogLevel:          "info",
}

var validate = validator.New()

// LoadConfig layers the YAML file at path, the optional dotenv file and the
// CHATROOM_* environment over DefaultConfig. Empty paths are skipped.
func LoadConfig(path, envFile string) (Config, error) {
	cfg := DefaultConfig

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}

// Validate checks field constraints and reports the first violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ConfigError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed %q constraint (value %v)", fe.ActualTag(), fe.Value()),
		}
	}
	return err
}

// YAML renders the config in config-file form.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return string(out), nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
