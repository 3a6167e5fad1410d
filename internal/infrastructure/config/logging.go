package config

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Quiet suppresses everything below warn, regardless of level
	Quiet bool `mapstructure:"quiet"`
}
