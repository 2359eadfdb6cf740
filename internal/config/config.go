package config

// Multiplexer is the name that puts the binary into subcommand mode.
const Multiplexer = "busyfs"

// Config holds the fixed runtime configuration.
type Config struct {
	Multiplexer string
	Version     string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Multiplexer: Multiplexer,
		Version:     "dev",
	}
}
