package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

var (
	// ErrEnvFileNotFound is returned when the .env file is not found
	ErrEnvFileNotFound = errors.New(".env file not found")

	// loadOnce ensures .env is loaded only once
	loadOnce sync.Once

	// loadErr keeps the result of the first load
	loadErr error
)

// Config is the server configuration, read from the environment
type Config struct {
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,default=8080"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	ChatTypingDelay time.Duration `env:"CHAT_TYPING_DELAY,default=1s"`
	APITimeout      time.Duration `env:"API_TIMEOUT,default=30s"`
	MaxBodySize     int64         `env:"MAX_BODY_SIZE,default=1048576"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// LoadEnv loads environment variables from the .env file.
// Variables already set in the environment win.
func LoadEnv() error {
	loadOnce.Do(func() {
		loadErr = loadEnvFile(".env")
	})
	return loadErr
}

// loadEnvFile reads filename and sets the variables it defines
func loadEnvFile(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return ErrEnvFileNotFound
		}
		return fmt.Errorf("error opening .env file: %w", err)
	}

	if err := godotenv.Load(filename); err != nil {
		return fmt.Errorf("error reading .env file: %w", err)
	}

	return nil
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("config error: invalid PORT %d", cfg.Port)
	}

	if cfg.MaxBodySize <= 0 {
		return Config{}, fmt.Errorf("config error: invalid MAX_BODY_SIZE %d", cfg.MaxBodySize)
	}

	return cfg, nil
}

// Address returns the host:port the server listens on
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
