package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel string        `envconfig:"ASSISTANT_LOG_LEVEL" default:"WARN"`
	Timeout  time.Duration `envconfig:"ASSISTANT_TIMEOUT" default:"30s"`
	// ASSISTANT_TYPING_DELAY is how long the assistant "types" in chat mode
	TypingDelay time.Duration `envconfig:"ASSISTANT_TYPING_DELAY" default:"1s"`
	// ASSISTANT_COLOURS enables colorized output
	Colours bool `envconfig:"ASSISTANT_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
