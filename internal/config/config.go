// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	LogLevel         string
	AssistantDelay   time.Duration
	AssistantRate    float64
	AssistantBurst   int
	AMQPURL          string
	AMQPQueue        string
	SeedFile         string
	ActivityFeedSize int
	ShutdownTimeout  time.Duration
}

func Default() Config {
	return Config{
		Port:             "8080",
		LogLevel:         "info",
		AssistantDelay:   350 * time.Millisecond,
		AssistantRate:    2,
		AssistantBurst:   4,
		AMQPQueue:        "workflow_events",
		ActivityFeedSize: 100,
		ShutdownTimeout:  10 * time.Second,
	}
}

// Load reads .env (when present) and the process environment. Unparseable
// values keep their default and are reported together in the returned
// error; the Config is usable either way.
func Load(envFiles ...string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an env-style lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", key, v))
			return
		}
		*dst = d
	}
	integer := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs = append(errs, fmt.Errorf("%s: invalid positive integer %q", key, v))
			return
		}
		*dst = n
	}

	str("PORT", &cfg.Port)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("AMQP_URL", &cfg.AMQPURL)
	str("AMQP_QUEUE", &cfg.AMQPQueue)
	str("SEED_FILE", &cfg.SeedFile)
	dur("ASSISTANT_DELAY", &cfg.AssistantDelay)
	dur("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)
	integer("ASSISTANT_BURST", &cfg.AssistantBurst)
	integer("ACTIVITY_FEED_SIZE", &cfg.ActivityFeedSize)

	if v, ok := lookup("ASSISTANT_RATE_PER_SEC"); ok && v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			errs = append(errs, fmt.Errorf("ASSISTANT_RATE_PER_SEC: invalid rate %q", v))
		} else {
			cfg.AssistantRate = r
		}
	}

	return cfg, errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
