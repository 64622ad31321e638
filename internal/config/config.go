// Package config loads relay settings from the environment, with an optional
// .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/ai"
)

const DefaultImageBaseURL = "https://image.pollinations.ai/prompt"

type Config struct {
	Host string
	Port int

	ChatBaseURL     string
	ChatPath        string
	ImageBaseURL    string
	UserAgent       string
	UpstreamTimeout time.Duration

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

func Default() Config {
	return Config{
		Port:               8080,
		ChatBaseURL:        ai.DefaultBaseURL,
		ChatPath:           ai.DefaultChatPath,
		ImageBaseURL:       DefaultImageBaseURL,
		UserAgent:          ai.DefaultUserAgent,
		UpstreamTimeout:    60 * time.Second,
		LogLevel:           "info",
		LogFormat:          "text",
		CORSAllowedOrigins: []string{"*"},
		ShutdownTimeout:    10 * time.Second,
	}
}

// Load reads .env (if present) and then the process environment over the
// defaults. Unparseable values are reported, not silently replaced.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = d
	}

	str("HOST", &cfg.Host)
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PORT: %w", err))
		} else {
			cfg.Port = p
		}
	}

	str("CHAT_BASE_URL", &cfg.ChatBaseURL)
	str("CHAT_PATH", &cfg.ChatPath)
	str("IMAGE_BASE_URL", &cfg.ImageBaseURL)
	str("USER_AGENT", &cfg.UserAgent)
	dur("UPSTREAM_TIMEOUT", &cfg.UpstreamTimeout)

	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)

	if v := strings.TrimSpace(getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}
	dur("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	for name, raw := range map[string]string{
		"chat base url":  c.ChatBaseURL,
		"image base url": c.ImageBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s %q is not an absolute http(s) url", name, raw))
		}
	}
	if !strings.HasPrefix(c.ChatPath, "/") {
		errs = append(errs, fmt.Errorf("chat path %q must start with /", c.ChatPath))
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, errors.New("upstream timeout must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log format %q must be text or json", c.LogFormat))
	}

	return errors.Join(errs...)
}

func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// NewLogger builds the process logger from LogLevel and LogFormat.
func (c Config) NewLogger() *logrus.Logger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
