package ai

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/logfmt"
)

const (
	DefaultBaseURL   = "https://www.blackbox.ai"
	DefaultChatPath  = "/api/chat"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/128.0.0.0 Safari/537.36"
)

type ClientConfig struct {
	BaseURL   string
	ChatPath  string
	UserAgent string
	Timeout   time.Duration
	Logger    logrus.FieldLogger
}

type BlackboxClient struct {
	baseURL   string
	chatPath  string
	userAgent string
	client    *http.Client
	log       logrus.FieldLogger
}

func NewBlackboxClient(cfg ClientConfig) *BlackboxClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ChatPath == "" {
		cfg.ChatPath = DefaultChatPath
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	return &BlackboxClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		chatPath:  cfg.ChatPath,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
		log:       cfg.Logger.WithField("component", "ai"),
	}
}

// Chat primes a fresh session and sends one prompt. Sessions are never
// reused between calls.
func (c *BlackboxClient) Chat(ctx context.Context, prompt string, modes Modes) (string, error) {
	cookie, err := c.acquireSession(ctx)
	if err != nil {
		return "", err
	}

	payload, err := buildChatPayload(prompt, modes)
	if err != nil {
		return "", fmt.Errorf("build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+c.chatPath,
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", err
	}

	c.setBrowserHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	c.log.WithFields(logrus.Fields{
		"image":     modes.ImageGeneration,
		"web":       modes.WebSearch,
		"deep":      modes.DeepSearch,
		"reasoning": modes.Reasoning,
	}).Debug("sending chat request")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &Error{Kind: ErrUpstream, Err: err}
	}
	defer resp.Body.Close()

	raw, err := readBody(resp)
	if err != nil {
		return "", &Error{Kind: ErrUpstream, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WithField("status", resp.StatusCode).Warn("chat request rejected")
		return "", &Error{Kind: ErrUpstream, Err: fmt.Errorf("%s body=%s", resp.Status, raw)}
	}

	c.log.WithField("raw", logfmt.Short(raw)).Debug("chat response")

	return raw, nil
}

// acquireSession returns every Set-Cookie value from the provider root joined
// with "; ". A transport failure or non-2xx status is fatal; a 2xx response
// without cookies yields an empty string.
func (c *BlackboxClient) acquireSession(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSession, err)
	}
	c.setBrowserHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("session priming failed")
		return "", fmt.Errorf("%w: %w", ErrSession, err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WithField("status", resp.StatusCode).Warn("session priming rejected")
		return "", fmt.Errorf("%w: %s", ErrSession, resp.Status)
	}

	return strings.Join(resp.Header.Values("Set-Cookie"), "; "), nil
}

func (c *BlackboxClient) setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, br")
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Referer", c.baseURL+"/")
}
