package relay

import (
	"context"
	"errors"
)

var (
	ErrMessageRequired = errors.New("message is required")
	ErrPromptRequired  = errors.New("prompt is required")
)

// OptionSet holds the behavioural switches embedded in a message as --flags.
type OptionSet struct {
	Imagine bool `json:"imagine"`
	Think   bool `json:"think"`
	Web     bool `json:"web"`
	Deep    bool `json:"deep"`
	Memory  bool `json:"memory"`
}

// ParsedRequest is the cleaned prompt plus the options extracted from it.
type ParsedRequest struct {
	Prompt  string
	Options OptionSet
}

// Segmented is an upstream blob split into its marked regions.
type Segmented struct {
	Response  string `json:"response"`
	Thinking  string `json:"thinking"`
	WebSearch string `json:"webSearch"`
	Raw       string `json:"raw"`
}

type ChatResult struct {
	Prompt  string
	Options OptionSet
	Segmented
}

// Service runs one message through the relay pipeline.
type Service interface {
	Chat(ctx context.Context, message string) (*ChatResult, error)
}
