package ai

import (
	"context"
	"errors"
)

var (
	ErrSession  = errors.New("session acquisition failed")
	ErrUpstream = errors.New("upstream chat failed")
)

// AI is the remote chat provider. It knows nothing about flags or markers.
type AI interface {
	Chat(ctx context.Context, prompt string, modes Modes) (string, error)
}

// Modes are the provider switches a request is sent with.
type Modes struct {
	ImageGeneration bool
	WebSearch       bool
	DeepSearch      bool
	Reasoning       bool
}

// Error tags a chat call failure with its kind while printing the underlying
// message unchanged, so callers can pass it on verbatim.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() []error { return []error{e.Kind, e.Err} }
