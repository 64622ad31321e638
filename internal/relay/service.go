package relay

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/ai"
	"github.com/Vovarama1992/blackbox-ai-bridge/internal/logfmt"
)

type service struct {
	ai  ai.AI
	log logrus.FieldLogger
}

func NewService(aiClient ai.AI, logger logrus.FieldLogger) Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &service{
		ai:  aiClient,
		log: logger.WithField("component", "relay"),
	}
}

func (s *service) Chat(ctx context.Context, message string) (*ChatResult, error) {
	if message == "" {
		return nil, ErrMessageRequired
	}

	parsed := ExtractOptions(message)
	if parsed.Prompt == "" {
		return nil, ErrPromptRequired
	}

	effective := ResolveOptions(parsed.Options)
	if effective != parsed.Options {
		s.log.WithField("requested", parsed.Options).Info("image mode overrides think/web/deep")
	}

	s.log.WithFields(logrus.Fields{
		"prompt":  logfmt.Short(parsed.Prompt),
		"options": effective,
	}).Info("relaying chat")

	raw, err := s.ai.Chat(ctx, parsed.Prompt, toModes(effective))
	if err != nil {
		s.log.WithError(err).Error("upstream chat failed")
		return nil, err
	}

	return &ChatResult{
		Prompt:    parsed.Prompt,
		Options:   effective,
		Segmented: Segment(raw),
	}, nil
}

// Memory has no provider counterpart yet.
func toModes(o OptionSet) ai.Modes {
	return ai.Modes{
		ImageGeneration: o.Imagine,
		WebSearch:       o.Web,
		DeepSearch:      o.Deep,
		Reasoning:       o.Think,
	}
}
