package relay

import (
	"regexp"
	"strings"
)

const (
	FlagImagine = "--imagine"
	FlagThink   = "--think"
	FlagWeb     = "--web"
	FlagDeep    = "--deep"
	FlagMemory  = "--memory"
)

// Any --word shaped token is stripped, recognised or not.
var flagToken = regexp.MustCompile(`--\w+`)

// ExtractOptions detects flags by plain substring containment, so "--webhook"
// also switches on web. Callers reject the request when Prompt is empty.
func ExtractOptions(message string) ParsedRequest {
	opts := OptionSet{
		Imagine: strings.Contains(message, FlagImagine),
		Think:   strings.Contains(message, FlagThink),
		Web:     strings.Contains(message, FlagWeb),
		Deep:    strings.Contains(message, FlagDeep),
		Memory:  strings.Contains(message, FlagMemory),
	}

	prompt := strings.TrimSpace(flagToken.ReplaceAllString(message, ""))

	return ParsedRequest{Prompt: prompt, Options: opts}
}

// ResolveOptions applies the upstream exclusivity rule: image generation
// cannot be combined with reasoning or search modes. Memory is never touched.
func ResolveOptions(opts OptionSet) OptionSet {
	if opts.Imagine && (opts.Think || opts.Web || opts.Deep) {
		opts.Think = false
		opts.Web = false
		opts.Deep = false
	}
	return opts
}
