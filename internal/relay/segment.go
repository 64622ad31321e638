package relay

import (
	"regexp"
	"strings"
)

const (
	thinkClose        = "</think>"
	quickAnswerMarker = "$~~~$"
)

var (
	// Greedy tail: everything after the first marker, newlines included.
	quickAnswerRe = regexp.MustCompile(`(?s)\$~~~\$(.*)`)
	// Lazy body: first <think> up to the first </think> after it.
	thinkRe = regexp.MustCompile(`(?s)<think>(.*?)</think>`)
)

// Segment splits an upstream blob into reasoning trace, quick web answer and
// final response. Both markers are searched independently; only the choice of
// Response is prioritised (think first, then quick answer, then the blob).
func Segment(blob string) Segmented {
	out := Segmented{Raw: blob}

	var hasQuick, hasThink bool

	if m := quickAnswerRe.FindStringSubmatch(blob); m != nil {
		hasQuick = true
		out.WebSearch = strings.TrimSpace(m[1])
	}

	if m := thinkRe.FindStringSubmatch(blob); m != nil {
		hasThink = true
		out.Thinking = strings.TrimSpace(m[1])
	}

	var final string
	switch {
	case hasThink:
		parts := strings.Split(blob, thinkClose)
		if len(parts) > 1 {
			final = parts[1]
		}
	case hasQuick:
		// Upstream sends "$~~~$short answer$~~~$elaboration": the answer is
		// the third segment. A single marker therefore yields an empty
		// response and extra markers cut the elaboration short.
		parts := strings.Split(blob, quickAnswerMarker)
		if len(parts) > 2 {
			final = parts[2]
		}
	default:
		final = blob
	}

	out.Response = strings.TrimSpace(final)
	return out
}
