package relay

type endpointDoc struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Description string            `json:"description"`
	Body        map[string]string `json:"body,omitempty"`
	Query       map[string]string `json:"query,omitempty"`
	Example     string            `json:"example,omitempty"`
}

var apiDocs = struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints []endpointDoc     `json:"endpoints"`
	Flags     map[string]string `json:"flags"`
	Notes     []string          `json:"notes"`
}{
	Name:    "blackbox-ai-bridge",
	Version: "1.0.0",
	Endpoints: []endpointDoc{
		{
			Method:      "POST",
			Path:        "/api/chat",
			Description: "Send a message to the chat backend. Flags inside the message switch modes.",
			Body:        map[string]string{"message": "string, required"},
			Example:     `{"message": "--think why is the sky blue?"}`,
		},
		{
			Method:      "GET",
			Path:        "/api/generate-image",
			Description: "Build an image generation URL. No image is fetched. Values other than prompt are passed to the image backend as given.",
			Query: map[string]string{
				"prompt":  "string, required",
				"width":   "default 1024",
				"height":  "default 1024",
				"model":   "default midjourney",
				"nologo":  "default true",
				"private": "default false",
				"enhance": "default true",
				"seed":    "random when omitted",
			},
			Example: "/api/generate-image?prompt=cat&seed=42",
		},
		{
			Method:      "GET",
			Path:        "/api/health",
			Description: "Liveness check.",
		},
		{
			Method:      "GET",
			Path:        "/api/docs",
			Description: "This document.",
		},
		{
			Method:      "POST",
			Path:        "/v1/chat/completions",
			Description: "OpenAI compatible chat completions. The last user message is relayed; streaming is not supported.",
		},
		{
			Method:      "GET",
			Path:        "/v1/models",
			Description: "OpenAI compatible model list.",
		},
	},
	Flags: map[string]string{
		FlagImagine: "image generation mode; disables --think, --web and --deep",
		FlagThink:   "reasoning mode; the trace is returned in \"thinking\"",
		FlagWeb:     "web search mode; the quick answer is returned in \"webSearch\"",
		FlagDeep:    "deep search mode",
		FlagMemory:  "experimental, currently has no effect",
	},
	Notes: []string{
		"Flags are matched anywhere in the message, including inside longer words.",
		"Every --word token is removed from the prompt, recognised or not.",
	},
}
