package relay

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultImageWidth   = "1024"
	DefaultImageHeight  = "1024"
	DefaultImageModel   = "midjourney"
	DefaultImageNoLogo  = "true"
	DefaultImagePrivate = "false"
	DefaultImageEnhance = "true"
)

// ImageParams are carried as given: the image backend interprets them, we
// only place them in the URL.
type ImageParams struct {
	Width   string `json:"width"`
	Height  string `json:"height"`
	Model   string `json:"model"`
	NoLogo  string `json:"nologo"`
	Private string `json:"private"`
	Enhance string `json:"enhance"`
	Seed    string `json:"seed"`
}

func DefaultImageParams() ImageParams {
	return ImageParams{
		Width:   DefaultImageWidth,
		Height:  DefaultImageHeight,
		Model:   DefaultImageModel,
		NoLogo:  DefaultImageNoLogo,
		Private: DefaultImagePrivate,
		Enhance: DefaultImageEnhance,
	}
}

type ImageResult struct {
	ImageURL   string      `json:"image_url"`
	Prompt     string      `json:"prompt"`
	Parameters ImageParams `json:"parameters"`
}

// BuildImageURL only builds a link; the image backend renders on first GET.
// Query order is fixed, url.Values would sort it.
func BuildImageURL(baseURL, prompt string, p ImageParams) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteByte('/')
	b.WriteString(url.PathEscape(prompt))

	for i, kv := range [][2]string{
		{"width", p.Width},
		{"height", p.Height},
		{"model", p.Model},
		{"nologo", p.NoLogo},
		{"private", p.Private},
		{"enhance", p.Enhance},
		{"seed", p.Seed},
	} {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(kv[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}

	return b.String()
}

func NewImageResult(baseURL, prompt string, p ImageParams) ImageResult {
	return ImageResult{
		ImageURL:   BuildImageURL(baseURL, prompt, p),
		Prompt:     prompt,
		Parameters: p,
	}
}

// ParseImageQuery reads generate-image query parameters over the defaults.
// Only a missing or empty prompt is an error; every other value is passed
// through untouched. seed is called only when the query carries no seed.
func ParseImageQuery(q url.Values, seed func() int64) (string, ImageParams, error) {
	prompt := q.Get("prompt")
	if prompt == "" {
		return "", ImageParams{}, ErrPromptRequired
	}

	p := DefaultImageParams()
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"width", &p.Width},
		{"height", &p.Height},
		{"model", &p.Model},
		{"nologo", &p.NoLogo},
		{"private", &p.Private},
		{"enhance", &p.Enhance},
		{"seed", &p.Seed},
	} {
		if v := q.Get(f.name); v != "" {
			*f.dst = v
		}
	}

	if p.Seed == "" && seed != nil {
		p.Seed = strconv.FormatInt(seed(), 10)
	}

	return prompt, p, nil
}
