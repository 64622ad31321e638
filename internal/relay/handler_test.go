package relay

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tidwall/gjson"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/ai"
)

func newTestRouter(up *fakeAI) http.Handler {
	h := NewHandler(NewService(up, quietLogger()), testImageBase, quietLogger())
	h.seed = fixedSeed(123)
	h.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestChatEndpoint(t *testing.T) {
	up := &fakeAI{reply: "$~~~$quick$~~~$\nfull answer\n"}
	rec := do(t, newTestRouter(up), http.MethodPost, "/api/chat", `{"message":"--web latest go release"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	body := gjson.Parse(rec.Body.String())
	checks := map[string]string{
		"prompt":    "latest go release",
		"response":  "full answer",
		"webSearch": "quick$~~~$\nfull answer",
		"thinking":  "",
		"raw":       up.reply,
	}
	for path, want := range checks {
		if got := body.Get(path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}
	if !body.Get("success").Bool() {
		t.Error("success should be true")
	}
	if !body.Get("options.web").Bool() || body.Get("options.think").Bool() {
		t.Errorf("options = %s", body.Get("options").Raw)
	}
	for _, k := range []string{"imagine", "think", "web", "deep", "memory"} {
		if !body.Get("options." + k).Exists() {
			t.Errorf("options.%s missing", k)
		}
	}
}

func TestChatEndpointReportsEffectiveOptions(t *testing.T) {
	up := &fakeAI{reply: "ok"}
	rec := do(t, newTestRouter(up), http.MethodPost, "/api/chat", `{"message":"--imagine --web a cat"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	opts := gjson.Get(rec.Body.String(), "options")
	if !opts.Get("imagine").Bool() || opts.Get("web").Bool() {
		t.Fatalf("options = %s", opts.Raw)
	}
}

func TestChatEndpointClientErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "invalid json", body: `{`, want: "invalid json"},
		{name: "missing message", body: `{}`, want: "message is required"},
		{name: "empty message", body: `{"message":""}`, want: "message is required"},
		{name: "flags only", body: `{"message":"--think"}`, want: "prompt is required"},
		{name: "whitespace", body: `{"message":"   "}`, want: "prompt is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &fakeAI{}
			rec := do(t, newTestRouter(up), http.MethodPost, "/api/chat", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if got := gjson.Get(rec.Body.String(), "error").String(); got != tt.want {
				t.Fatalf("error = %q, want %q", got, tt.want)
			}
			if up.calls != 0 {
				t.Fatal("upstream must not be called")
			}
		})
	}
}

func TestChatEndpointUpstreamFailure(t *testing.T) {
	up := &fakeAI{err: &ai.Error{Kind: ai.ErrUpstream, Err: errors.New("403 Forbidden body=blocked")}}
	rec := do(t, newTestRouter(up), http.MethodPost, "/api/chat", `{"message":"hi"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := gjson.Parse(rec.Body.String())
	if body.Get("error").String() != "failed to get chat response" {
		t.Errorf("error = %q", body.Get("error").String())
	}
	if body.Get("message").String() != "403 Forbidden body=blocked" {
		t.Errorf("message = %q, want upstream error verbatim", body.Get("message").String())
	}
}

func TestGenerateImageEndpoint(t *testing.T) {
	rec := do(t, newTestRouter(&fakeAI{}), http.MethodGet, "/api/generate-image?prompt=cat&seed=42", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	body := gjson.Parse(rec.Body.String())
	imageURL := body.Get("image_url").String()
	if !strings.Contains(imageURL, "prompt/cat?width=1024&height=1024&model=midjourney&nologo=true&private=false&enhance=true&seed=42") {
		t.Errorf("image_url = %s", imageURL)
	}
	if body.Get("prompt").String() != "cat" {
		t.Errorf("prompt = %q", body.Get("prompt").String())
	}
	if body.Get("parameters.seed").String() != "42" || body.Get("parameters.width").String() != "1024" {
		t.Errorf("parameters = %s", body.Get("parameters").Raw)
	}
}

func TestGenerateImageEndpointRandomSeed(t *testing.T) {
	rec := do(t, newTestRouter(&fakeAI{}), http.MethodGet, "/api/generate-image?prompt=dog", "")

	if got := gjson.Get(rec.Body.String(), "parameters.seed").String(); got != "123" {
		t.Fatalf("seed = %q, want generated 123", got)
	}
}

func TestGenerateImageEndpointErrors(t *testing.T) {
	for _, target := range []string{
		"/api/generate-image",
		"/api/generate-image?prompt=",
		"/api/generate-image?width=512",
	} {
		rec := do(t, newTestRouter(&fakeAI{}), http.MethodGet, target, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
		if got := gjson.Get(rec.Body.String(), "error").String(); got != "prompt is required" {
			t.Errorf("%s: error = %q", target, got)
		}
	}
}

func TestGenerateImageEndpointPassesParamsThrough(t *testing.T) {
	for _, target := range []string{
		"/api/generate-image?prompt=cat&width=auto",
		"/api/generate-image?prompt=cat&nologo=yes",
		"/api/generate-image?prompt=%20%20",
	} {
		rec := do(t, newTestRouter(&fakeAI{}), http.MethodGet, target, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, body = %s", target, rec.Code, rec.Body)
		}
	}

	rec := do(t, newTestRouter(&fakeAI{}), http.MethodGet, "/api/generate-image?prompt=cat&width=auto&nologo=yes", "")
	body := gjson.Parse(rec.Body.String())
	if body.Get("parameters.width").String() != "auto" || body.Get("parameters.nologo").String() != "yes" {
		t.Errorf("parameters = %s", body.Get("parameters").Raw)
	}
	if !strings.Contains(body.Get("image_url").String(), "width=auto&height=1024&model=midjourney&nologo=yes") {
		t.Errorf("image_url = %s", body.Get("image_url").String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	rec := do(t, newTestRouter(&fakeAI{}), http.MethodGet, "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := gjson.Parse(rec.Body.String())
	if body.Get("status").String() != "OK" {
		t.Errorf("status = %q", body.Get("status").String())
	}
	if body.Get("timestamp").String() != "2024-05-01T12:00:00Z" {
		t.Errorf("timestamp = %q", body.Get("timestamp").String())
	}
}

func TestDocsEndpoint(t *testing.T) {
	rec := do(t, newTestRouter(&fakeAI{}), http.MethodGet, "/api/docs", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := gjson.Parse(rec.Body.String())
	if n := len(body.Get("endpoints").Array()); n < 4 {
		t.Errorf("endpoints = %d", n)
	}
	if !body.Get("flags").Get(FlagImagine).Exists() {
		t.Errorf("flags = %s", body.Get("flags").Raw)
	}
}
