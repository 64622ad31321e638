package relay

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

const ModelID = "blackbox"

// ChatCompletions exposes the relay to OpenAI clients. Only the last user
// message is sent upstream; flags inside it work as on /api/chat.
func (h *Handler) ChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req openai.ChatCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOpenAIError(w, http.StatusBadRequest, "invalid_request_error", "invalid json")
		return
	}

	if req.Stream {
		writeOpenAIError(w, http.StatusBadRequest, "invalid_request_error", "streaming is not supported")
		return
	}

	message := lastUserMessage(req.Messages)
	if message == "" {
		writeOpenAIError(w, http.StatusBadRequest, "invalid_request_error", ErrMessageRequired.Error())
		return
	}

	res, err := h.svc.Chat(r.Context(), message)
	if err != nil {
		if isClientError(err) {
			writeOpenAIError(w, http.StatusBadRequest, "invalid_request_error", err.Error())
			return
		}
		h.log.WithError(err).Warn("chat completion failed")
		writeOpenAIError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}

	model := req.Model
	if model == "" {
		model = ModelID
	}

	writeJSON(w, http.StatusOK, openai.ChatCompletionResponse{
		ID:      "chatcmpl-" + uuid.NewString(),
		Object:  "chat.completion",
		Created: h.now().Unix(),
		Model:   model,
		Choices: []openai.ChatCompletionChoice{
			{
				Index: 0,
				Message: openai.ChatCompletionMessage{
					Role:             openai.ChatMessageRoleAssistant,
					Content:          res.Response,
					ReasoningContent: res.Thinking,
				},
				FinishReason: openai.FinishReasonStop,
			},
		},
	})
}

func (h *Handler) Models(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Object string         `json:"object"`
		Data   []openai.Model `json:"data"`
	}{
		Object: "list",
		Data: []openai.Model{
			{ID: ModelID, Object: "model", OwnedBy: "blackbox-ai-bridge"},
		},
	})
}

func lastUserMessage(msgs []openai.ChatCompletionMessage) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		if m.Role != openai.ChatMessageRoleUser {
			continue
		}
		if m.Content != "" {
			return m.Content
		}
		var parts []string
		for _, p := range m.MultiContent {
			if p.Type == openai.ChatMessagePartTypeText && p.Text != "" {
				parts = append(parts, p.Text)
			}
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

func writeOpenAIError(w http.ResponseWriter, status int, typ, msg string) {
	writeJSON(w, status, openai.ErrorResponse{
		Error: &openai.APIError{
			Type:    typ,
			Message: msg,
		},
	})
}
