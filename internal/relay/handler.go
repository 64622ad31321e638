package relay

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc          Service
	imageBaseURL string
	log          logrus.FieldLogger

	seed func() int64
	now  func() time.Time
}

func NewHandler(svc Service, imageBaseURL string, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		svc:          svc,
		imageBaseURL: imageBaseURL,
		log:          logger.WithField("component", "relay"),
		seed:         RandomSeed,
		now:          time.Now,
	}
}

func RandomSeed() int64 {
	return rand.Int64N(1_000_000)
}

type chatResponse struct {
	Success bool      `json:"success"`
	Prompt  string    `json:"prompt"`
	Options OptionSet `json:"options"`
	Segmented
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Chat handles POST /api/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message *string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}

	if payload.Message == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ErrMessageRequired.Error()})
		return
	}

	res, err := h.svc.Chat(r.Context(), *payload.Message)
	if err != nil {
		if isClientError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "failed to get chat response",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Success:   true,
		Prompt:    res.Prompt,
		Options:   res.Options,
		Segmented: res.Segmented,
	})
}

// GenerateImage handles GET /api/generate-image. No upstream call is made.
func (h *Handler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	prompt, params, err := ParseImageQuery(r.URL.Query(), h.seed)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, NewImageResult(h.imageBaseURL, prompt, params))
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Docs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, apiDocs)
}

func isClientError(err error) bool {
	return errors.Is(err, ErrMessageRequired) || errors.Is(err, ErrPromptRequired)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
