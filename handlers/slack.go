package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/slack-go/slack"

	"closurerelay/core"
	"closurerelay/models"
	"closurerelay/usecases/closure"
)

// ephemeralResponse is the inline JSON body for user-visible rejections
type ephemeralResponse struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

// fieldErrorsResponse is Slack's native inline field-error mechanism: the
// form stays open with the listed blocks flagged
type fieldErrorsResponse struct {
	ResponseAction string            `json:"response_action"`
	Errors         map[string]string `json:"errors"`
}

// ErrorAlerter receives handler errors that surface as server errors
type ErrorAlerter interface {
	AlertOnError(err error, context string)
}

// SlackWebhooksHandler handles the inbound Slack webhook endpoints
type SlackWebhooksHandler struct {
	signingSecret  string
	closureUseCase *closure.ClosureUseCase
	alerter        ErrorAlerter
}

// NewSlackWebhooksHandler creates a new Slack webhooks handler
func NewSlackWebhooksHandler(
	signingSecret string,
	closureUseCase *closure.ClosureUseCase,
	alerter ErrorAlerter,
) *SlackWebhooksHandler {
	return &SlackWebhooksHandler{
		signingSecret:  signingSecret,
		closureUseCase: closureUseCase,
		alerter:        alerter,
	}
}

// verifySlackSignature verifies the authenticity of a Slack webhook request
func (h *SlackWebhooksHandler) verifySlackSignature(r *http.Request, body []byte) error {
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		return fmt.Errorf("invalid secret verifier: %w", err)
	}

	if _, err := verifier.Write(body); err != nil {
		return fmt.Errorf("failed to hash request body: %w", err)
	}

	return verifier.Ensure()
}

// HandleSlashCommand handles POST /command
func (h *SlackWebhooksHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	requestID := core.NewID("req")
	log.Printf("⚡ [%s] Slash command received from %s", requestID, r.RemoteAddr)

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ [%s] Failed to read request body: %v", requestID, err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifySlackSignature(r, bodyBytes); err != nil {
		log.Printf("❌ [%s] Slack signature verification failed: %v", requestID, err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	command, err := slack.SlashCommandParse(r)
	if err != nil {
		log.Printf("❌ [%s] Failed to parse slash command: %v", requestID, err)
		http.Error(w, "failed to parse slash command", http.StatusBadRequest)
		return
	}

	cmd := models.CommandRequest{
		Command:   command.Command,
		ChannelID: command.ChannelID,
		TriggerID: command.TriggerID,
		UserID:    command.UserID,
	}

	result, err := h.closureUseCase.ProcessSlashCommand(r.Context(), cmd)
	if err != nil {
		// The user has no other feedback path for a failed open-view call
		log.Printf("❌ [%s] Failed to process slash command: %v", requestID, err)
		h.alerter.AlertOnError(err, fmt.Sprintf("Slash command %s", command.Command))
		http.Error(w, "failed to open closure form", http.StatusInternalServerError)
		return
	}

	switch result.Status {
	case closure.CommandStatusRejectedChannel:
		h.writeJSON(w, http.StatusOK, ephemeralResponse{ResponseType: "ephemeral", Text: result.Message})
	case closure.CommandStatusUnknownCommand:
		h.writeJSON(w, http.StatusBadRequest, ephemeralResponse{ResponseType: "ephemeral", Text: result.Message})
	default:
		w.WriteHeader(http.StatusOK)
	}
}

// HandleInteraction handles POST /interaction
func (h *SlackWebhooksHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	requestID := core.NewID("req")
	log.Printf("📨 [%s] Interaction received from %s", requestID, r.RemoteAddr)

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ [%s] Failed to read request body: %v", requestID, err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifySlackSignature(r, bodyBytes); err != nil {
		log.Printf("❌ [%s] Slack signature verification failed: %v", requestID, err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// Interactions arrive as a URL-encoded form with a single JSON payload field
	values, err := url.ParseQuery(string(bodyBytes))
	if err != nil {
		log.Printf("❌ [%s] Failed to parse interaction form body: %v", requestID, err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	rawPayload := values.Get("payload")
	if rawPayload == "" {
		log.Printf("❌ [%s] Interaction request missing payload field", requestID)
		http.Error(w, "payload not found", http.StatusBadRequest)
		return
	}

	var payload slack.InteractionCallback
	if err := json.Unmarshal([]byte(rawPayload), &payload); err != nil {
		log.Printf("❌ [%s] Failed to parse interaction payload: %v", requestID, err)
		http.Error(w, "failed to parse payload", http.StatusBadRequest)
		return
	}

	result, err := h.closureUseCase.ProcessInteraction(r.Context(), payload)
	if err != nil {
		log.Printf("❌ [%s] Failed to process interaction: %v", requestID, err)
		h.alerter.AlertOnError(err, fmt.Sprintf("Interaction %s", payload.Type))
		http.Error(w, "failed to process interaction", http.StatusInternalServerError)
		return
	}

	if len(result.FieldErrors) > 0 {
		h.writeJSON(w, http.StatusOK, fieldErrorsResponse{ResponseAction: "errors", Errors: result.FieldErrors})
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackWebhooksHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ Failed to write JSON response: %v", err)
	}
}

// SetupEndpoints registers the Slack webhook endpoints on the router
func (h *SlackWebhooksHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering Slack webhook endpoints")

	router.HandleFunc("/command", h.HandleSlashCommand).Methods("POST")
	log.Printf("✅ POST /command endpoint registered")

	router.HandleFunc("/interaction", h.HandleInteraction).Methods("POST")
	log.Printf("✅ POST /interaction endpoint registered")
}
