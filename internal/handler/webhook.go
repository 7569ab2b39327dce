package handler

import (
	"io"
	"log/slog"
	"net/http"
)

// WebhookService processes a raw signed event from the identity provider.
type WebhookService interface {
	HandleEvent(payload []byte, svixID, svixTimestamp, svixSignature string) error
}

type WebhookHandler struct {
	webhooks WebhookService
}

func NewWebhookHandler(webhooks WebhookService) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// Handle receives identity-provider events. The body is passed to
// verification as raw bytes; any failure is a client error with the offending
// headers and payload logged for operator triage.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read webhook payload", "error", err)
		respondJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Failed to read payload"})
		return
	}
	defer func() {
		closeErr := r.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close request body", "error", closeErr)
		}
	}()

	svixID := r.Header.Get("svix-id")
	svixTimestamp := r.Header.Get("svix-timestamp")
	svixSignature := r.Header.Get("svix-signature")

	err = h.webhooks.HandleEvent(payload, svixID, svixTimestamp, svixSignature)
	if err != nil {
		slog.Error("failed to handle webhook", "error", err,
			"svix_id", svixID,
			"svix_timestamp", svixTimestamp,
			"svix_signature", svixSignature,
			"payload", string(payload),
		)
		respondJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Webhook received"})
}
