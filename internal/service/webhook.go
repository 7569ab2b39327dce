package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"
)

// UserDirectory is the slice of UserService the webhook pipeline needs.
type UserDirectory interface {
	SyncCreated(clerkUserID string, firstName, lastName *string, email string, profileURL *string) error
}

// WebhookService verifies signed identity-provider events and syncs user
// records. The provider signs with the svix scheme, which is the
// standard-webhooks scheme.
type WebhookService struct {
	wh    *standardwebhooks.Webhook
	users UserDirectory
}

func NewWebhookService(secret string, users UserDirectory) (*WebhookService, error) {
	if secret == "" {
		return nil, fmt.Errorf("webhook secret is not configured")
	}

	wh, err := standardwebhooks.NewWebhookRaw([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook verifier: %w", err)
	}

	return &WebhookService{wh: wh, users: users}, nil
}

// HandleEvent verifies the raw payload against the svix headers and
// dispatches by event type. Only "user.created" produces a write; every other
// type is acknowledged without side effect so new provider events cannot
// break delivery.
func (s *WebhookService) HandleEvent(payload []byte, svixID, svixTimestamp, svixSignature string) error {
	headers := http.Header{}
	headers.Set("webhook-id", svixID)
	headers.Set("webhook-timestamp", svixTimestamp)
	headers.Set("webhook-signature", svixSignature)

	err := s.wh.Verify(payload, headers)
	if err != nil {
		return fmt.Errorf("invalid webhook signature: %w", err)
	}

	var event struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}

	err = json.Unmarshal(payload, &event)
	if err != nil {
		return fmt.Errorf("failed to parse webhook: %w", err)
	}

	slog.Info("webhook received", "event_type", event.Type)

	switch event.Type {
	case "user.created":
		return s.handleUserCreated(event.Data)
	default:
		slog.Info("webhook ignoring event type", "event_type", event.Type)
		return nil
	}
}

func (s *WebhookService) handleUserCreated(data json.RawMessage) error {
	var user struct {
		ID             string  `json:"id"`
		FirstName      *string `json:"first_name"`
		LastName       *string `json:"last_name"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
		ProfileImageURL *string `json:"profile_image_url"`
	}

	err := json.Unmarshal(data, &user)
	if err != nil {
		return fmt.Errorf("failed to parse user data: %w", err)
	}

	if user.ID == "" {
		return fmt.Errorf("user.created event has no id")
	}
	if len(user.EmailAddresses) == 0 {
		return fmt.Errorf("user.created event has no email address")
	}

	return s.users.SyncCreated(user.ID, user.FirstName, user.LastName, user.EmailAddresses[0].EmailAddress, user.ProfileImageURL)
}
