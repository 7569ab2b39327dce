package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dropkit/dropkit/internal/model"
	"github.com/dropkit/dropkit/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// SyncCreated stores a user announced by a "user.created" event. Webhook
// delivery is at-least-once, so a duplicate external id is treated as a
// successful no-op rather than an error.
func (s *UserService) SyncCreated(clerkUserID string, firstName, lastName *string, email string, profileURL *string) error {
	user := &model.User{
		ID:          uuid.New().String(),
		ClerkUserID: clerkUserID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		ProfileURL:  profileURL,
		CreatedAt:   time.Now(),
	}

	err := s.users.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			slog.Info("user already synced, skipping", "clerk_user_id", clerkUserID)
			return nil
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user synced from webhook", "clerk_user_id", clerkUserID)
	return nil
}

// ByClerkID returns the user record for an external identity-provider id.
func (s *UserService) ByClerkID(clerkUserID string) (*model.User, error) {
	return s.users.ByClerkID(clerkUserID)
}
