package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/dropkit/dropkit/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *model.User) error
	ByClerkID(clerkUserID string) (*model.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (id, clerk_user_id, first_name, last_name, email, profile_url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		user.ID,
		user.ClerkUserID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.ProfileURL,
		user.CreatedAt,
	)
	if err != nil {
		// Check for unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateUser
		}
		return err
	}

	return nil
}

func (r *userRepository) ByClerkID(clerkUserID string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE clerk_user_id = $1`

	err := r.db.Get(user, query, clerkUserID)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}
