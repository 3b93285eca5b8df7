package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/careerpilot/career-service/internal/models"
	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a unique-constraint hit.
const uniqueViolation = "23505"

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database. A unique-constraint
// violation on email maps to models.ErrDuplicateEmail so that a signup
// race loser still gets the business-rule failure, not a raw SQL error.
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO career.users (id, name, email, password_hash, created_at, test_history)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, '[]'::jsonb)
		RETURNING created_at`
	err := r.db.QueryRow(query, user.ID, user.Name, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, test_history
		FROM career.users
		WHERE email = $1`
	return r.scanUser(r.db.QueryRow(query, email))
}

// FindUserByID retrieves a user by id
func (r *Repository) FindUserByID(id string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, test_history
		FROM career.users
		WHERE id = $1`
	return r.scanUser(r.db.QueryRow(query, id))
}

// AppendTestHistory atomically appends one entry to the user's history.
// The append happens in a single UPDATE so two concurrent appends to the
// same user both land; there is no read-modify-write window.
func (r *Repository) AppendTestHistory(userID string, entry models.TestHistoryEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	query := `
		UPDATE career.users
		SET test_history = test_history || $2::jsonb
		WHERE id = $1`
	res, err := r.db.Exec(query, userID, payload)
	if err != nil {
		return fmt.Errorf("failed to append test history: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to append test history: %w", err)
	}
	if affected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// CountUsers returns the total number of registered users.
func (r *Repository) CountUsers() (int64, error) {
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM career.users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// CountTestsSince returns the number of test-history entries recorded
// at or after the given instant, across all users.
func (r *Repository) CountTestsSince(since time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM career.users u,
		     jsonb_array_elements(u.test_history) AS h
		WHERE (h->>'date')::timestamptz >= $1`
	var n int64
	if err := r.db.QueryRow(query, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tests: %w", err)
	}
	return n, nil
}

func (r *Repository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var history []byte
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &history)
	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &user.TestHistory); err != nil {
			return nil, fmt.Errorf("failed to decode test history: %w", err)
		}
	}
	return user, nil
}
