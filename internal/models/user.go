package models

import "time"

// TestHistoryEntry is one recorded aptitude-test run for a user.
type TestHistoryEntry struct {
	Date        time.Time      `json:"date"`
	Results     map[string]any `json:"results"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

// User represents a user in the system
type User struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"-"` // Not serialized
	CreatedAt    time.Time          `json:"created_at"`
	TestHistory  []TestHistoryEntry `json:"test_history"`
}
