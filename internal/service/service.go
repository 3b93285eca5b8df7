package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careerpilot/career-service/internal/auth"
	"github.com/careerpilot/career-service/internal/models"
	"github.com/careerpilot/career-service/internal/prompt"
	"github.com/careerpilot/career-service/internal/sanitize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the credential store the service persists users in.
type UserStore interface {
	CreateUser(user *models.User) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id string) (*models.User, error)
	AppendTestHistory(userID string, entry models.TestHistoryEntry) error
}

// Completer is the external text-completion service.
type Completer interface {
	Complete(ctx context.Context, promptText string) (string, error)
}

// WelcomeMailer sends the optional post-signup welcome mail.
type WelcomeMailer interface {
	SendWelcome(to, name string) error
}

// Service handles business logic
type Service struct {
	store     UserStore
	completer Completer
	tokens    *auth.TokenService
	mailer    WelcomeMailer // nil when SMTP is not configured
	log       *logrus.Logger
}

// NewService initializes a new service
func NewService(store UserStore, completer Completer, tokens *auth.TokenService, mailer WelcomeMailer, log *logrus.Logger) *Service {
	return &Service{store: store, completer: completer, tokens: tokens, mailer: mailer, log: log}
}

// Signup creates a new user with a hashed password and returns a session
// token. The plaintext password is hashed exactly once, immediately
// before the first persist; it is never stored or logged.
func (s *Service) Signup(name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", models.ErrValidation
	}

	// Reject duplicates before any mutation. The unique index covers the
	// race where two signups with the same email interleave.
	if _, err := s.store.FindUserByEmail(email); err == nil {
		return "", models.ErrDuplicateEmail
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.CreateUser(user); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if s.mailer != nil {
		go func() {
			if err := s.mailer.SendWelcome(user.Email, user.Name); err != nil {
				s.log.Warnf("Failed to send welcome email to %s: %v", user.Email, err)
			}
		}()
	}

	s.log.Infof("User registered: %s", user.Email)
	return token, nil
}

// Login authenticates a user and returns a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return token, nil
}

// Profile returns the user record without the password hash.
func (s *Service) Profile(userID string) (*models.User, error) {
	user, err := s.store.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// GenerateQuestions asks the model for aptitude-test questions tailored
// to the caller's profile. Structured mode: the model output must be a
// JSON array after fence stripping.
func (s *Service) GenerateQuestions(ctx context.Context, currentStatus, currentField, interestField string) ([]models.Question, error) {
	raw, err := s.completer.Complete(ctx, prompt.Questions(currentStatus, currentField, interestField))
	if err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := sanitize.JSON(raw, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// AnalyzeResults asks the model for a short plain-text recommendation and
// appends the run to the user's test history. A failed append does not
// discard an analysis that was already produced; it is logged instead.
func (s *Service) AnalyzeResults(ctx context.Context, userID string, results map[string]any) (string, error) {
	raw, err := s.completer.Complete(ctx, prompt.Analysis(results))
	if err != nil {
		return "", err
	}
	analysis := sanitize.Text(raw)

	entry := models.TestHistoryEntry{
		Date:    time.Now().UTC(),
		Results: results,
	}
	if err := s.store.AppendTestHistory(userID, entry); err != nil {
		s.log.Warnf("Failed to append test history for user %s: %v", userID, err)
	}

	return analysis, nil
}

// CareerSuggestions asks the model for career paths matching a profile.
// Structured mode, same discipline as GenerateQuestions.
func (s *Service) CareerSuggestions(ctx context.Context, skills, interests, experience string) ([]models.CareerSuggestion, error) {
	raw, err := s.completer.Complete(ctx, prompt.Suggestions(skills, interests, experience))
	if err != nil {
		return nil, err
	}

	var suggestions []models.CareerSuggestion
	if err := sanitize.JSON(raw, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// CareerChat answers one domain-restricted chat message in plain text.
func (s *Service) CareerChat(ctx context.Context, message string) (string, error) {
	raw, err := s.completer.Complete(ctx, prompt.Chat(message))
	if err != nil {
		return "", err
	}
	return sanitize.Text(raw), nil
}
