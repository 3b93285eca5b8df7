package auth

import (
	"time"

	"github.com/careerpilot/career-service/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is the fixed session length. Expiry is the only
// deactivation mechanism; there is no revocation list.
const TokenLifetime = 5 * time.Hour

// Claims carries the standard claims plus the owning user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// TokenService issues and verifies signed session tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService initializes a token service with the process-wide secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue creates a signed token for the user, expiring TokenLifetime from now.
func (s *TokenService) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature and expiry and returns the embedded user id.
// Any failure (bad signature, malformed payload, expired) collapses to
// models.ErrInvalidToken; verification is all-or-nothing.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", models.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", models.ErrInvalidToken
	}

	return claims.UserID, nil
}
