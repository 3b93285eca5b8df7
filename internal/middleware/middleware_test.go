package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerpilot/career-service/internal/auth"
	"github.com/careerpilot/career-service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	users map[string]*models.User
}

func (s *stubResolver) FindUserByID(id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func gated(tokens *auth.TokenService, users UserResolver, handlerRan *bool, gotUser **models.User) http.Handler {
	mw := AuthMiddleware(tokens, users, quietLogger())
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*handlerRan = true
		if u, ok := UserFromContext(r.Context()); ok {
			*gotUser = u
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	tokens := auth.NewTokenService("s")
	var handlerRan bool
	var gotUser *models.User
	h := gated(tokens, &stubResolver{}, &handlerRan, &gotUser)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerRan, "handler must not run without a token")
	assert.Contains(t, rec.Body.String(), "authorization denied")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("s")
	var handlerRan bool
	var gotUser *models.User
	h := gated(tokens, &stubResolver{}, &handlerRan, &gotUser)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set(TokenHeader, "garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerRan)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	var handlerRan bool
	var gotUser *models.User
	h := gated(auth.NewTokenService("right"), &stubResolver{}, &handlerRan, &gotUser)

	tok, err := auth.NewTokenService("wrong").Issue("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set(TokenHeader, tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerRan)
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	tokens := auth.NewTokenService("s")
	var handlerRan bool
	var gotUser *models.User
	h := gated(tokens, &stubResolver{}, &handlerRan, &gotUser)

	tok, err := tokens.Issue("no-longer-there")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set(TokenHeader, tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerRan, "gate fails closed when the user is gone")
}

func TestAuthMiddleware_AttachesUserWithoutHash(t *testing.T) {
	tokens := auth.NewTokenService("s")
	resolver := &stubResolver{users: map[string]*models.User{
		"u1": {ID: "u1", Name: "A", Email: "a@x.com", PasswordHash: "hashed"},
	}}
	var handlerRan bool
	var gotUser *models.User
	h := gated(tokens, resolver, &handlerRan, &gotUser)

	tok, err := tokens.Issue("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set(TokenHeader, tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, handlerRan)
	require.NotNil(t, gotUser)
	assert.Equal(t, "u1", gotUser.ID)
	assert.Empty(t, gotUser.PasswordHash)
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the next handler")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/career-chat", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), TokenHeader)
}
