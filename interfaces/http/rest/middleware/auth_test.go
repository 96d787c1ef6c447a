package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"muzac-backend/application/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubVerifier struct {
	user ports.User
	err  error
}

func (s stubVerifier) VerifyAccessToken(ctx context.Context, token string) (ports.User, error) {
	return s.user, s.err
}

func userEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := UserFrom(r.Context()); ok {
			w.Write([]byte(user.Email))
			return
		}
		w.Write([]byte("anonymous"))
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{name: "valid", header: "Bearer abc123", token: "abc123", ok: true},
		{name: "lowercase scheme", header: "bearer abc123", token: "abc123", ok: true},
		{name: "missing header", header: "", ok: false},
		{name: "wrong scheme", header: "Basic abc123", ok: false},
		{name: "no token", header: "Bearer", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, ok := BearerToken(req)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestRequireAuth_MissingToken(t *testing.T) {
	handler := RequireAuth(stubVerifier{}, zap.NewNop())(userEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	verifier := stubVerifier{err: ports.ErrInvalidToken}
	handler := RequireAuth(verifier, zap.NewNop())(userEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	verifier := stubVerifier{user: ports.User{Email: "kid@muzac.com.tr", Sub: "sub-1"}}
	handler := RequireAuth(verifier, zap.NewNop())(userEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "kid@muzac.com.tr", rec.Body.String())
}

func TestOptionalAuth_NoTokenPassesAnonymously(t *testing.T) {
	handler := OptionalAuth(stubVerifier{}, zap.NewNop())(userEcho(t))

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestOptionalAuth_InvalidTokenPassesAnonymously(t *testing.T) {
	verifier := stubVerifier{err: ports.ErrInvalidToken}
	handler := OptionalAuth(verifier, zap.NewNop())(userEcho(t))

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestOptionalAuth_ValidTokenSetsUser(t *testing.T) {
	verifier := stubVerifier{user: ports.User{Email: "kid@muzac.com.tr"}}
	handler := OptionalAuth(verifier, zap.NewNop())(userEcho(t))

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "kid@muzac.com.tr", rec.Body.String())
}
