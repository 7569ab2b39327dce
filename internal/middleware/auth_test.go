package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dropkit/dropkit/internal/ctxkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVerifier struct {
	verifyFn func(token string) (string, error)
}

func (m *mockVerifier) Verify(token string) (string, error) {
	return m.verifyFn(token)
}

func TestRequireBearer_MissingHeader(t *testing.T) {
	called := false
	mw := RequireBearer(&mockVerifier{verifyFn: func(string) (string, error) { return "", nil }})
	h := mw(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/files/f1", nil)
	rec := httptest.NewRecorder()

	h(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied")
	assert.False(t, called)
}

func TestRequireBearer_NotBearerScheme(t *testing.T) {
	mw := RequireBearer(&mockVerifier{verifyFn: func(string) (string, error) { return "", nil }})
	h := mw(func(http.ResponseWriter, *http.Request) { t.Fatal("handler must not run") })

	req := httptest.NewRequest(http.MethodGet, "/files/f1", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	h(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireBearer_InvalidToken(t *testing.T) {
	mw := RequireBearer(&mockVerifier{
		verifyFn: func(string) (string, error) { return "", errors.New("bad signature") },
	})
	h := mw(func(http.ResponseWriter, *http.Request) { t.Fatal("handler must not run") })

	req := httptest.NewRequest(http.MethodGet, "/files/f1", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()

	h(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestRequireBearer_ValidTokenSetsCaller(t *testing.T) {
	var gotToken, gotCaller string
	mw := RequireBearer(&mockVerifier{
		verifyFn: func(token string) (string, error) {
			gotToken = token
			return "user-1", nil
		},
	})
	h := mw(func(w http.ResponseWriter, r *http.Request) {
		gotCaller = ctxkeys.CallerID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/files/f1", nil)
	req.Header.Set("Authorization", "Bearer signed.jwt.token")
	rec := httptest.NewRecorder()

	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "signed.jwt.token", gotToken)
	assert.Equal(t, "user-1", gotCaller)
}
