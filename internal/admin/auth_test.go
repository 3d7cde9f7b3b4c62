package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedHandler() http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Auth(testSecret)(next)
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func request(h http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthValidToken(t *testing.T) {
	h := protectedHandler()
	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "staff-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec := request(h, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMissingHeader(t *testing.T) {
	rec := request(protectedHandler(), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	rec := request(protectedHandler(), "Token abc")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec := request(protectedHandler(), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	rec := request(protectedHandler(), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsNonHMAC(t *testing.T) {
	// alg=none style tokens must never pass.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	rec := request(protectedHandler(), "Bearer "+signed)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
