package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/user"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, key []byte, subject string, role string, expiresAt int64) string {
	t.Helper()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{Subject: subject, ExpiresAt: expiresAt},
		Role:           role,
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

// capture records the principal the middleware chain delivered.
func capture(got *Principal, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if p, ok := PrincipalFrom(r.Context()); ok {
			*got = p
		}
	})
}

func TestProtect_LoadsPrincipalFromToken(t *testing.T) {
	accountID := uuid.New()
	token := signToken(t, testKey, accountID.String(), string(user.RoleMerchant), time.Now().Add(time.Hour).Unix())

	var got Principal
	var called bool
	h := Protect(testKey)(capture(&got, &called))

	req := httptest.NewRequest(http.MethodGet, "/vendor/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
	require.Equal(t, accountID, got.AccountID)
	require.Equal(t, user.RoleMerchant, got.Role)
}

func TestProtect_Rejections(t *testing.T) {
	accountID := uuid.New()
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + signToken(t, testKey, accountID.String(), string(user.RoleCustomer), time.Now().Add(-time.Hour).Unix())},
		{"wrong signing key", "Bearer " + signToken(t, []byte("other-key"), accountID.String(), string(user.RoleCustomer), future)},
		{"non uuid subject", "Bearer " + signToken(t, testKey, "bob", string(user.RoleCustomer), future)},
		{"unknown role", "Bearer " + signToken(t, testKey, accountID.String(), "superuser", future)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Principal
			var called bool
			h := Protect(testKey)(capture(&got, &called))

			req := httptest.NewRequest(http.MethodGet, "/vendor/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.False(t, called)
		})
	}
}

func TestRequireRole(t *testing.T) {
	var got Principal
	var called bool
	h := RequireRole(user.RoleAdmin)(capture(&got, &called))

	// Merchant principal is rejected.
	req := httptest.NewRequest(http.MethodDelete, "/vendor/admin/123", nil)
	req = req.WithContext(WithPrincipal(req.Context(), Principal{AccountID: uuid.New(), Role: user.RoleMerchant}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, called)

	// Admin passes through.
	req = httptest.NewRequest(http.MethodDelete, "/vendor/admin/123", nil)
	req = req.WithContext(WithPrincipal(req.Context(), Principal{AccountID: uuid.New(), Role: user.RoleAdmin}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	var got Principal
	var called bool
	h := RequireRole(user.RoleAdmin)(capture(&got, &called))

	req := httptest.NewRequest(http.MethodGet, "/vendor/admin", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}
