package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teepha/More-Recipes/internal/models"
)

func TestSignup(t *testing.T) {
	e := newTestEnv(t)

	t.Run("creates account without exposing the password", func(t *testing.T) {
		status, env := e.do(t, http.MethodPost, "/api/v1/users/signup", map[string]string{
			"fullName": "Ada Lovelace",
			"username": "AdaL",
			"email":    "ada@example.com",
			"password": "engine1843",
		}, "")
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Successfully created account", env.Message)
		assert.NotContains(t, string(env.Data), "password")
		assert.NotContains(t, string(env.Data), "engine1843")

		var out authResult
		data(t, env, &out)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, "AdaL", out.User.Username)
	})

	tests := []struct {
		name    string
		body    map[string]string
		status  int
		message string
		errors  map[string]string
	}{
		{
			name:    "duplicate username and email ignoring case",
			body:    map[string]string{"fullName": "Ada", "username": "adal", "email": "ADA@example.com", "password": "engine1843"},
			status:  http.StatusConflict,
			message: "Username or email already exist",
			errors: map[string]string{
				"username": "Username already exist",
				"email":    "Email already exist",
			},
		},
		{
			name:    "missing fields",
			body:    map[string]string{"username": "bob"},
			status:  http.StatusUnprocessableEntity,
			message: "All or some fields are not defined",
		},
		{
			name:    "blank and malformed fields",
			body:    map[string]string{"fullName": " ", "username": "bob", "email": "not-an-email", "password": "short"},
			status:  http.StatusBadRequest,
			message: "Validation failed",
			errors: map[string]string{
				"fullName": "Full name is required",
				"email":    "Email is invalid",
				"password": "Password must be at least 8 characters long",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := e.do(t, http.MethodPost, "/api/v1/users/signup", tt.body, "")
			assert.Equal(t, tt.status, status)
			assert.Equal(t, models.StatusFailed, env.Status)
			assert.Equal(t, tt.message, env.Message)
			if tt.errors != nil {
				assert.Equal(t, tt.errors, env.Errors)
			}
		})
	}
}

func TestSignin(t *testing.T) {
	e := newTestEnv(t)
	e.signup(t, "chef_ada")

	status, env := e.do(t, http.MethodPost, "/api/v1/users/signin",
		map[string]string{"username": "CHEF_ADA", "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "You are now logged In", env.Message)
	var out authResult
	data(t, env, &out)
	assert.NotEmpty(t, out.Token)

	for _, creds := range []map[string]string{
		{"username": "chef_ada", "password": "wrong-pass1"},
		{"username": "nobody", "password": "secret123"},
	} {
		status, env := e.do(t, http.MethodPost, "/api/v1/users/signin", creds, "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid username or password", env.Message)
		assert.Equal(t, map[string]string{"form": "Invalid username or password"}, env.Errors)
	}

	status, env = e.do(t, http.MethodPost, "/api/v1/users/signin", map[string]string{"username": "x"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Username or password is not defined", env.Message)
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthRequired(t *testing.T) {
	e := newTestEnv(t)
	_, userID := e.signup(t, "guarded")

	valid := func(overrides jwt.MapClaims) jwt.MapClaims {
		claims := jwt.MapClaims{
			"sub": strconv.FormatUint(uint64(userID), 10),
			"iss": tokenIssuer,
			"aud": tokenAudience,
			"exp": time.Now().Add(time.Hour).Unix(),
			"jti": "test-jti",
		}
		for k, v := range overrides {
			claims[k] = v
		}
		return claims
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + signedToken(t, "another-secret-of-enough-length-xx", valid(nil))},
		{"wrong audience", "Bearer " + signedToken(t, testJWTSecret, valid(jwt.MapClaims{"aud": "someone-else"}))},
		{"wrong issuer", "Bearer " + signedToken(t, testJWTSecret, valid(jwt.MapClaims{"iss": "someone-else"}))},
		{"expired", "Bearer " + signedToken(t, testJWTSecret, valid(jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}))},
		{"non numeric subject", "Bearer " + signedToken(t, testJWTSecret, valid(jwt.MapClaims{"sub": "abc"}))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := e.app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthRequired_AcceptsHandCraftedToken(t *testing.T) {
	e := newTestEnv(t)
	_, userID := e.signup(t, "crafted")

	token := signedToken(t, testJWTSecret, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	status, env := e.do(t, http.MethodGet, "/api/v1/users/me", nil, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User found", env.Message)
}

func TestSignout_RevokesToken(t *testing.T) {
	e := newTestEnv(t)
	token, _ := e.signup(t, "leaver")

	status, _ := e.do(t, http.MethodGet, "/api/v1/users/me", nil, token)
	require.Equal(t, http.StatusOK, status)

	status, env := e.do(t, http.MethodPost, "/api/v1/users/signout", nil, token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "You are now logged out", env.Message)

	keys := e.redis.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "blacklist:"))
	assert.Greater(t, e.redis.TTL(keys[0]), time.Duration(0))

	status, env = e.do(t, http.MethodGet, "/api/v1/users/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token has been revoked", env.Message)
}
