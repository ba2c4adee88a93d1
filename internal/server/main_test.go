package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/teepha/More-Recipes/internal/config"
	"github.com/teepha/More-Recipes/internal/testutil"
)

const testJWTSecret = "test-secret-key-that-is-long-enough-32"

type testEnv struct {
	srv   *Server
	app   *fiber.App
	db    *gorm.DB
	redis *miniredis.Miniredis
}

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Data    json.RawMessage   `json:"data"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{
		Port:           "0",
		Env:            "test",
		JWTSecret:      testJWTSecret,
		JWTTTLHours:    1,
		AllowedOrigins: "http://localhost:3000",
	}
	db := testutil.NewTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	srv, err := NewServerWithDeps(cfg, db, rdb)
	require.NoError(t, err)
	return &testEnv{srv: srv, app: srv.App(), db: db, redis: mr}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

// data decodes the envelope's data into dst.
func data(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

type authResult struct {
	Token string `json:"token"`
	User  struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

// signup registers username and returns its token and id.
func (e *testEnv) signup(t *testing.T, username string) (string, uint) {
	t.Helper()
	status, env := e.do(t, http.MethodPost, "/api/v1/users/signup", map[string]string{
		"fullName": "Test User",
		"username": username,
		"email":    fmt.Sprintf("%s@example.com", username),
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, status, env.Message)
	var out authResult
	data(t, env, &out)
	return out.Token, out.User.ID
}

func validRecipe(title string) map[string]string {
	return map[string]string{
		"title":       title,
		"ingredients": "Rice, tomatoes, pepper, onions and stock",
		"procedures":  "Boil the rice, fry the stew, mix and simmer",
	}
}

type recipeJSON struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	UserID    uint   `json:"userId"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	Reviews   []struct {
		ReviewSubject string `json:"reviewSubject"`
		Username      string `json:"username"`
		ProfileImage  string `json:"profileImage"`
	} `json:"reviews"`
}

// addRecipe creates a recipe as token and returns its id.
func (e *testEnv) addRecipe(t *testing.T, token, title string) uint {
	t.Helper()
	status, env := e.do(t, http.MethodPost, "/api/v1/recipes", validRecipe(title), token)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var out struct {
		Recipes []recipeJSON `json:"recipes"`
	}
	data(t, env, &out)
	require.NotEmpty(t, out.Recipes)
	return out.Recipes[len(out.Recipes)-1].ID
}
