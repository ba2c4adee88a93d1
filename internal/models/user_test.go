package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSON(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	user := User{ID: 1, Username: "ada", Email: "ada@example.com", Password: "hash", CreatedAt: created}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.NotContains(t, out, "password")
	assert.Equal(t, "2024-03-01T12:00:00Z", out["createdAt"])
	assert.Contains(t, out, "updatedAt")
}
