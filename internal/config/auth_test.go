package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthDisabledWithoutSecret(t *testing.T) {
	assert.False(t, Auth{}.Enabled())
	assert.True(t, Auth{Secret: "hunter2"}.Enabled())
}

func TestAuthSignVerify(t *testing.T) {
	auth := Auth{Secret: "hunter2", TokenLifetime: time.Hour}

	token, err := auth.Sign("ci")
	require.NoError(t, err)
	assert.NoError(t, auth.Verify(token))
}

func TestAuthRejectsForeignToken(t *testing.T) {
	auth := Auth{Secret: "hunter2", TokenLifetime: time.Hour}
	other := Auth{Secret: "swordfish", TokenLifetime: time.Hour}

	token, err := other.Sign("ci")
	require.NoError(t, err)
	assert.Error(t, auth.Verify(token))
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	auth := Auth{Secret: "hunter2", TokenLifetime: -time.Minute}

	token, err := auth.Sign("ci")
	require.NoError(t, err)
	assert.Error(t, auth.Verify(token))
}
