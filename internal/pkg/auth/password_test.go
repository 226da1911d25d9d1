package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("AURORA")
	require.NoError(t, err)
	assert.NotEqual(t, "AURORA", hash)

	assert.True(t, CheckPassword(hash, "AURORA"))
	assert.False(t, CheckPassword(hash, "aurora"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "AURORA"))
}
