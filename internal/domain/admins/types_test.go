package admins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_SetAndCompare(t *testing.T) {
	var p password
	require.NoError(t, p.Set("correct horse battery staple"))

	assert.NoError(t, p.Compare("correct horse battery staple"))
	assert.Error(t, p.Compare("wrong password"))
	assert.Error(t, p.Compare(""))
}

func TestPassword_Hashed(t *testing.T) {
	var p password
	require.NoError(t, p.Set("hunter2hunter2"))

	assert.NotEqual(t, "hunter2hunter2", string(p.hash))
	assert.Contains(t, string(p.hash), "$2a$")
}

func TestPassword_DistinctHashes(t *testing.T) {
	// bcrypt salts per call; two admins with the same password must not
	// share a hash.
	var a, b password
	require.NoError(t, a.Set("same password"))
	require.NoError(t, b.Set("same password"))

	assert.NotEqual(t, a.hash, b.hash)
}
