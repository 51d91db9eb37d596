package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordIsDeterministicHexDigest(t *testing.T) {
	// The stored-hash format is a plain hex SHA-256 digest; it must stay
	// stable across runs or every stored credential breaks.
	assert.Equal(t,
		"713bfda78870bf9d1b261f565286f85e97ee614efe5f0faf7c34e7ca4f65baca",
		HashPassword("adminpass"))
	assert.Equal(t, HashPassword("x"), HashPassword("x"))
	assert.NotEqual(t, HashPassword("x"), HashPassword("y"))
}

func TestCheckPassword(t *testing.T) {
	digest := HashPassword("secret")
	assert.True(t, CheckPassword(digest, "secret"))
	assert.False(t, CheckPassword(digest, "Secret"))
	assert.False(t, CheckPassword(digest, ""))
}
