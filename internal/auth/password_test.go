package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

// werkzeugHash builds a hash the way werkzeug's generate_password_hash does.
func werkzeugHash(password, salt string, iterations int) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, sha256.Size, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, salt, hex.EncodeToString(key))
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	ok, err := verifyPassword(hash, "admin123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyPassword(hash, "admin124")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordPBKDF2(t *testing.T) {
	hash := werkzeugHash("admin123", "Xy7salt", 1000)
	assert.True(t, isLegacyHash(hash))

	ok, err := verifyPassword(hash, "admin123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformed(t *testing.T) {
	for _, hash := range []string{
		"pbkdf2:sha256$salt$abcd",
		"pbkdf2:md5:1000$salt$abcd",
		"pbkdf2:sha256:x$salt$abcd",
		"pbkdf2:sha256:1000$salt$zz",
		"pbkdf2:sha256:1000",
	} {
		t.Run(hash, func(t *testing.T) {
			ok, err := verifyPassword(hash, "anything")
			assert.False(t, ok)
			assert.ErrorIs(t, err, errUnknownHash)
		})
	}
}
