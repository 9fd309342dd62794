package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestLongPasswordTruncation(t *testing.T) {
	// bcrypt 仅处理前 72 字节，超出部分不参与校验
	long := strings.Repeat("x", 100)
	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash(long, hash))
	assert.True(t, CheckPasswordHash(strings.Repeat("x", 72), hash))
	assert.False(t, CheckPasswordHash(strings.Repeat("x", 71), hash))
}

func TestCheckPasswordHashInvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("whatever", "not-a-bcrypt-hash"))
}
