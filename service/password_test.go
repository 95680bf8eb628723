package service

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := "mySecretPassword123"

	hashed, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hashed)

	assert.True(t, hasher.Verify(password, hashed))
	assert.False(t, hasher.Verify("notMyPassword", hashed))
}

func TestPasswordHasher_VerifyArgon2id(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	salt := []byte("0123456789abcdef")
	key := argon2.IDKey([]byte("Secret123"), salt, 1, 8*1024, 1, 32)
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s", argon2.Version, 8*1024, 1, 1,
		base64.RawStdEncoding.EncodeToString(salt), base64.RawStdEncoding.EncodeToString(key))

	assert.True(t, hasher.Verify("Secret123", encoded))
	assert.False(t, hasher.Verify("Secret124", encoded))
	assert.False(t, hasher.Verify("Secret123", "$argon2id$v=19$broken"))
}

func TestPasswordHasher_VerifyPBKDF2(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	key := pbkdf2.Key([]byte("Secret123"), []byte("saltsalt"), 1000, 32, sha256.New)
	encoded := "pbkdf2_sha256$1000$saltsalt$" + base64.StdEncoding.EncodeToString(key)

	assert.True(t, hasher.Verify("Secret123", encoded))
	assert.False(t, hasher.Verify("secret123", encoded))
}

func TestPasswordHasher_UnknownFormat(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	assert.False(t, hasher.Verify("Secret123", "Secret123"))
	assert.False(t, hasher.Verify("", ""))
}
