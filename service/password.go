package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"wedding-api/logger"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// PasswordHasher hashes new passwords with bcrypt and verifies bcrypt,
// argon2id (PHC) and pbkdf2_sha256 hashes.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether password matches encoded. Unknown or corrupt
// encodings never match.
func (h *PasswordHasher) Verify(password, encoded string) bool {
	switch {
	case strings.HasPrefix(encoded, "$2a$"), strings.HasPrefix(encoded, "$2b$"), strings.HasPrefix(encoded, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
	case strings.HasPrefix(encoded, "$argon2id$"):
		ok, err := verifyArgon2id(password, encoded)
		if err != nil {
			logger.Log.WithError(err).Warn("Stored argon2id hash could not be parsed")
		}
		return ok
	case strings.HasPrefix(encoded, "pbkdf2_sha256$"):
		ok, err := verifyPBKDF2(password, encoded)
		if err != nil {
			logger.Log.WithError(err).Warn("Stored pbkdf2 hash could not be parsed")
		}
		return ok
	default:
		return false
	}
}

// verifyArgon2id checks a "$argon2id$v=19$m=65536,t=3,p=2$salt$hash" string.
func verifyArgon2id(password, encoded string) (bool, error) {
	vals := strings.Split(encoded, "$")
	if len(vals) != 6 {
		return false, fmt.Errorf("hash has wrong parts")
	}

	var version int
	if _, err := fmt.Sscanf(vals[2], "v=%d", &version); err != nil {
		return false, err
	}
	if version != argon2.Version {
		return false, fmt.Errorf("incompatible argon2 version %d", version)
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(vals[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(vals[4])
	if err != nil {
		return false, err
	}
	hash, err := base64.RawStdEncoding.DecodeString(vals[5])
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, other) == 1, nil
}

// verifyPBKDF2 checks a "pbkdf2_sha256$iterations$salt$base64hash" string.
func verifyPBKDF2(password, encoded string) (bool, error) {
	vals := strings.SplitN(encoded, "$", 4)
	if len(vals) != 4 {
		return false, fmt.Errorf("hash has wrong parts")
	}
	iterations, err := strconv.Atoi(vals[1])
	if err != nil || iterations <= 0 {
		return false, fmt.Errorf("invalid iteration count %q", vals[1])
	}
	hash, err := base64.StdEncoding.DecodeString(vals[3])
	if err != nil {
		return false, err
	}

	other := pbkdf2.Key([]byte(password), []byte(vals[2]), iterations, len(hash), sha256.New)
	return subtle.ConstantTimeCompare(hash, other) == 1, nil
}
