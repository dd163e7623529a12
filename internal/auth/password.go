package auth

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

var errUnknownHash = errors.New("unknown password hash format")

// HashPassword returns a bcrypt hash.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// isLegacyHash reports whether hash uses the werkzeug
// "pbkdf2:<digest>:<iterations>$<salt>$<hex>" layout.
func isLegacyHash(hash string) bool {
	return strings.HasPrefix(hash, "pbkdf2:")
}

// verifyPassword compares in constant time against either hash family.
func verifyPassword(hash, password string) (bool, error) {
	if isLegacyHash(hash) {
		return verifyPBKDF2(hash, password)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func verifyPBKDF2(encoded, password string) (bool, error) {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 {
		return false, errUnknownHash
	}
	method, salt, want := parts[0], parts[1], parts[2]

	// pbkdf2:sha256:600000
	fields := strings.Split(method, ":")
	if len(fields) != 3 {
		return false, errUnknownHash
	}
	iterations, err := strconv.Atoi(fields[2])
	if err != nil || iterations <= 0 {
		return false, errUnknownHash
	}

	var newHash func() hash.Hash
	switch fields[1] {
	case "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	default:
		return false, errUnknownHash
	}

	wantBytes, err := hex.DecodeString(want)
	if err != nil {
		return false, errUnknownHash
	}

	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, newHash().Size(), newHash)
	return subtle.ConstantTimeCompare(got, wantBytes) == 1, nil
}
