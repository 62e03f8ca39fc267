package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 600000
	saltChars        = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	saltLen          = 16
	keyLen           = 32
)

// HashPassword returns "pbkdf2:sha256:<iterations>$<salt>$<hex digest>",
// the same layout werkzeug writes, so existing hashes keep verifying.
func HashPassword(password string) (string, error) {
	return HashPasswordIterations(password, pbkdf2Iterations)
}

// HashPasswordIterations is HashPassword with an explicit work factor.
func HashPasswordIterations(password string, iterations int) (string, error) {
	salt, err := randomSalt()
	if err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}
	dk := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, salt, hex.EncodeToString(dk)), nil
}

// CheckPassword reports whether password matches the stored hash.
// Malformed hashes never match.
func CheckPassword(hash, password string) bool {
	iterations, salt, want, err := parseHash(hash)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func parseHash(hash string) (int, string, []byte, error) {
	parts := strings.SplitN(hash, "$", 3)
	if len(parts) != 3 {
		return 0, "", nil, errors.New("bad hash layout")
	}
	method := strings.Split(parts[0], ":")
	if len(method) != 3 || method[0] != "pbkdf2" || method[1] != "sha256" {
		return 0, "", nil, errors.New("unsupported hash method")
	}
	iterations, err := strconv.Atoi(method[2])
	if err != nil || iterations <= 0 {
		return 0, "", nil, errors.New("bad iteration count")
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return 0, "", nil, errors.New("bad digest")
	}
	return iterations, parts[1], want, nil
}

func randomSalt() (string, error) {
	b := make([]byte, saltLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = saltChars[int(b[i])%len(saltChars)]
	}
	return string(b), nil
}
