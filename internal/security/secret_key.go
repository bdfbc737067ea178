package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	MinSecretKeyLength       = 32
	GeneratedSecretKeyLength = 48
	secretKeyAlphabet        = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var (
	ErrSecretKeyMissing     = errors.New("SECRET_KEY is required")
	ErrSecretKeyPlaceholder = errors.New("SECRET_KEY uses a placeholder value")
	ErrSecretKeyTooShort    = errors.New("SECRET_KEY must be at least 32 characters")
)

var placeholderSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"secret":                                     {},
}

// ValidateSecretKey returns the trimmed key or an error when it cannot sign picker state.
func ValidateSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", ErrSecretKeyMissing
	}
	if _, ok := placeholderSecretKeys[strings.ToLower(secret)]; ok {
		return "", ErrSecretKeyPlaceholder
	}
	if len(secret) < MinSecretKeyLength {
		return "", ErrSecretKeyTooShort
	}
	return secret, nil
}

func GenerateSecretKey() (string, error) {
	return randomString(GeneratedSecretKeyLength, secretKeyAlphabet)
}

func randomString(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", nil
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}
