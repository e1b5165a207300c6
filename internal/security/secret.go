package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var errNonPositiveLength = errors.New("secret length must be positive")

// RandomSecret returns an alphanumeric secret of the requested length drawn
// from crypto/rand. Each character is picked with rand.Int so the alphabet is
// sampled without modulo bias.
func RandomSecret(length int) (string, error) {
	if length <= 0 {
		return "", errNonPositiveLength
	}

	alphabetSize := big.NewInt(int64(len(secretAlphabet)))
	secret := make([]byte, length)
	for index := range secret {
		position, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		secret[index] = secretAlphabet[position.Int64()]
	}
	return string(secret), nil
}
