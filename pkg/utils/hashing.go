package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// dummyHash is compared against when the account does not exist so that
// unknown-email and wrong-password logins take the same time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("fitlead-dummy-password"), bcryptCost)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// BurnPasswordCheck runs a bcrypt comparison whose result is discarded.
func BurnPasswordCheck(plainPassword string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plainPassword))
}

func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
