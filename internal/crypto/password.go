// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptVerifier is the private implementation of [PasswordVerifier].
type bcryptVerifier struct {
	cost int
}

// NewPasswordVerifier constructs a [PasswordVerifier] hashing with
// bcrypt.DefaultCost.
func NewPasswordVerifier() PasswordVerifier {
	return &bcryptVerifier{cost: bcrypt.DefaultCost}
}

func (v *bcryptVerifier) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (v *bcryptVerifier) Verify(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
}
