package crypto

import "errors"

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrInvalidHash      = errors.New("invalid password hash")
	ErrEmptyPassword    = errors.New("password is empty")
)
