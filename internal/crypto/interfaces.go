// Package crypto holds the secrets handling of the development backend:
// admin password verification and activation key generation.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordVerifier checks admin passwords against a stored hash.
//
// Hashes are bcrypt strings such as the one produced by Hash and kept in
// APP_ADMIN_PASSWORD_HASH.
type PasswordVerifier interface {
	// Hash returns the bcrypt hash of password.
	Hash(password string) (string, error)

	// Verify returns nil when password matches hash, and ErrPasswordMismatch
	// otherwise. A malformed hash is reported as ErrInvalidHash.
	Verify(hash, password string) error
}

// ActivationKeyGenerator issues software activation keys for approved
// requests.
type ActivationKeyGenerator interface {
	// Generate returns a new key in the XXXX-XXXX-XXXX-XXXX form.
	Generate() (string, error)
}
