package crypto

import (
	"crypto/rand"
	"io"
	"strings"
)

// keyAlphabet leaves out 0, 1, I and O, which are easy to misread.
const keyAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const (
	keyGroups    = 4
	keyGroupSize = 4
)

type activationKeys struct {
	random io.Reader
}

// NewActivationKeys constructs an [ActivationKeyGenerator] reading from the
// OS CSPRNG.
func NewActivationKeys() ActivationKeyGenerator {
	return &activationKeys{random: rand.Reader}
}

func (k *activationKeys) Generate() (string, error) {
	buf := make([]byte, keyGroups*keyGroupSize)
	if _, err := io.ReadFull(k.random, buf); err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, b := range buf {
		if i > 0 && i%keyGroupSize == 0 {
			sb.WriteByte('-')
		}
		// len(keyAlphabet) divides 256, so the modulo is unbiased.
		sb.WriteByte(keyAlphabet[int(b)%len(keyAlphabet)])
	}
	return sb.String(), nil
}
