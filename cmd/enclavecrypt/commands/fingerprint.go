package commands

import (
	"encoding/hex"

	"enclavecrypt/internal/domain"
)

// fingerprintLen is the number of digest bytes shown (20 hex chars).
const fingerprintLen = 10

// fingerprint returns a short hex fingerprint of pub, computed with the
// engine's SHA-256.
func fingerprint(h domain.HashService, pub domain.PublicKey) (string, error) {
	d, err := h.Compute(pub.Slice())
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(d[:fingerprintLen]), nil
}
