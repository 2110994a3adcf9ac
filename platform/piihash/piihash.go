// Package piihash produces pseudonymous identifiers for PII fields.
// This is part of the platform layer and contains no business logic.
package piihash

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestLength is the number of hex characters kept from the full digest.
// The truncation is accepted: these identifiers are for audit trails and
// log correlation, not for deduplication guarantees.
const DigestLength = 16

// Hash maps an arbitrary string to a stable, non-reversible 16-hex-character
// identifier. Hashing is deterministic: the same input always yields the
// same digest.
func Hash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])[:DigestLength]
}
