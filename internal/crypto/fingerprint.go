package crypto

import (
	"encoding/hex"

	"kmacrypt/internal/curve"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/keccak"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes both coordinates with KMACXOF256 under the plain-hash
// customization and keeps 10 bytes (20 hex chars).
func Fingerprint(pub domain.PublicKey) domain.Fingerprint {
	buf := make([]byte, 0, 2*curve.FieldBytes)
	buf = append(buf, pub.XBytes()...)
	buf = append(buf, pub.Y().FillBytes(make([]byte, curve.FieldBytes))...)
	sum := keccak.KMACXOF256(nil, buf, 80, keccak.CustomHash)
	return domain.Fingerprint(hex.EncodeToString(sum))
}
