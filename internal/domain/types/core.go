package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Decrypted is the outcome of a decryption: the recovered plaintext and
// whether the authentication tag matched. The plaintext is produced either way.
type Decrypted struct {
	Plaintext []byte
	TagValid  bool
}
