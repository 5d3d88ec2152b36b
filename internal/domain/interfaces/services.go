package interfaces

import (
	domaintypes "kmacrypt/internal/domain/types"
)

// DigestService computes plain hashes and passphrase tags.
type DigestService interface {
	Hash(m []byte) []byte
	Tag(passphrase string, m []byte) []byte
}

// SymmetricService encrypts messages under a passphrase.
type SymmetricService interface {
	Encrypt(passphrase string, m []byte, out string) error
	Decrypt(passphrase, in string) (domaintypes.Decrypted, error)
}

// KeyService derives and persists key pairs.
type KeyService interface {
	Generate(passphrase, publicPath, privatePath string) (domaintypes.KeyPair, domaintypes.Fingerprint, error)
	Fingerprint(publicPath string) (domaintypes.Fingerprint, error)
	// PrivateKey returns the private scalar, loaded from privatePath when it
	// is set and derived from the passphrase otherwise.
	PrivateKey(passphrase, privatePath string) (domaintypes.KeyPair, error)
}

// AsymmetricService encrypts to a public key and decrypts with the matching
// private key.
type AsymmetricService interface {
	Encrypt(publicPath string, m []byte, out string) error
	Decrypt(passphrase, privatePath, in string) (domaintypes.Decrypted, error)
}

// SignatureService signs messages and verifies signatures.
type SignatureService interface {
	Sign(passphrase, privatePath string, m []byte, out string) error
	Verify(publicPath string, m []byte, sigPath string) (bool, error)
}
