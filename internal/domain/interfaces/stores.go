package interfaces

import (
	"math/big"

	domaintypes "kmacrypt/internal/domain/types"
)

// MessageStore reads and writes raw message buffers.
type MessageStore interface {
	ReadMessage(path string) ([]byte, error)
	WriteMessage(path string, m []byte) error
}

// CryptogramStore persists symmetric cryptograms.
type CryptogramStore interface {
	SaveCryptogram(path string, c domaintypes.Cryptogram) error
	LoadCryptogram(path string) (domaintypes.Cryptogram, error)
}

// ECCryptogramStore persists asymmetric cryptograms.
type ECCryptogramStore interface {
	SaveECCryptogram(path string, c domaintypes.ECCryptogram) error
	LoadECCryptogram(path string) (domaintypes.ECCryptogram, error)
}

// KeyStore persists public keys in the clear and private keys encrypted under
// a passphrase.
type KeyStore interface {
	SavePublicKey(path string, pub domaintypes.PublicKey) error
	LoadPublicKey(path string) (domaintypes.PublicKey, error)
	SavePrivateKey(path, passphrase string, s *big.Int) error
	LoadPrivateKey(path, passphrase string) (*big.Int, error)
}

// SignatureStore persists signatures.
type SignatureStore interface {
	SaveSignature(path string, sig domaintypes.Signature) error
	LoadSignature(path string) (domaintypes.Signature, error)
}
