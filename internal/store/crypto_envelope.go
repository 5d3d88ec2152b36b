package store

import (
	"errors"
	"fmt"
	"math/big"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/protocol/aead"
	"kmacrypt/internal/util/memzero"
)

// Returned when the passphrase is incorrect or the private key file has been modified.
var errWrongPassphrase = errors.New("wrong passphrase or corrupted private key")

// SavePrivateKey encrypts s under passphrase as a symmetric cryptogram.
func (s *FileStore) SavePrivateKey(path, passphrase string, scalar *big.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := crypto.ScalarBytes(scalar)
	defer memzero.Zero(raw)

	cg, err := aead.Encrypt(s.rand, []byte(passphrase), raw)
	if err != nil {
		return err
	}
	return saveCryptogram(s.path(path), cg, privateMode)
}

// LoadPrivateKey decrypts a private key written by SavePrivateKey.
func (s *FileStore) LoadPrivateKey(path, passphrase string) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cg, err := loadCryptogram(s.path(path))
	if err != nil {
		return nil, err
	}
	raw, err := aead.Open([]byte(passphrase), cg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errWrongPassphrase, err)
	}
	defer memzero.Zero(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty private key", domain.ErrMalformedRecord)
	}
	return new(big.Int).SetBytes(raw), nil
}
