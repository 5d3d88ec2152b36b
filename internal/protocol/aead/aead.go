package aead

import (
	"crypto/subtle"
	"fmt"
	"io"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/keccak"
	"kmacrypt/internal/util/memzero"
)

const (
	// NonceBits is the size of the random nonce z.
	NonceBits = 512
	// TagBits is the size of the authentication tag t.
	TagBits = 512
	// KeyBits is the size of ke || ka.
	KeyBits = 1024
)

// Encrypt encrypts m under passphrase with a nonce drawn from rand.
func Encrypt(rand io.Reader, passphrase, m []byte) (domain.Cryptogram, error) {
	z, err := crypto.RandomBits(rand, NonceBits)
	if err != nil {
		return domain.Cryptogram{}, fmt.Errorf("aead nonce: %w", err)
	}
	keka := deriveKeys(z, passphrase)
	defer memzero.Zero(keka)

	c, t := Seal(keka, m, keccak.CustomSymEnc, keccak.CustomSymAuth)
	return domain.Cryptogram{Z: z, C: c, T: t}, nil
}

// Decrypt recovers the plaintext of cg and reports whether its tag matched.
func Decrypt(passphrase []byte, cg domain.Cryptogram) domain.Decrypted {
	keka := deriveKeys(cg.Z, passphrase)
	defer memzero.Zero(keka)

	m, ok := Unseal(keka, cg.C, cg.T, keccak.CustomSymEnc, keccak.CustomSymAuth)
	return domain.Decrypted{Plaintext: m, TagValid: ok}
}

// Open is Decrypt that fails with domain.ErrTagMismatch on a bad tag.
func Open(passphrase []byte, cg domain.Cryptogram) ([]byte, error) {
	d := Decrypt(passphrase, cg)
	if !d.TagValid {
		return nil, domain.ErrTagMismatch
	}
	return d.Plaintext, nil
}

func deriveKeys(z, passphrase []byte) []byte {
	in := make([]byte, 0, len(z)+len(passphrase))
	in = append(in, z...)
	in = append(in, passphrase...)
	defer memzero.Zero(in)
	return keccak.KMACXOF256(in, nil, KeyBits, keccak.CustomSymmetric)
}

// Seal splits keka into ke (first half) and ka (second half), encrypts m with
// the ke keystream under customization enc and tags m with ka under auth.
func Seal(keka, m []byte, enc, auth string) (c, t []byte) {
	ke, ka := split(keka)
	c = xorKeystream(ke, m, enc)
	t = keccak.KMACXOF256(ka, m, TagBits, auth)
	return c, t
}

// Unseal reverses Seal. The plaintext is returned even when the tag differs.
func Unseal(keka, c, t []byte, enc, auth string) ([]byte, bool) {
	ke, ka := split(keka)
	m := xorKeystream(ke, c, enc)
	want := keccak.KMACXOF256(ka, m, TagBits, auth)
	return m, subtle.ConstantTimeCompare(want, t) == 1
}

func split(keka []byte) (ke, ka []byte) {
	half := len(keka) / 2
	return keka[:half], keka[half:]
}

func xorKeystream(key, in []byte, custom string) []byte {
	ks := keccak.KMACXOF256(key, nil, 8*len(in), custom)
	for i := range ks {
		ks[i] ^= in[i]
	}
	return ks
}
