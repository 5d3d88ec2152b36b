package symmetric

import (
	"io"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/logging"
	"kmacrypt/internal/protocol/aead"
)

// Service encrypts and decrypts with the passphrase-keyed KMAC scheme.
type Service struct {
	store domain.CryptogramStore
	rand  io.Reader
}

// New returns a symmetric service. A nil rand uses crypto.Reader.
func New(s domain.CryptogramStore, rand io.Reader) *Service {
	if rand == nil {
		rand = crypto.Reader
	}
	return &Service{store: s, rand: rand}
}

// Encrypt encrypts m under passphrase and writes the cryptogram to out. Any
// passphrase is accepted, including the empty one.
func (s *Service) Encrypt(passphrase string, m []byte, out string) error {
	cg, err := aead.Encrypt(s.rand, []byte(passphrase), m)
	if err != nil {
		return err
	}
	if err := s.store.SaveCryptogram(out, cg); err != nil {
		return err
	}
	logging.For("symmetric", "Encrypt").WithField("out", out).Debugf("encrypted %d bytes", len(m))
	return nil
}

// Decrypt reads the cryptogram at in and decrypts it. A tag mismatch is
// reported through Decrypted.TagValid, not as an error.
func (s *Service) Decrypt(passphrase, in string) (domain.Decrypted, error) {
	cg, err := s.store.LoadCryptogram(in)
	if err != nil {
		return domain.Decrypted{}, err
	}
	d := aead.Decrypt([]byte(passphrase), cg)
	if !d.TagValid {
		logging.For("symmetric", "Decrypt").WithField("in", in).Warn("authentication tag mismatch")
	}
	return d, nil
}

// Compile-time assertion that Service implements domain.SymmetricService.
var _ domain.SymmetricService = (*Service)(nil)
