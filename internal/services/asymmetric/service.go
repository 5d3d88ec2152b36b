package asymmetric

import (
	"io"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/logging"
	"kmacrypt/internal/protocol/ecies"
	"kmacrypt/internal/util/memzero"
)

// Service encrypts to public keys read from a KeyStore.
type Service struct {
	keys        domain.KeyService
	keyStore    domain.KeyStore
	cryptograms domain.ECCryptogramStore
	rand        io.Reader
}

// New returns an asymmetric service. A nil rand uses crypto.Reader.
func New(
	keys domain.KeyService,
	keyStore domain.KeyStore,
	cryptograms domain.ECCryptogramStore,
	rand io.Reader,
) *Service {
	if rand == nil {
		rand = crypto.Reader
	}
	return &Service{keys: keys, keyStore: keyStore, cryptograms: cryptograms, rand: rand}
}

// Encrypt encrypts m to the public key at publicPath and writes the
// cryptogram to out.
func (s *Service) Encrypt(publicPath string, m []byte, out string) error {
	pub, err := s.keyStore.LoadPublicKey(publicPath)
	if err != nil {
		return err
	}
	cg, err := ecies.Encrypt(s.rand, pub, m)
	if err != nil {
		return err
	}
	if err := s.cryptograms.SaveECCryptogram(out, cg); err != nil {
		return err
	}
	logging.For("asymmetric", "Encrypt").WithFields(map[string]interface{}{
		"recipient": crypto.Fingerprint(pub),
		"out":       out,
	}).Debugf("encrypted %d bytes", len(m))
	return nil
}

// Decrypt decrypts the cryptogram at in with the private key for passphrase,
// loaded from privatePath when it is set. A tag mismatch is reported through
// Decrypted.TagValid.
func (s *Service) Decrypt(passphrase, privatePath, in string) (domain.Decrypted, error) {
	kp, err := s.keys.PrivateKey(passphrase, privatePath)
	if err != nil {
		return domain.Decrypted{}, err
	}
	defer memzero.ZeroInt(kp.Private)

	cg, err := s.cryptograms.LoadECCryptogram(in)
	if err != nil {
		return domain.Decrypted{}, err
	}
	d := ecies.Decrypt(kp.Private, cg)
	if !d.TagValid {
		logging.For("asymmetric", "Decrypt").WithField("in", in).Warn("authentication tag mismatch")
	}
	return d, nil
}

// Compile-time assertion that Service implements domain.AsymmetricService.
var _ domain.AsymmetricService = (*Service)(nil)
