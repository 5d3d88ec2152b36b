package signature

import (
	"kmacrypt/internal/crypto"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/logging"
	"kmacrypt/internal/protocol/schnorr"
	"kmacrypt/internal/util/memzero"
)

// Service signs and verifies messages.
type Service struct {
	keys       domain.KeyService
	keyStore   domain.KeyStore
	signatures domain.SignatureStore
}

// New returns a signature service.
func New(keys domain.KeyService, keyStore domain.KeyStore, signatures domain.SignatureStore) *Service {
	return &Service{keys: keys, keyStore: keyStore, signatures: signatures}
}

// Sign signs m with the private key for passphrase and writes the signature to out.
func (s *Service) Sign(passphrase, privatePath string, m []byte, out string) error {
	kp, err := s.keys.PrivateKey(passphrase, privatePath)
	if err != nil {
		return err
	}
	defer memzero.ZeroInt(kp.Private)

	sig := schnorr.Sign(kp.Private, m)
	if err := s.signatures.SaveSignature(out, sig); err != nil {
		return err
	}
	logging.For("signature", "Sign").WithFields(map[string]interface{}{
		"signer": crypto.Fingerprint(kp.Public),
		"out":    out,
	}).Debug("message signed")
	return nil
}

// Verify reports whether the signature at sigPath is valid for m under the
// public key at publicPath.
func (s *Service) Verify(publicPath string, m []byte, sigPath string) (bool, error) {
	pub, err := s.keyStore.LoadPublicKey(publicPath)
	if err != nil {
		return false, err
	}
	sig, err := s.signatures.LoadSignature(sigPath)
	if err != nil {
		return false, err
	}
	ok := schnorr.Verify(pub, m, sig)
	logging.For("signature", "Verify").WithField("valid", ok).Debug("signature checked")
	return ok, nil
}

// Compile-time assertion that Service implements domain.SignatureService.
var _ domain.SignatureService = (*Service)(nil)
