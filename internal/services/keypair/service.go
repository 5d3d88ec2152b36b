package keypair

import (
	"unicode"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/logging"
)

const (
	// minPassphraseLength is the length below which a passphrase is reported as weak.
	minPassphraseLength = 12
)

// Service derives, saves and loads key pairs.
type Service struct {
	store domain.KeyStore
}

// New returns a key pair service backed by the given store.
func New(s domain.KeyStore) *Service { return &Service{store: s} }

// Generate derives the key pair for passphrase, writes the public key to
// publicPath and, when privatePath is set, the encrypted private key.
func (s *Service) Generate(
	passphrase, publicPath, privatePath string,
) (domain.KeyPair, domain.Fingerprint, error) {
	log := logging.For("keypair", "Generate")
	if passphrase == "" {
		return domain.KeyPair{}, "", domain.ErrPassphraseRequired
	}
	if !isSecurePassphrase(passphrase) {
		// Key pairs are a pure function of the passphrase, so a weak one is
		// allowed but anyone who guesses it recovers the private key.
		log.Warnf("weak passphrase: use at least %d characters with upper, lower, number and symbol",
			minPassphraseLength)
	}

	kp := crypto.DeriveKeyPair([]byte(passphrase))
	if err := s.store.SavePublicKey(publicPath, kp.Public); err != nil {
		return domain.KeyPair{}, "", err
	}
	if privatePath != "" {
		if err := s.store.SavePrivateKey(privatePath, passphrase, kp.Private); err != nil {
			return domain.KeyPair{}, "", err
		}
	}

	fp := crypto.Fingerprint(kp.Public)
	log.WithField("fingerprint", fp).Info("key pair written")
	return kp, fp, nil
}

// Fingerprint returns the fingerprint of the public key stored at publicPath.
func (s *Service) Fingerprint(publicPath string) (domain.Fingerprint, error) {
	pub, err := s.store.LoadPublicKey(publicPath)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(pub), nil
}

// PrivateKey loads the private key from privatePath, or derives it from the
// passphrase when privatePath is empty.
func (s *Service) PrivateKey(passphrase, privatePath string) (domain.KeyPair, error) {
	if passphrase == "" {
		return domain.KeyPair{}, domain.ErrPassphraseRequired
	}
	if privatePath == "" {
		return crypto.DeriveKeyPair([]byte(passphrase)), nil
	}
	scalar, err := s.store.LoadPrivateKey(privatePath, passphrase)
	if err != nil {
		return domain.KeyPair{}, err
	}
	logging.For("keypair", "PrivateKey").WithField("path", privatePath).Debug("private key loaded")
	return crypto.KeyPairFromPrivate(scalar), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
