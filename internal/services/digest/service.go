package digest

import (
	"kmacrypt/internal/domain"
	"kmacrypt/internal/keccak"
)

// OutputBits is the length of hashes and tags.
const OutputBits = 512

// Service hashes and tags messages.
type Service struct{}

// New returns a digest service.
func New() *Service { return &Service{} }

// Hash returns KMACXOF256("", m, 512, "D").
func (s *Service) Hash(m []byte) []byte {
	return keccak.KMACXOF256(nil, m, OutputBits, keccak.CustomHash)
}

// Tag returns KMACXOF256(passphrase, m, 512, "T").
func (s *Service) Tag(passphrase string, m []byte) []byte {
	return keccak.KMACXOF256([]byte(passphrase), m, OutputBits, keccak.CustomTag)
}

// Compile-time assertion that Service implements domain.DigestService.
var _ domain.DigestService = (*Service)(nil)
