package store

import (
	"kmacrypt/internal/domain"
)

// SaveSignature writes h and z on two lines.
func (s *FileStore) SaveSignature(path string, sig domain.Signature) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeLines(s.path(path), publicMode, encodeInt(sig.H), encodeInt(sig.Z))
}

// LoadSignature reads a signature written by SaveSignature.
func (s *FileStore) LoadSignature(path string) (domain.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := readLines(s.path(path), 2)
	if err != nil {
		return domain.Signature{}, err
	}
	h, err := decodeInt("h", lines[0])
	if err != nil {
		return domain.Signature{}, err
	}
	z, err := decodeInt("z", lines[1])
	if err != nil {
		return domain.Signature{}, err
	}
	return domain.Signature{H: h, Z: z}, nil
}
