package store

import (
	"kmacrypt/internal/domain"
)

// SavePublicKey writes x(V) and y(V) on two lines.
func (s *FileStore) SavePublicKey(path string, pub domain.PublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeLines(s.path(path), publicMode, encodeInt(pub.X()), encodeInt(pub.Y()))
}

// LoadPublicKey reads a public key and checks that it is on the curve.
func (s *FileStore) LoadPublicKey(path string) (domain.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := readLines(s.path(path), 2)
	if err != nil {
		return domain.PublicKey{}, err
	}
	return decodePoint(lines[0], lines[1])
}
