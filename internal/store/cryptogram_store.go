package store

import (
	"os"

	"kmacrypt/internal/domain"
)

// SaveCryptogram writes z, c and t on three lines.
func (s *FileStore) SaveCryptogram(path string, c domain.Cryptogram) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveCryptogram(s.path(path), c, publicMode)
}

// LoadCryptogram reads a cryptogram written by SaveCryptogram.
func (s *FileStore) LoadCryptogram(path string) (domain.Cryptogram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadCryptogram(s.path(path))
}

func saveCryptogram(path string, c domain.Cryptogram, mode os.FileMode) error {
	return writeLines(path, mode, encodeBytes(c.Z), encodeBytes(c.C), encodeBytes(c.T))
}

func loadCryptogram(path string) (domain.Cryptogram, error) {
	lines, err := readLines(path, 3)
	if err != nil {
		return domain.Cryptogram{}, err
	}
	z, err := decodeBytes("z", lines[0])
	if err != nil {
		return domain.Cryptogram{}, err
	}
	c, err := decodeBytes("c", lines[1])
	if err != nil {
		return domain.Cryptogram{}, err
	}
	t, err := decodeBytes("t", lines[2])
	if err != nil {
		return domain.Cryptogram{}, err
	}
	return domain.Cryptogram{Z: z, C: c, T: t}, nil
}

// SaveECCryptogram writes x(Z), y(Z), c and t on four lines.
func (s *FileStore) SaveECCryptogram(path string, c domain.ECCryptogram) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeLines(s.path(path), publicMode,
		encodeInt(c.Z.X()), encodeInt(c.Z.Y()), encodeBytes(c.C), encodeBytes(c.T))
}

// LoadECCryptogram reads a cryptogram written by SaveECCryptogram.
func (s *FileStore) LoadECCryptogram(path string) (domain.ECCryptogram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := readLines(s.path(path), 4)
	if err != nil {
		return domain.ECCryptogram{}, err
	}
	z, err := decodePoint(lines[0], lines[1])
	if err != nil {
		return domain.ECCryptogram{}, err
	}
	c, err := decodeBytes("c", lines[2])
	if err != nil {
		return domain.ECCryptogram{}, err
	}
	t, err := decodeBytes("t", lines[3])
	if err != nil {
		return domain.ECCryptogram{}, err
	}
	return domain.ECCryptogram{Z: z, C: c, T: t}, nil
}
