package store

import (
	"io"
	"path/filepath"
	"sync"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/domain"
)

const (
	publicMode  = 0o644
	privateMode = 0o600
)

// FileStore reads messages and persists cryptograms, keys and signatures as
// newline-separated text records.
type FileStore struct {
	dir  string
	rand io.Reader
	mu   sync.Mutex
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithRandom sets the random source used to encrypt private keys.
func WithRandom(r io.Reader) Option {
	return func(s *FileStore) { s.rand = r }
}

// NewFileStore returns a FileStore that resolves relative paths against dir.
// An empty dir leaves relative paths relative to the working directory.
func NewFileStore(dir string, opts ...Option) *FileStore {
	s := &FileStore{dir: dir, rand: crypto.Reader}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *FileStore) path(name string) string {
	if s.dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// ReadMessage returns the raw contents of a message file.
func (s *FileStore) ReadMessage(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readFile(s.path(path))
}

// WriteMessage writes a recovered message.
func (s *FileStore) WriteMessage(path string, m []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFile(s.path(path), m, privateMode)
}

// Compile-time assertions that FileStore implements the domain stores.
var (
	_ domain.MessageStore      = (*FileStore)(nil)
	_ domain.CryptogramStore   = (*FileStore)(nil)
	_ domain.ECCryptogramStore = (*FileStore)(nil)
	_ domain.KeyStore          = (*FileStore)(nil)
	_ domain.SignatureStore    = (*FileStore)(nil)
)
