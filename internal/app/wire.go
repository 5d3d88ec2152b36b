package app

import (
	"io"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/domain"
	asymmetricsvc "kmacrypt/internal/services/asymmetric"
	digestsvc "kmacrypt/internal/services/digest"
	keypairsvc "kmacrypt/internal/services/keypair"
	signaturesvc "kmacrypt/internal/services/signature"
	symmetricsvc "kmacrypt/internal/services/symmetric"
	"kmacrypt/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Messages   domain.MessageStore
	Digest     domain.DigestService
	Symmetric  domain.SymmetricService
	Keys       domain.KeyService
	Asymmetric domain.AsymmetricService
	Signatures domain.SignatureService
}

// NewWire constructs the dependency graph from cfg. A nil rand uses
// crypto.Reader.
func NewWire(cfg Config, rand io.Reader) (*Wire, error) {
	if rand == nil {
		rand = crypto.Reader
	}

	// File-based store
	fs := store.NewFileStore(cfg.Dir, store.WithRandom(rand))

	// High-level services
	keys := keypairsvc.New(fs)

	return &Wire{
		Messages:   fs,
		Digest:     digestsvc.New(),
		Symmetric:  symmetricsvc.New(fs, rand),
		Keys:       keys,
		Asymmetric: asymmetricsvc.New(keys, fs, fs, rand),
		Signatures: signaturesvc.New(keys, fs, fs),
	}, nil
}
