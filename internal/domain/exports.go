package domain

import (
	interfaces "kmacrypt/internal/domain/interfaces"
	types "kmacrypt/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint  = types.Fingerprint
	Decrypted    = types.Decrypted
	PublicKey    = types.PublicKey
	KeyPair      = types.KeyPair
	Cryptogram   = types.Cryptogram
	ECCryptogram = types.ECCryptogram
	Signature    = types.Signature
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DigestService     = interfaces.DigestService
	SymmetricService  = interfaces.SymmetricService
	KeyService        = interfaces.KeyService
	AsymmetricService = interfaces.AsymmetricService
	SignatureService  = interfaces.SignatureService
	MessageStore      = interfaces.MessageStore
	CryptogramStore   = interfaces.CryptogramStore
	ECCryptogramStore = interfaces.ECCryptogramStore
	KeyStore          = interfaces.KeyStore
	SignatureStore    = interfaces.SignatureStore
)
