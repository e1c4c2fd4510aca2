package domain

import (
	interfaces "enclavecrypt/internal/domain/interfaces"
	types "enclavecrypt/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PrivateKey   = types.PrivateKey
	PublicKey    = types.PublicKey
	SharedSecret = types.SharedSecret
	DerivedKey   = types.DerivedKey
	MACKey       = types.MACKey
	Signature    = types.Signature
	MAC          = types.MAC
	Digest       = types.Digest
	LengthError  = types.LengthError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyExchangeService   = interfaces.KeyExchangeService
	KeyDerivationService = interfaces.KeyDerivationService
	SignatureService     = interfaces.SignatureService
	MACService           = interfaces.MACService
	HashService          = interfaces.HashService
)

// Constructors re-exported from the types subpackage.
var (
	ParsePrivateKey     = types.ParsePrivateKey
	ParsePublicKey      = types.ParsePublicKey
	ParseSharedSecret   = types.ParseSharedSecret
	ParseMACKey         = types.ParseMACKey
	ParseSignature      = types.ParseSignature
	ParseASN1Signature  = types.ParseASN1Signature
	PrivateKeyFromHex   = types.PrivateKeyFromHex
	PublicKeyFromHex    = types.PublicKeyFromHex
	SharedSecretFromHex = types.SharedSecretFromHex
	MACKeyFromHex       = types.MACKeyFromHex
	SignatureFromHex    = types.SignatureFromHex
)
