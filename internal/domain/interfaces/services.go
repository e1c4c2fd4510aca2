package interfaces

import (
	domaintypes "enclavecrypt/internal/domain/types"
)

// KeyExchangeService generates P-256 key pairs and computes DH secrets.
type KeyExchangeService interface {
	GenerateKeyPair() (domaintypes.PrivateKey, domaintypes.PublicKey, error)
	ComputeSharedSecret(
		privateKey domaintypes.PrivateKey,
		peerPublicKey domaintypes.PublicKey,
	) (domaintypes.SharedSecret, error)
	Ephemeral(peerPublicKey domaintypes.PublicKey) (
		domaintypes.PrivateKey,
		domaintypes.PublicKey,
		domaintypes.SharedSecret,
		error,
	)
}

// KeyDerivationService derives 128-bit keys from a shared secret and a label.
type KeyDerivationService interface {
	Derive(masterSecret domaintypes.SharedSecret, label []byte) (domaintypes.DerivedKey, error)
}

// SignatureService produces and checks ECDSA-P256 signatures.
type SignatureService interface {
	Sign(data []byte, privateKey domaintypes.PrivateKey) (domaintypes.Signature, error)
	Verify(
		data []byte,
		signature domaintypes.Signature,
		publicKey domaintypes.PublicKey,
	) (bool, error)
}

// MACService computes AES-128 CMAC tags.
type MACService interface {
	Compute(data []byte, key domaintypes.MACKey) (domaintypes.MAC, error)
}

// HashService computes SHA-256 digests.
type HashService interface {
	Compute(data []byte) (domaintypes.Digest, error)
}
