package native

import "enclavecrypt/internal/status"

// Buffer sizes of the P-256 / AES-128 ABI.
const (
	ECP256KeySize  = 32
	PrivateKeySize = ECP256KeySize
	PublicKeySize  = 2 * ECP256KeySize
	SharedKeySize  = ECP256KeySize
	DerivedKeySize = 16
	CMACKeySize    = 16
	CMACSize       = 16
	SignatureSize  = 2 * ECP256KeySize
	SHA256HashSize = 32
)

// Handle is an opaque engine context. The zero value is never a valid handle.
type Handle uintptr

// VerifyResult is the result byte written by ECDSAVerify. It is distinct from
// the call's own status.
type VerifyResult uint8

const (
	Valid            VerifyResult = 0
	InvalidSignature VerifyResult = 17
)

// Engine is the native primitive surface. Methods must not retain any of the
// buffers passed to them after returning.
type Engine interface {
	OpenContext(h *Handle) status.Code
	CloseContext(h Handle) status.Code

	CreateKeyPair(priv *[PrivateKeySize]byte, pub *[PublicKeySize]byte, h Handle) status.Code
	ComputeSharedKey(priv *[PrivateKeySize]byte, peer *[PublicKeySize]byte, shared *[SharedKeySize]byte, h Handle) status.Code

	DeriveKey(secret *[SharedKeySize]byte, label []byte, labelLen uint32, out *[DerivedKeySize]byte) status.Code

	ECDSASign(data []byte, dataLen uint32, priv *[PrivateKeySize]byte, sig *[SignatureSize]byte, h Handle) status.Code
	ECDSAVerify(data []byte, dataLen uint32, pub *[PublicKeySize]byte, sig *[SignatureSize]byte, result *VerifyResult, h Handle) status.Code

	CMAC(key *[CMACKeySize]byte, data []byte, dataLen uint32, mac *[CMACSize]byte) status.Code
	SHA256(data []byte, dataLen uint32, digest *[SHA256HashSize]byte) status.Code
}
