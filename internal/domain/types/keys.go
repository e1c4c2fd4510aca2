package types

import (
	"encoding/hex"

	"enclavecrypt/internal/native"
)

// PrivateKey is a P-256 private scalar, little-endian as the host library
// stores it.
type PrivateKey [native.PrivateKeySize]byte

// Slice returns the key as a []byte.
func (k PrivateKey) Slice() []byte { return k[:] }

// PublicKey is a P-256 point as X‖Y, each coordinate little-endian.
type PublicKey [native.PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// X returns the X coordinate, big-endian.
func (p PublicKey) X() []byte { return bigEndian(p[:native.ECP256KeySize]) }

// Y returns the Y coordinate, big-endian.
func (p PublicKey) Y() []byte { return bigEndian(p[native.ECP256KeySize:]) }

// Hex returns the lowercase hex encoding of the key.
func (p PublicKey) Hex() string { return hex.EncodeToString(p[:]) }

// SharedSecret is the X coordinate of a Diffie-Hellman result, little-endian.
type SharedSecret [native.SharedKeySize]byte

// Slice returns the secret as a []byte.
func (s SharedSecret) Slice() []byte { return s[:] }

// DerivedKey is a 128-bit key derived from a SharedSecret and a label.
type DerivedKey [native.DerivedKeySize]byte

// Slice returns the key as a []byte.
func (k DerivedKey) Slice() []byte { return k[:] }

// MACKey converts the derived key for use with the MAC service.
func (k DerivedKey) MACKey() MACKey { return MACKey(k) }

// MACKey is an AES-128 CMAC key.
type MACKey [native.CMACKeySize]byte

// Slice returns the key as a []byte.
func (k MACKey) Slice() []byte { return k[:] }

// Signature is an ECDSA-P256 signature as r‖s, each little-endian.
type Signature [native.SignatureSize]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// Hex returns the lowercase hex encoding of the signature.
func (s Signature) Hex() string { return hex.EncodeToString(s[:]) }

// MAC is an AES-128 CMAC tag.
type MAC [native.CMACSize]byte

// Slice returns the tag as a []byte.
func (m MAC) Slice() []byte { return m[:] }

// Hex returns the lowercase hex encoding of the tag.
func (m MAC) Hex() string { return hex.EncodeToString(m[:]) }

// Digest is a SHA-256 digest.
type Digest [native.SHA256HashSize]byte

// Slice returns the digest as a []byte.
func (d Digest) Slice() []byte { return d[:] }

// Hex returns the lowercase hex encoding of the digest.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

// bigEndian returns a reversed copy of a little-endian field.
func bigEndian(le []byte) []byte {
	out := make([]byte, len(le))
	for i, c := range le {
		out[len(le)-1-i] = c
	}
	return out
}
