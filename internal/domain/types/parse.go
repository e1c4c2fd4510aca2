package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"enclavecrypt/internal/native"
)

// LengthError reports input whose length does not match a type's contract.
type LengthError struct {
	Type string
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: want %d bytes, got %d", e.Type, e.Want, e.Got)
}

func checkLen(typ string, b []byte, want int) error {
	if len(b) != want {
		return &LengthError{Type: typ, Want: want, Got: len(b)}
	}
	return nil
}

func decodeHex(typ, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", typ, err)
	}
	return b, nil
}

// ParsePrivateKey copies b into a PrivateKey.
func ParsePrivateKey(b []byte) (PrivateKey, error) {
	var out PrivateKey
	if err := checkLen("private key", b, native.PrivateKeySize); err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ParsePublicKey copies b into a PublicKey.
func ParsePublicKey(b []byte) (PublicKey, error) {
	var out PublicKey
	if err := checkLen("public key", b, native.PublicKeySize); err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ParseSharedSecret copies b into a SharedSecret.
func ParseSharedSecret(b []byte) (SharedSecret, error) {
	var out SharedSecret
	if err := checkLen("shared secret", b, native.SharedKeySize); err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ParseMACKey copies b into a MACKey.
func ParseMACKey(b []byte) (MACKey, error) {
	var out MACKey
	if err := checkLen("mac key", b, native.CMACKeySize); err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ParseSignature copies b into a Signature.
func ParseSignature(b []byte) (Signature, error) {
	var out Signature
	if err := checkLen("signature", b, native.SignatureSize); err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// PrivateKeyFromHex decodes a hex private key.
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	b, err := decodeHex("private key", s)
	if err != nil {
		return PrivateKey{}, err
	}
	return ParsePrivateKey(b)
}

// PublicKeyFromHex decodes a hex public key.
func PublicKeyFromHex(s string) (PublicKey, error) {
	b, err := decodeHex("public key", s)
	if err != nil {
		return PublicKey{}, err
	}
	return ParsePublicKey(b)
}

// SharedSecretFromHex decodes a hex shared secret.
func SharedSecretFromHex(s string) (SharedSecret, error) {
	b, err := decodeHex("shared secret", s)
	if err != nil {
		return SharedSecret{}, err
	}
	return ParseSharedSecret(b)
}

// MACKeyFromHex decodes a hex MAC key.
func MACKeyFromHex(s string) (MACKey, error) {
	b, err := decodeHex("mac key", s)
	if err != nil {
		return MACKey{}, err
	}
	return ParseMACKey(b)
}

// SignatureFromHex decodes a hex signature.
func SignatureFromHex(s string) (Signature, error) {
	b, err := decodeHex("signature", s)
	if err != nil {
		return Signature{}, err
	}
	return ParseSignature(b)
}
