package crypto

import (
	"crypto/ecdh"
	"crypto/rand"
	"errors"

	"enclavecrypt/internal/util/memzero"
)

// ErrInvalidKey is returned when a scalar or point is not a valid P-256 key.
var ErrInvalidKey = errors.New("crypto: invalid P-256 key")

// uncompressed SEC1 prefix stripped from ABI public keys.
const sec1Uncompressed = 0x04

// GenerateP256 returns a fresh P-256 key pair in SGX layout: a little-endian
// scalar and X‖Y with each coordinate little-endian.
func GenerateP256() (priv [32]byte, pub [64]byte, err error) {
	k, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return priv, pub, err
	}
	copy(priv[:], k.Bytes())
	reverse(priv[:])
	return priv, publicFromSEC1(k.PublicKey().Bytes()), nil
}

// PublicFromPrivate returns the public point for priv.
func PublicFromPrivate(priv [32]byte) (pub [64]byte, err error) {
	k, err := privateKey(priv)
	if err != nil {
		return pub, err
	}
	return publicFromSEC1(k.PublicKey().Bytes()), nil
}

// DH computes the P-256 Diffie-Hellman shared X coordinate, little-endian.
func DH(priv [32]byte, peer [64]byte) (out [32]byte, err error) {
	sk, err := privateKey(priv)
	if err != nil {
		return out, err
	}
	pk, err := parsePublic(peer)
	if err != nil {
		return out, err
	}
	secret, err := sk.ECDH(pk)
	if err != nil {
		return out, ErrInvalidKey
	}
	copy(out[:], secret)
	reverse(out[:])
	memzero.Zero(secret)
	return out, nil
}

func privateKey(priv [32]byte) (*ecdh.PrivateKey, error) {
	be := reversed(priv[:])
	defer memzero.Zero(be)
	k, err := ecdh.P256().NewPrivateKey(be)
	if err != nil {
		return nil, ErrInvalidKey
	}
	return k, nil
}

func publicFromSEC1(sec1 []byte) (pub [64]byte) {
	copy(pub[:32], reversed(sec1[1:33]))
	copy(pub[32:], reversed(sec1[33:65]))
	return pub
}

func parsePublic(pub [64]byte) (*ecdh.PublicKey, error) {
	var sec1 [65]byte
	sec1[0] = sec1Uncompressed
	copy(sec1[1:33], reversed(pub[:32]))
	copy(sec1[33:], reversed(pub[32:]))
	pk, err := ecdh.P256().NewPublicKey(sec1[:])
	if err != nil {
		return nil, ErrInvalidKey
	}
	return pk, nil
}
