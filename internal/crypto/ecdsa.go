package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"enclavecrypt/internal/util/memzero"
)

// SignP256 signs SHA-256(msg) with priv and returns r‖s, each little-endian.
func SignP256(priv [32]byte, msg []byte) (sig [64]byte, err error) {
	pub, err := PublicFromPrivate(priv)
	if err != nil {
		return sig, err
	}
	be := reversed(priv[:])
	defer memzero.Zero(be)
	sk := &ecdsa.PrivateKey{
		PublicKey: publicKey(pub),
		D:         new(big.Int).SetBytes(be),
	}
	digest := sha256.Sum256(msg)
	r, s, err := ecdsa.Sign(rand.Reader, sk, digest[:])
	if err != nil {
		return sig, err
	}
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:])
	reverse(sig[:32])
	reverse(sig[32:])
	return sig, nil
}

// VerifyP256 reports whether sig is a valid signature of SHA-256(msg) under
// pub. It returns ErrInvalidKey if pub is not on the curve.
func VerifyP256(pub [64]byte, msg []byte, sig [64]byte) (bool, error) {
	if _, err := parsePublic(pub); err != nil {
		return false, err
	}
	pk := publicKey(pub)
	r := new(big.Int).SetBytes(reversed(sig[:32]))
	s := new(big.Int).SetBytes(reversed(sig[32:]))
	digest := sha256.Sum256(msg)
	return ecdsa.Verify(&pk, digest[:], r, s), nil
}

func publicKey(pub [64]byte) ecdsa.PublicKey {
	return ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(reversed(pub[:32])),
		Y:     new(big.Int).SetBytes(reversed(pub[32:])),
	}
}
