package crypto

import (
	"crypto/aes"
	"errors"

	"github.com/aead/cmac"

	"enclavecrypt/internal/util/memzero"
)

// ErrEmptyLabel is returned by DeriveKey for a zero-length label.
var ErrEmptyLabel = errors.New("crypto: empty derivation label")

// CMAC computes the AES-128 CMAC of msg under key.
func CMAC(key [16]byte, msg []byte) (mac [16]byte, err error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return mac, err
	}
	tag, err := cmac.Sum(msg, block, aes.BlockSize)
	if err != nil {
		return mac, err
	}
	copy(mac[:], tag)
	return mac, nil
}

// DeriveKey derives a 128-bit key from a DH shared secret and a label.
//
//	KDK = CMAC(0^128, secret)
//	key = CMAC(KDK, 0x01 ‖ label ‖ 0x00 ‖ 0x80 ‖ 0x00)
//
// The trailing 0x0080 is the output length in bits, little-endian.
func DeriveKey(secret [32]byte, label []byte) (out [16]byte, err error) {
	if len(label) == 0 {
		return out, ErrEmptyLabel
	}
	var zero [16]byte
	kdk, err := CMAC(zero, secret[:])
	if err != nil {
		return out, err
	}
	defer memzero.Zero(kdk[:])

	buf := make([]byte, 0, len(label)+4)
	buf = append(buf, 0x01)
	buf = append(buf, label...)
	buf = append(buf, 0x00, 0x80, 0x00)
	return CMAC(kdk, buf)
}
