package types

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"enclavecrypt/internal/native"
)

// ErrMalformedASN1 is returned for DER input that is not an ECDSA-P256
// SEQUENCE{INTEGER r, INTEGER s}.
var ErrMalformedASN1 = errors.New("signature: malformed ASN.1")

// ASN1 returns the DER encoding of s as used by crypto/ecdsa.VerifyASN1.
func (s Signature) ASN1() []byte {
	r := new(big.Int).SetBytes(bigEndian(s[:native.ECP256KeySize]))
	ss := new(big.Int).SetBytes(bigEndian(s[native.ECP256KeySize:]))

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(r)
		b.AddASN1BigInt(ss)
	})
	return b.BytesOrPanic()
}

// ParseASN1Signature decodes a DER ECDSA signature into little-endian r‖s.
func ParseASN1Signature(der []byte) (Signature, error) {
	var (
		out   Signature
		inner cryptobyte.String
		r, s  big.Int
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() ||
		!inner.ReadASN1Integer(&r) || !inner.ReadASN1Integer(&s) || !inner.Empty() {
		return out, ErrMalformedASN1
	}
	if r.Sign() < 0 || s.Sign() < 0 ||
		r.BitLen() > 8*native.ECP256KeySize || s.BitLen() > 8*native.ECP256KeySize {
		return out, ErrMalformedASN1
	}
	r.FillBytes(out[:native.ECP256KeySize])
	s.FillBytes(out[native.ECP256KeySize:])
	copy(out[:native.ECP256KeySize], bigEndian(out[:native.ECP256KeySize]))
	copy(out[native.ECP256KeySize:], bigEndian(out[native.ECP256KeySize:]))
	return out, nil
}
