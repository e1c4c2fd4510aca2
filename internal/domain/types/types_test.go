package types_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enclavecrypt/internal/domain/types"
)

func TestParseRejectsWrongLength(t *testing.T) {
	cases := []struct {
		name  string
		parse func([]byte) error
		want  int
	}{
		{"private key", func(b []byte) error { _, err := types.ParsePrivateKey(b); return err }, 32},
		{"public key", func(b []byte) error { _, err := types.ParsePublicKey(b); return err }, 64},
		{"shared secret", func(b []byte) error { _, err := types.ParseSharedSecret(b); return err }, 32},
		{"mac key", func(b []byte) error { _, err := types.ParseMACKey(b); return err }, 16},
		{"signature", func(b []byte) error { _, err := types.ParseSignature(b); return err }, 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.parse(make([]byte, tc.want)))

			for _, n := range []int{0, tc.want - 1, tc.want + 1} {
				err := tc.parse(make([]byte, n))
				var lerr *types.LengthError
				require.True(t, errors.As(err, &lerr), "len %d", n)
				assert.Equal(t, tc.want, lerr.Want)
				assert.Equal(t, n, lerr.Got)
				assert.Equal(t, tc.name, lerr.Type)
			}
		})
	}
}

func TestParseCopiesInput(t *testing.T) {
	in := make([]byte, 32)
	in[0] = 7
	k, err := types.ParsePrivateKey(in)
	require.NoError(t, err)
	in[0] = 9
	assert.Equal(t, byte(7), k[0])
}

func TestFromHex(t *testing.T) {
	pub, err := types.PublicKeyFromHex(strings.Repeat("ab", 64) + "\n")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ab", 64), pub.Hex())
	assert.Equal(t, pub.Slice()[:32], pub.X())
	assert.Equal(t, pub.Slice()[32:], pub.Y())

	pub[0], pub[63] = 0x01, 0x02
	assert.Equal(t, byte(0x01), pub.X()[31])
	assert.Equal(t, byte(0x02), pub.Y()[0])

	_, err = types.MACKeyFromHex("zz")
	assert.Error(t, err)

	_, err = types.SignatureFromHex("00")
	var lerr *types.LengthError
	assert.True(t, errors.As(err, &lerr))
}

func TestValueEquality(t *testing.T) {
	a := types.Digest{1, 2, 3}
	b := types.Digest{1, 2, 3}
	assert.True(t, a == b)
	b[31] = 1
	assert.False(t, a == b)
}

func TestSignatureASN1Interop(t *testing.T) {
	sk, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	digest := sha256.Sum256([]byte("interop"))

	der, err := ecdsa.SignASN1(rand.Reader, sk, digest[:])
	require.NoError(t, err)

	sig, err := types.ParseASN1Signature(der)
	require.NoError(t, err)
	assert.True(t, ecdsa.VerifyASN1(&sk.PublicKey, digest[:], sig.ASN1()))

	var r, s big.Int
	r.SetBytes(sig[:32])
	s.SetBytes(sig[32:])
	assert.False(t, ecdsa.Verify(&sk.PublicKey, digest[:], &r, &s), "r||s must be little-endian")

	back, err := types.ParseASN1Signature(sig.ASN1())
	require.NoError(t, err)
	assert.Equal(t, sig, back)
}

func TestParseASN1SignatureRejectsGarbage(t *testing.T) {
	_, err := types.ParseASN1Signature([]byte{0x30, 0x01, 0x02})
	assert.ErrorIs(t, err, types.ErrMalformedASN1)

	good := types.Signature{1}.ASN1()
	_, err = types.ParseASN1Signature(append(good, 0x00))
	assert.ErrorIs(t, err, types.ErrMalformedASN1)
}
