package crypto_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enclavecrypt/internal/crypto"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// RFC 4493 section 4 examples.
func TestCMAC_RFC4493(t *testing.T) {
	var key [16]byte
	copy(key[:], unhex(t, "2b7e151628aed2a6abf7158809cf4f3c"))

	cases := []struct {
		name string
		msg  string
		mac  string
	}{
		{"empty", "", "bb1d6929e95937287fa37d129b756746"},
		{"one block", "6bc1bee22e409f96e93d7e117393172a", "070a16b46b4d4144f79bdd9dd04a287c"},
		{
			"40 bytes",
			"6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e5130c81c46a35ce411",
			"dfa66747de9ae63030ca32611497c827",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mac, err := crypto.CMAC(key, unhex(t, tc.msg))
			require.NoError(t, err)
			assert.Equal(t, tc.mac, hex.EncodeToString(mac[:]))
		})
	}
}

func TestDH_Commutative(t *testing.T) {
	aPriv, aPub, err := crypto.GenerateP256()
	require.NoError(t, err)
	bPriv, bPub, err := crypto.GenerateP256()
	require.NoError(t, err)

	ab, err := crypto.DH(aPriv, bPub)
	require.NoError(t, err)
	ba, err := crypto.DH(bPriv, aPub)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestPublicFromPrivate_MatchesGenerated(t *testing.T) {
	priv, pub, err := crypto.GenerateP256()
	require.NoError(t, err)
	got, err := crypto.PublicFromPrivate(priv)
	require.NoError(t, err)
	assert.Equal(t, pub, got)
}

func TestInvalidKeysRejected(t *testing.T) {
	var zeroPriv [32]byte
	_, err := crypto.PublicFromPrivate(zeroPriv)
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)

	priv, _, err := crypto.GenerateP256()
	require.NoError(t, err)
	var offCurve [64]byte
	offCurve[0] = 1
	_, err = crypto.DH(priv, offCurve)
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)

	_, err = crypto.VerifyP256(offCurve, []byte("m"), [64]byte{})
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestSignVerifyP256(t *testing.T) {
	priv, pub, err := crypto.GenerateP256()
	require.NoError(t, err)
	msg := []byte("attested key exchange")

	sig, err := crypto.SignP256(priv, msg)
	require.NoError(t, err)

	ok, err := crypto.VerifyP256(pub, msg, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	msg[0] ^= 1
	ok, err = crypto.VerifyP256(pub, msg, sig)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = crypto.VerifyP256(pub, msg, [64]byte{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeriveKey(t *testing.T) {
	var secret [32]byte
	for i := range secret {
		secret[i] = byte(i)
	}
	k1, err := crypto.DeriveKey(secret, []byte("SMK"))
	require.NoError(t, err)
	k2, err := crypto.DeriveKey(secret, []byte("SMK"))
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	other, err := crypto.DeriveKey(secret, []byte("SK"))
	require.NoError(t, err)
	assert.NotEqual(t, k1, other)

	_, err = crypto.DeriveKey(secret, nil)
	assert.ErrorIs(t, err, crypto.ErrEmptyLabel)
}

// Key pair from the host library's own regression suite, in SGX layout.
const (
	sgxPriv = "90e76cbb2d52a1ce3b66de11439c87ec1f866a3b65b6aeeaad573453d1038c01"
	sgxPub  = "72128a7a17526ebf85d03a623730aead3e3daaee9c60731db05be8621c4beb38" +
		"d48140d950e2577b26eeb741e7c614e224b7bdc903f29a28a83cc81011145e06"
)

func TestSGXLayout_FixedKeyPair(t *testing.T) {
	var priv [32]byte
	var pub [64]byte
	copy(priv[:], unhex(t, sgxPriv))
	copy(pub[:], unhex(t, sgxPub))

	got, err := crypto.PublicFromPrivate(priv)
	require.NoError(t, err)
	assert.Equal(t, pub, got)

	msg := make([]byte, 2000)
	for i := range msg {
		msg[i] = byte(i * 7)
	}
	sig, err := crypto.SignP256(priv, msg)
	require.NoError(t, err)
	ok, err := crypto.VerifyP256(pub, msg, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	msg[20] ^= 1
	ok, err = crypto.VerifyP256(pub, msg, sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSGXLayout_LittleEndianCoordinates(t *testing.T) {
	var pub [64]byte
	copy(pub[:], unhex(t, sgxPub))

	// The same point with big-endian coordinates is not on the curve.
	var swapped [64]byte
	for i := 0; i < 32; i++ {
		swapped[i] = pub[31-i]
		swapped[32+i] = pub[63-i]
	}
	_, err := crypto.VerifyP256(swapped, []byte("m"), [64]byte{})
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}
