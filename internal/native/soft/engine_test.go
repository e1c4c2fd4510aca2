package soft_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enclavecrypt/internal/native"
	"enclavecrypt/internal/native/soft"
	"enclavecrypt/internal/status"
)

func open(t *testing.T, e *soft.Engine) native.Handle {
	t.Helper()
	var h native.Handle
	require.Equal(t, status.Success, e.OpenContext(&h))
	require.NotZero(t, h)
	return h
}

func TestContextLifecycle(t *testing.T) {
	e := soft.New()
	h1 := open(t, e)
	h2 := open(t, e)
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, e.OpenContexts())

	assert.Equal(t, status.Success, e.CloseContext(h1))
	assert.Equal(t, status.ErrorInvalidParameter, e.CloseContext(h1), "double close")
	assert.Equal(t, status.Success, e.CloseContext(h2))
	assert.Zero(t, e.OpenContexts())

	assert.Equal(t, status.ErrorInvalidParameter, e.OpenContext(nil))
}

func TestOperationsRequireOpenContext(t *testing.T) {
	e := soft.New()
	var priv [native.PrivateKeySize]byte
	var pub [native.PublicKeySize]byte
	assert.Equal(t, status.ErrorInvalidParameter, e.CreateKeyPair(&priv, &pub, native.Handle(99)))

	h := open(t, e)
	require.Equal(t, status.Success, e.CreateKeyPair(&priv, &pub, h))
	require.Equal(t, status.Success, e.CloseContext(h))

	var sig [native.SignatureSize]byte
	assert.Equal(t, status.ErrorInvalidParameter, e.ECDSASign([]byte("x"), 1, &priv, &sig, h))
}

func TestSharedKeyCommutative(t *testing.T) {
	e := soft.New()
	h := open(t, e)
	defer e.CloseContext(h)

	var aPriv, bPriv [native.PrivateKeySize]byte
	var aPub, bPub [native.PublicKeySize]byte
	require.Equal(t, status.Success, e.CreateKeyPair(&aPriv, &aPub, h))
	require.Equal(t, status.Success, e.CreateKeyPair(&bPriv, &bPub, h))

	var ab, ba [native.SharedKeySize]byte
	require.Equal(t, status.Success, e.ComputeSharedKey(&aPriv, &bPub, &ab, h))
	require.Equal(t, status.Success, e.ComputeSharedKey(&bPriv, &aPub, &ba, h))
	assert.Equal(t, ab, ba)

	var bad [native.PublicKeySize]byte
	assert.Equal(t, status.ErrorInvalidParameter, e.ComputeSharedKey(&aPriv, &bad, &ab, h))
}

func TestVerifyResultIsSeparateFromStatus(t *testing.T) {
	e := soft.New()
	h := open(t, e)
	defer e.CloseContext(h)

	var priv [native.PrivateKeySize]byte
	var pub [native.PublicKeySize]byte
	require.Equal(t, status.Success, e.CreateKeyPair(&priv, &pub, h))

	data := []byte("signed payload")
	var sig [native.SignatureSize]byte
	require.Equal(t, status.Success, e.ECDSASign(data, uint32(len(data)), &priv, &sig, h))

	result := native.InvalidSignature
	require.Equal(t, status.Success, e.ECDSAVerify(data, uint32(len(data)), &pub, &sig, &result, h))
	assert.Equal(t, native.Valid, result)

	sig[5] ^= 0x80
	require.Equal(t, status.Success, e.ECDSAVerify(data, uint32(len(data)), &pub, &sig, &result, h))
	assert.Equal(t, native.InvalidSignature, result)
}

func TestExplicitLengthsHonoured(t *testing.T) {
	e := soft.New()
	var d1, d2 [native.SHA256HashSize]byte

	require.Equal(t, status.Success, e.SHA256([]byte("abcdef"), 3, &d1))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(d1[:]))

	assert.Equal(t, status.ErrorInvalidParameter, e.SHA256([]byte("ab"), 3, &d2))
	require.Equal(t, status.Success, e.SHA256(nil, 0, &d2))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(d2[:]))
}

func TestDeriveKeyLabelLength(t *testing.T) {
	e := soft.New()
	var secret [native.SharedKeySize]byte
	var k1, k2 [native.DerivedKeySize]byte

	require.Equal(t, status.Success, e.DeriveKey(&secret, []byte("session\x00"), 7, &k1))
	require.Equal(t, status.Success, e.DeriveKey(&secret, []byte("session"), 7, &k2))
	assert.Equal(t, k1, k2)

	assert.Equal(t, status.ErrorInvalidParameter, e.DeriveKey(&secret, nil, 0, &k1))
	assert.Equal(t, status.ErrorInvalidParameter, e.DeriveKey(&secret, []byte("ab"), 5, &k1))
}

func TestCMAC(t *testing.T) {
	e := soft.New()
	var key [native.CMACKeySize]byte
	k, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	copy(key[:], k)
	msg, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")

	var mac [native.CMACSize]byte
	require.Equal(t, status.Success, e.CMAC(&key, msg, uint32(len(msg)), &mac))
	assert.Equal(t, "070a16b46b4d4144f79bdd9dd04a287c", hex.EncodeToString(mac[:]))
	assert.Equal(t, status.ErrorInvalidParameter, e.CMAC(nil, msg, uint32(len(msg)), &mac))
}
