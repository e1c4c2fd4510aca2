// Package nativetest provides a native.Engine wrapper for tests.
//
// Recorder forwards to an inner engine while counting context opens and
// closes, and can be told to fail any call with a chosen status code.
package nativetest

import (
	"sync"
	"sync/atomic"

	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
)

// Call names an Engine method for fault injection.
type Call string

const (
	OpenContext      Call = "open_context"
	CloseContext     Call = "close_context"
	CreateKeyPair    Call = "create_key_pair"
	ComputeSharedKey Call = "compute_shared_key"
	DeriveKey        Call = "derive_key"
	ECDSASign        Call = "ecdsa_sign"
	ECDSAVerify      Call = "ecdsa_verify"
	CMAC             Call = "cmac"
	SHA256           Call = "sha256"
)

// Recorder wraps an engine, counting context traffic and injecting failures.
type Recorder struct {
	Inner native.Engine

	opens  atomic.Int64
	closes atomic.Int64

	mu       sync.Mutex
	failures map[Call]status.Code
	calls    map[Call]int
	labels   [][]byte
}

// NewRecorder wraps inner.
func NewRecorder(inner native.Engine) *Recorder {
	return &Recorder{
		Inner:    inner,
		failures: make(map[Call]status.Code),
		calls:    make(map[Call]int),
	}
}

// Fail makes every subsequent c return code. A failing CloseContext still
// releases the inner context so the inner engine does not leak.
func (r *Recorder) Fail(c Call, code status.Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[c] = code
}

// Reset clears injected failures.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = make(map[Call]status.Code)
}

// Opens returns the number of successful OpenContext calls.
func (r *Recorder) Opens() int { return int(r.opens.Load()) }

// Closes returns the number of CloseContext calls.
func (r *Recorder) Closes() int { return int(r.closes.Load()) }

// Calls returns how many times c was invoked.
func (r *Recorder) Calls(c Call) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[c]
}

// Labels returns the labels passed to DeriveKey, cut to the length passed
// alongside them.
func (r *Recorder) Labels() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]byte, len(r.labels))
	copy(out, r.labels)
	return out
}

func (r *Recorder) enter(c Call) (status.Code, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[c]++
	code, ok := r.failures[c]
	return code, ok
}

func (r *Recorder) OpenContext(h *native.Handle) status.Code {
	if code, ok := r.enter(OpenContext); ok {
		return code
	}
	code := r.Inner.OpenContext(h)
	if code.OK() {
		r.opens.Add(1)
	}
	return code
}

func (r *Recorder) CloseContext(h native.Handle) status.Code {
	r.closes.Add(1)
	code := r.Inner.CloseContext(h)
	if injected, ok := r.enter(CloseContext); ok {
		return injected
	}
	return code
}

func (r *Recorder) CreateKeyPair(priv *[native.PrivateKeySize]byte, pub *[native.PublicKeySize]byte, h native.Handle) status.Code {
	if code, ok := r.enter(CreateKeyPair); ok {
		return code
	}
	return r.Inner.CreateKeyPair(priv, pub, h)
}

func (r *Recorder) ComputeSharedKey(priv *[native.PrivateKeySize]byte, peer *[native.PublicKeySize]byte, shared *[native.SharedKeySize]byte, h native.Handle) status.Code {
	if code, ok := r.enter(ComputeSharedKey); ok {
		return code
	}
	return r.Inner.ComputeSharedKey(priv, peer, shared, h)
}

func (r *Recorder) DeriveKey(secret *[native.SharedKeySize]byte, label []byte, labelLen uint32, out *[native.DerivedKeySize]byte) status.Code {
	if uint64(labelLen) <= uint64(len(label)) {
		cp := append([]byte(nil), label[:labelLen]...)
		r.mu.Lock()
		r.labels = append(r.labels, cp)
		r.mu.Unlock()
	}
	if code, ok := r.enter(DeriveKey); ok {
		return code
	}
	return r.Inner.DeriveKey(secret, label, labelLen, out)
}

func (r *Recorder) ECDSASign(data []byte, dataLen uint32, priv *[native.PrivateKeySize]byte, sig *[native.SignatureSize]byte, h native.Handle) status.Code {
	if code, ok := r.enter(ECDSASign); ok {
		return code
	}
	return r.Inner.ECDSASign(data, dataLen, priv, sig, h)
}

func (r *Recorder) ECDSAVerify(data []byte, dataLen uint32, pub *[native.PublicKeySize]byte, sig *[native.SignatureSize]byte, result *native.VerifyResult, h native.Handle) status.Code {
	if code, ok := r.enter(ECDSAVerify); ok {
		return code
	}
	return r.Inner.ECDSAVerify(data, dataLen, pub, sig, result, h)
}

func (r *Recorder) CMAC(key *[native.CMACKeySize]byte, data []byte, dataLen uint32, mac *[native.CMACSize]byte) status.Code {
	if code, ok := r.enter(CMAC); ok {
		return code
	}
	return r.Inner.CMAC(key, data, dataLen, mac)
}

func (r *Recorder) SHA256(data []byte, dataLen uint32, digest *[native.SHA256HashSize]byte) status.Code {
	if code, ok := r.enter(SHA256); ok {
		return code
	}
	return r.Inner.SHA256(data, dataLen, digest)
}

var _ native.Engine = (*Recorder)(nil)
