// Package soft is a pure Go implementation of native.Engine.
//
// It follows the engine ABI exactly, including the little-endian key and
// signature layout and the status codes for malformed calls, so it can stand
// in for the host crypto library in tests and on machines without one. Contexts are tracked in a handle table; calls made
// with an unknown or closed handle fail with SGX_ERROR_INVALID_PARAMETER.
package soft

import (
	"errors"
	"sync"

	"enclavecrypt/internal/crypto"
	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
)

// Engine is the software engine. The zero value is not usable; call New.
type Engine struct {
	mu   sync.Mutex
	next native.Handle
	open map[native.Handle]struct{}
}

// New returns an engine with no open contexts.
func New() *Engine {
	return &Engine{open: make(map[native.Handle]struct{})}
}

// OpenContexts returns the number of contexts not yet closed.
func (e *Engine) OpenContexts() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.open)
}

func (e *Engine) OpenContext(h *native.Handle) status.Code {
	if h == nil {
		return status.ErrorInvalidParameter
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.next++
	e.open[e.next] = struct{}{}
	*h = e.next
	return status.Success
}

func (e *Engine) CloseContext(h native.Handle) status.Code {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.open[h]; !ok {
		return status.ErrorInvalidParameter
	}
	delete(e.open, h)
	return status.Success
}

func (e *Engine) CreateKeyPair(priv *[native.PrivateKeySize]byte, pub *[native.PublicKeySize]byte, h native.Handle) status.Code {
	if priv == nil || pub == nil || !e.valid(h) {
		return status.ErrorInvalidParameter
	}
	sk, pk, err := crypto.GenerateP256()
	if err != nil {
		return codeFor(err)
	}
	*priv, *pub = sk, pk
	return status.Success
}

func (e *Engine) ComputeSharedKey(priv *[native.PrivateKeySize]byte, peer *[native.PublicKeySize]byte, shared *[native.SharedKeySize]byte, h native.Handle) status.Code {
	if priv == nil || peer == nil || shared == nil || !e.valid(h) {
		return status.ErrorInvalidParameter
	}
	out, err := crypto.DH(*priv, *peer)
	if err != nil {
		return codeFor(err)
	}
	*shared = out
	return status.Success
}

func (e *Engine) DeriveKey(secret *[native.SharedKeySize]byte, label []byte, labelLen uint32, out *[native.DerivedKeySize]byte) status.Code {
	lbl, ok := span(label, labelLen)
	if secret == nil || out == nil || !ok {
		return status.ErrorInvalidParameter
	}
	k, err := crypto.DeriveKey(*secret, lbl)
	if err != nil {
		return codeFor(err)
	}
	*out = k
	return status.Success
}

func (e *Engine) ECDSASign(data []byte, dataLen uint32, priv *[native.PrivateKeySize]byte, sig *[native.SignatureSize]byte, h native.Handle) status.Code {
	msg, ok := span(data, dataLen)
	if !ok || priv == nil || sig == nil || !e.valid(h) {
		return status.ErrorInvalidParameter
	}
	s, err := crypto.SignP256(*priv, msg)
	if err != nil {
		return codeFor(err)
	}
	*sig = s
	return status.Success
}

func (e *Engine) ECDSAVerify(data []byte, dataLen uint32, pub *[native.PublicKeySize]byte, sig *[native.SignatureSize]byte, result *native.VerifyResult, h native.Handle) status.Code {
	msg, ok := span(data, dataLen)
	if !ok || pub == nil || sig == nil || result == nil || !e.valid(h) {
		return status.ErrorInvalidParameter
	}
	valid, err := crypto.VerifyP256(*pub, msg, *sig)
	if err != nil {
		return codeFor(err)
	}
	if valid {
		*result = native.Valid
	} else {
		*result = native.InvalidSignature
	}
	return status.Success
}

func (e *Engine) CMAC(key *[native.CMACKeySize]byte, data []byte, dataLen uint32, mac *[native.CMACSize]byte) status.Code {
	msg, ok := span(data, dataLen)
	if !ok || key == nil || mac == nil {
		return status.ErrorInvalidParameter
	}
	m, err := crypto.CMAC(*key, msg)
	if err != nil {
		return codeFor(err)
	}
	*mac = m
	return status.Success
}

func (e *Engine) SHA256(data []byte, dataLen uint32, digest *[native.SHA256HashSize]byte) status.Code {
	msg, ok := span(data, dataLen)
	if !ok || digest == nil {
		return status.ErrorInvalidParameter
	}
	*digest = crypto.SHA256(msg)
	return status.Success
}

func (e *Engine) valid(h native.Handle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.open[h]
	return ok
}

// span returns the first n bytes of b, or false if b is shorter than n.
func span(b []byte, n uint32) ([]byte, bool) {
	if uint64(n) > uint64(len(b)) {
		return nil, false
	}
	return b[:n], true
}

func codeFor(err error) status.Code {
	switch {
	case errors.Is(err, crypto.ErrInvalidKey), errors.Is(err, crypto.ErrEmptyLabel):
		return status.ErrorInvalidParameter
	default:
		return status.ErrorUnexpected
	}
}

// Compile-time assertion that Engine implements native.Engine.
var _ native.Engine = (*Engine)(nil)
