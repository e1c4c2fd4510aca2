// Package transfer owns the buffers handed across the native boundary.
//
// Every service call builds one Arena. Caller values are copied into
// arena-owned buffers at call entry, the engine reads and writes only those
// buffers, and Release wipes all of them once the call returns. Output
// buffers are read back into domain values only after the engine reports
// success.
package transfer

import (
	"errors"
	"fmt"
	"math"

	"enclavecrypt/internal/domain"
	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
	"enclavecrypt/internal/util/memzero"
)

// ErrTooLarge is returned for variable-length input the ABI cannot describe
// with a 32-bit length.
var ErrTooLarge = errors.New("transfer: input exceeds 32-bit length")

// Arena tracks the transfer buffers of a single call.
type Arena struct {
	bufs [][]byte
}

func (a *Arena) track(b []byte) { a.bufs = append(a.bufs, b) }

// Release wipes every buffer handed out by the arena.
func (a *Arena) Release() {
	memzero.ZeroAll(a.bufs...)
	a.bufs = nil
}

// Data copies variable-length input for op and returns it with its ABI
// length. Oversized input fails as an invalid-parameter operation failure
// without reaching the engine.
func (a *Arena) Data(op string, p []byte) ([]byte, uint32, error) {
	if uint64(len(p)) > math.MaxUint32 {
		return nil, 0, fmt.Errorf("%w: %w", status.Operation(op, status.ErrorInvalidParameter), ErrTooLarge)
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	a.track(buf)
	return buf, uint32(len(p)), nil
}

// PrivateKey copies k into a transfer buffer.
func (a *Arena) PrivateKey(k domain.PrivateKey) *[native.PrivateKeySize]byte {
	b := new([native.PrivateKeySize]byte)
	*b = k
	a.track(b[:])
	return b
}

// PublicKey copies k into a transfer buffer.
func (a *Arena) PublicKey(k domain.PublicKey) *[native.PublicKeySize]byte {
	b := new([native.PublicKeySize]byte)
	*b = k
	a.track(b[:])
	return b
}

// SharedSecret copies s into a transfer buffer.
func (a *Arena) SharedSecret(s domain.SharedSecret) *[native.SharedKeySize]byte {
	b := new([native.SharedKeySize]byte)
	*b = s
	a.track(b[:])
	return b
}

// MACKey copies k into a transfer buffer.
func (a *Arena) MACKey(k domain.MACKey) *[native.CMACKeySize]byte {
	b := new([native.CMACKeySize]byte)
	*b = k
	a.track(b[:])
	return b
}

// Signature copies s into a transfer buffer.
func (a *Arena) Signature(s domain.Signature) *[native.SignatureSize]byte {
	b := new([native.SignatureSize]byte)
	*b = s
	a.track(b[:])
	return b
}

// Out32 returns an empty 32-byte output buffer.
func (a *Arena) Out32() *[32]byte {
	b := new([32]byte)
	a.track(b[:])
	return b
}

// Out64 returns an empty 64-byte output buffer.
func (a *Arena) Out64() *[64]byte {
	b := new([64]byte)
	a.track(b[:])
	return b
}

// Out16 returns an empty 16-byte output buffer.
func (a *Arena) Out16() *[16]byte {
	b := new([16]byte)
	a.track(b[:])
	return b
}
