//go:build !sgxnative || !cgo

package sgx

import "enclavecrypt/internal/native"

// Open reports ErrUnavailable in builds without the native binding.
func Open() (native.Engine, error) { return nil, ErrUnavailable }
