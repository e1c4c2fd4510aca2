// Package sgx binds native.Engine to the host-side SGX crypto library.
//
// The binding is only compiled with cgo and the sgxnative build tag, and links
// against libcrypto_wrapper (the untrusted sgx_tcrypto host build). Without
// the tag Open returns ErrUnavailable so callers can fall back to the
// software engine.
package sgx

import "errors"

// ErrUnavailable is returned by Open when the binding was not compiled in.
var ErrUnavailable = errors.New("sgx: native engine not compiled in (build with -tags sgxnative)")
