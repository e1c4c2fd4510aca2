//go:build sgxnative && cgo

package sgx

/*
#cgo LDFLAGS: -lcrypto_wrapper
#include <stdint.h>
#include <stdlib.h>

typedef uint32_t sgx_status_t;
typedef void*    sgx_ecc_state_handle_t;

sgx_status_t sgx_ecc256_open_context(sgx_ecc_state_handle_t* p_ecc_handle);
sgx_status_t sgx_ecc256_close_context(sgx_ecc_state_handle_t ecc_handle);
sgx_status_t sgx_ecc256_create_key_pair(uint8_t* p_private, uint8_t* p_public, sgx_ecc_state_handle_t ecc_handle);
sgx_status_t sgx_ecc256_compute_shared_dhkey(uint8_t* p_private_b, uint8_t* p_public_ga, uint8_t* p_shared_key, sgx_ecc_state_handle_t ecc_handle);
sgx_status_t sgx_ecdsa_sign(const uint8_t* p_data, uint32_t data_size, uint8_t* p_private, uint8_t* p_signature, sgx_ecc_state_handle_t ecc_handle);
sgx_status_t sgx_ecdsa_verify(const uint8_t* p_data, uint32_t data_size, const uint8_t* p_public, uint8_t* p_signature, uint8_t* p_result, sgx_ecc_state_handle_t ecc_handle);
sgx_status_t sgx_rijndael128_cmac_msg(const uint8_t* p_key, const uint8_t* p_src, uint32_t src_len, uint8_t* p_mac);
sgx_status_t sgx_sha256_msg(const uint8_t* p_src, uint32_t src_len, uint8_t* p_hash);
uint32_t     derive_key(const uint8_t* p_shared_key, const char* label, uint32_t label_length, uint8_t* p_derived_key);
*/
import "C"

import (
	"unsafe"

	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
)

// Engine calls straight into libcrypto_wrapper. Context pointers returned
// by the library are kept in a handle table.
type Engine struct {
	contexts handleTable[C.sgx_ecc_state_handle_t]
}

// Open returns the linked engine. The library is resolved by the dynamic
// loader (LD_LIBRARY_PATH or rpath).
func Open() (native.Engine, error) { return &Engine{}, nil }

// ptr returns a C pointer to the first byte of b, or nil when b is empty.
// Variable-length inputs go through message first.
func ptr(b []byte) *C.uint8_t {
	if len(b) == 0 {
		return nil
	}
	return (*C.uint8_t)(unsafe.Pointer(&b[0]))
}

func (e *Engine) OpenContext(h *native.Handle) status.Code {
	if h == nil {
		return status.ErrorInvalidParameter
	}
	var ch C.sgx_ecc_state_handle_t
	code := status.Code(C.sgx_ecc256_open_context(&ch))
	if !code.OK() {
		return code
	}
	*h = e.contexts.put(ch)
	return code
}

func (e *Engine) CloseContext(h native.Handle) status.Code {
	ch, ok := e.contexts.remove(h)
	if !ok {
		return status.ErrorInvalidParameter
	}
	return status.Code(C.sgx_ecc256_close_context(ch))
}

func (e *Engine) CreateKeyPair(priv *[native.PrivateKeySize]byte, pub *[native.PublicKeySize]byte, h native.Handle) status.Code {
	ch, ok := e.contexts.get(h)
	if !ok {
		return status.ErrorInvalidParameter
	}
	return status.Code(C.sgx_ecc256_create_key_pair(ptr(priv[:]), ptr(pub[:]), ch))
}

func (e *Engine) ComputeSharedKey(priv *[native.PrivateKeySize]byte, peer *[native.PublicKeySize]byte, shared *[native.SharedKeySize]byte, h native.Handle) status.Code {
	ch, ok := e.contexts.get(h)
	if !ok {
		return status.ErrorInvalidParameter
	}
	return status.Code(C.sgx_ecc256_compute_shared_dhkey(ptr(priv[:]), ptr(peer[:]), ptr(shared[:]), ch))
}

func (e *Engine) DeriveKey(secret *[native.SharedKeySize]byte, label []byte, labelLen uint32, out *[native.DerivedKeySize]byte) status.Code {
	if uint64(labelLen) > uint64(len(label)) {
		return status.ErrorInvalidParameter
	}
	// derive_key reads label through a char*; it is length-delimited, so no
	// terminator is appended.
	return status.Code(C.derive_key(ptr(secret[:]), (*C.char)(unsafe.Pointer(ptr(message(label)))), C.uint32_t(labelLen), ptr(out[:])))
}

func (e *Engine) ECDSASign(data []byte, dataLen uint32, priv *[native.PrivateKeySize]byte, sig *[native.SignatureSize]byte, h native.Handle) status.Code {
	ch, ok := e.contexts.get(h)
	if !ok || uint64(dataLen) > uint64(len(data)) {
		return status.ErrorInvalidParameter
	}
	return status.Code(C.sgx_ecdsa_sign(ptr(message(data)), C.uint32_t(dataLen), ptr(priv[:]), ptr(sig[:]), ch))
}

func (e *Engine) ECDSAVerify(data []byte, dataLen uint32, pub *[native.PublicKeySize]byte, sig *[native.SignatureSize]byte, result *native.VerifyResult, h native.Handle) status.Code {
	ch, ok := e.contexts.get(h)
	if !ok || uint64(dataLen) > uint64(len(data)) || result == nil {
		return status.ErrorInvalidParameter
	}
	res := C.uint8_t(native.InvalidSignature)
	code := status.Code(C.sgx_ecdsa_verify(ptr(message(data)), C.uint32_t(dataLen), ptr(pub[:]), ptr(sig[:]), &res, ch))
	*result = native.VerifyResult(res)
	return code
}

func (e *Engine) CMAC(key *[native.CMACKeySize]byte, data []byte, dataLen uint32, mac *[native.CMACSize]byte) status.Code {
	if uint64(dataLen) > uint64(len(data)) {
		return status.ErrorInvalidParameter
	}
	return status.Code(C.sgx_rijndael128_cmac_msg(ptr(key[:]), ptr(message(data)), C.uint32_t(dataLen), ptr(mac[:])))
}

func (e *Engine) SHA256(data []byte, dataLen uint32, digest *[native.SHA256HashSize]byte) status.Code {
	if uint64(dataLen) > uint64(len(data)) {
		return status.ErrorInvalidParameter
	}
	return status.Code(C.sgx_sha256_msg(ptr(message(data)), C.uint32_t(dataLen), ptr(digest[:])))
}

var _ native.Engine = (*Engine)(nil)
