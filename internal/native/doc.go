// Package native defines the boundary between the service layer and the
// cryptographic engine.
//
// Engine mirrors the engine's C ABI one call at a time: fixed-size buffers are
// passed as pointers to arrays, variable-length input carries an explicit
// length, and every call returns a status.Code. Implementations live in
// subpackages: soft (pure Go reference engine), sgx (cgo binding to the host
// crypto library) and nativetest (counting, fault-injecting wrapper).
package native
