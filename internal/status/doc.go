// Package status translates native engine status codes into typed errors.
//
// The engine reports every call outcome as a flat integer code where zero is
// success. Codes are grouped into categories (generic, enclave call, enclave
// image, provisioning and platform service). The package does not assign
// policy to individual codes: every non-zero code is a failure, and the raw
// value is preserved on the returned error for diagnostics.
//
// Two failure kinds exist:
//
//   - ContextFailure: opening or closing a context handle failed.
//   - CryptoOperationFailure: a primitive call (key generation, DH, derive,
//     sign, the call portion of verify, CMAC, SHA-256) failed.
package status
