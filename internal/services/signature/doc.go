// Package signature signs and verifies data with ECDSA-P256.
//
// Verify separates two outcomes that the engine reports on different axes:
// the call's own status (a non-zero status is an error) and the verification
// result byte (anything other than valid is a false result, not an error).
package signature
