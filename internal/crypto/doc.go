// Package crypto implements the primitives behind the software engine.
//
// Contents
//
//   - P-256 key generation and Diffie-Hellman (GenerateP256, PublicFromPrivate,
//     DH)
//   - ECDSA-P256 over SHA-256 with raw r‖s signatures (SignP256, VerifyP256)
//   - AES-128 CMAC and the CMAC-based label KDF (CMAC, DeriveKey)
//   - SHA-256 digests (SHA256)
//
// # Notes
//
// Keys travel as fixed-size arrays in the SGX layout: every 256-bit field is
// little-endian. Private scalars are 32 bytes, public points are X‖Y without
// the SEC1 prefix, DH results are the X coordinate and signatures are r‖s.
// Callers should wipe returned secrets with memzero when practical.
package crypto
