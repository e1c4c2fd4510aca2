// Package commands defines the enclavecrypt CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen     Generate a P-256 key pair
//   - shared     Compute a DH shared secret
//   - derive     Derive a 128-bit key from a shared secret and label
//   - sign       ECDSA-sign a message
//   - verify     Verify an ECDSA signature
//   - cmac       AES-128-CMAC a message
//   - sha256     Hash a message
//   - handshake  Run an in-process two-party signed key exchange
//   - selftest   Exercise every primitive against the selected engine
//
// Keys, signatures and digests are read and printed as hex. Messages come
// from --data, from --in FILE, or from stdin.
//
// # Implementation
//
// The root command builds the dependency graph (engine, logger, context
// manager, services) before any subcommand runs and flushes the logger when
// it returns.
package commands
