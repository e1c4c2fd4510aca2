// Package keyexchange generates P-256 key pairs and computes Diffie–Hellman
// shared secrets through the native engine.
//
// Each call runs inside its own engine context. Ephemeral groups key
// generation and the DH computation under a single context.
package keyexchange
