// Package handshake runs a signed ephemeral Diffie–Hellman exchange between
// two parties and derives the session keys used to protect the channel.
//
// # Overview
//
// Each party holds a long-term ECDSA-P256 identity key pair. A Hello carries:
//   - Identity public key
//   - Ephemeral P-256 public key
//   - Signature by the identity key over the ephemeral public key
//
// # Flow
//
//  1. Both parties call Hello and exchange the results.
//  2. Each calls Complete with the peer's Hello and the identity it expects.
//  3. Complete checks the identity, verifies the signature, computes
//     DH(own ephemeral, peer ephemeral) and derives SMK, SK, MK and VK from
//     the shared secret using those labels.
//  4. Optionally both compute Confirm over the two Hellos and compare tags.
//
// # Errors
//
// ErrUnknownPeer is returned when the Hello's identity is not the expected
// one; ErrPeerSignature when its signature does not verify. Other errors wrap
// service failures and carry the engine status code.
//
// # Security notes
//
// The ephemeral private key is wiped after Complete. A Party is single-use.
package handshake
