// Package keyderivation derives 128-bit keys from a DH shared secret and a
// label. The label crosses the boundary with its exact length; no terminator
// byte is added or assumed.
package keyderivation
