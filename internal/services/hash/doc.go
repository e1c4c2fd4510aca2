// Package hash computes SHA-256 digests through the native engine. No
// context is required.
package hash
