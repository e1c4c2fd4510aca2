// Package mac computes AES-128 CMAC tags through the native engine.
package mac
