package crypto

// SGX stores every 256-bit scalar and coordinate little-endian; crypto/ecdh
// and math/big want big-endian.

// reversed returns a copy of b with its byte order reversed.
func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// reverse flips b in place.
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
