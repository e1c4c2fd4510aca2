package app

import (
	"fmt"

	"enclavecrypt/internal/native"
	"enclavecrypt/internal/native/sgx"
	"enclavecrypt/internal/native/soft"
)

// OpenEngine returns the engine registered under name.
//
// The sgx engine links against the host crypto library and is only
// available in binaries built with the sgxnative tag.
func OpenEngine(name string) (native.Engine, error) {
	switch name {
	case "", EngineSoftware:
		return soft.New(), nil
	case EngineSGX:
		e, err := sgx.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s engine: %w", name, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want %s or %s)", name, EngineSoftware, EngineSGX)
	}
}
