package status

import (
	"errors"
	"fmt"
)

var (
	// ErrContext matches any ContextFailure via errors.Is.
	ErrContext = errors.New("crypto context failure")
	// ErrOperation matches any CryptoOperationFailure via errors.Is.
	ErrOperation = errors.New("crypto operation failure")
)

// ContextFailure is returned when opening or closing a context fails.
type ContextFailure struct {
	Op   string
	Code Code
}

func (e *ContextFailure) Error() string {
	return fmt.Sprintf("%s: %v: %s (0x%04x)", e.Op, ErrContext, e.Code, uint32(e.Code))
}

// Is reports whether target is ErrContext.
func (e *ContextFailure) Is(target error) bool { return target == ErrContext }

// CryptoOperationFailure is returned when a primitive call reports a
// non-success status.
type CryptoOperationFailure struct {
	Op   string
	Code Code
}

func (e *CryptoOperationFailure) Error() string {
	return fmt.Sprintf("%s: %v: %s (0x%04x)", e.Op, ErrOperation, e.Code, uint32(e.Code))
}

// Is reports whether target is ErrOperation.
func (e *CryptoOperationFailure) Is(target error) bool { return target == ErrOperation }

// Context converts the status of a context open/close call into an error.
// It returns nil for Success.
func Context(op string, c Code) error {
	if c.OK() {
		return nil
	}
	return &ContextFailure{Op: op, Code: c}
}

// Operation converts the status of a primitive call into an error.
// It returns nil for Success.
func Operation(op string, c Code) error {
	if c.OK() {
		return nil
	}
	return &CryptoOperationFailure{Op: op, Code: c}
}

// CodeOf extracts the raw code from the first typed failure in err's chain.
// An operation failure wins over a context failure when both are present.
func CodeOf(err error) (Code, bool) {
	var opErr *CryptoOperationFailure
	if errors.As(err, &opErr) {
		return opErr.Code, true
	}
	var ctxErr *ContextFailure
	if errors.As(err, &ctxErr) {
		return ctxErr.Code, true
	}
	return Success, false
}
