package status_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enclavecrypt/internal/status"
)

func TestSuccessTranslatesToNil(t *testing.T) {
	assert.NoError(t, status.Context("open", status.Success))
	assert.NoError(t, status.Operation("sign", status.Success))
}

func TestOperationFailurePreservesCode(t *testing.T) {
	err := status.Operation("ecdsa_sign", status.ErrorInvalidParameter)
	require.Error(t, err)

	var opErr *status.CryptoOperationFailure
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "ecdsa_sign", opErr.Op)
	assert.Equal(t, status.ErrorInvalidParameter, opErr.Code)
	assert.ErrorIs(t, err, status.ErrOperation)
	assert.NotErrorIs(t, err, status.ErrContext)
	assert.Contains(t, err.Error(), "SGX_ERROR_INVALID_PARAMETER")
	assert.Contains(t, err.Error(), "0x0002")
}

func TestContextFailure(t *testing.T) {
	err := status.Context("close_context", status.ErrorInvalidState)
	var ctxErr *status.ContextFailure
	require.True(t, errors.As(err, &ctxErr))
	assert.Equal(t, status.ErrorInvalidState, ctxErr.Code)
	assert.ErrorIs(t, err, status.ErrContext)
}

func TestUnnamedCodeKeepsRawValue(t *testing.T) {
	c := status.Code(0x7777)
	assert.False(t, c.Known())
	assert.Equal(t, "status(0x7777)", c.String())
	assert.Equal(t, status.CategoryUnknown, c.Category())

	code, ok := status.CodeOf(fmt.Errorf("wrapped: %w", status.Operation("cmac", c)))
	require.True(t, ok)
	assert.Equal(t, c, code)
}

func TestCodeOfPrefersOperation(t *testing.T) {
	err := errors.Join(
		status.Operation("ecdsa_sign", status.ErrorUnexpected),
		status.Context("close_context", status.ErrorInvalidState),
	)
	code, ok := status.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, status.ErrorUnexpected, code)

	_, ok = status.CodeOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestNamesAreUniqueAndCategorised(t *testing.T) {
	seen := map[string]status.Code{}
	for _, c := range status.Codes() {
		name := c.String()
		prev, dup := seen[name]
		require.Falsef(t, dup, "name %s used by 0x%04x and 0x%04x", name, uint32(prev), uint32(c))
		seen[name] = c

		if c == status.Success {
			assert.Equal(t, status.CategoryNone, c.Category())
			continue
		}
		assert.NotEqualf(t, status.CategoryUnknown, c.Category(), "code %s", c)
	}
	assert.Len(t, seen, 45)
}

func TestCategories(t *testing.T) {
	cases := map[status.Code]status.Category{
		status.ErrorOutOfMemory:        status.CategoryGeneric,
		status.ErrorStackOverrun:       status.CategoryEnclave,
		status.ErrorUndefinedSymbol:    status.CategoryEnclaveImage,
		status.ErrorInvalidMisc:        status.CategoryEnclaveImage,
		status.ErrorMACMismatch:        status.CategoryProvisioning,
		status.ErrorServiceUnavailable: status.CategoryPlatformService,
		status.ErrorKDFMismatch:        status.CategoryPlatformService,
	}
	for c, want := range cases {
		assert.Equalf(t, want, c.Category(), "code %s", c)
	}
}
