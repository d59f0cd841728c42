package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_WrapsSentinel(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Transport("listProducts", cause)

	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, "listProducts", err.Op)
	assert.Zero(t, err.Status)
	assert.Contains(t, err.Error(), "listProducts")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestServer_CarriesStatus(t *testing.T) {
	err := Server("deleteProduct", 503, "service unavailable")

	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, 503, err.Status)
	assert.Contains(t, err.Error(), "status 503")
}

func TestDecode_WrapsSentinel(t *testing.T) {
	err := Decode("listCartItems", errors.New("unexpected token"))

	assert.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "malformed response")
}

func TestRequestError_UnwrapChain(t *testing.T) {
	err := Request("updateProduct", 404, fmt.Errorf("%w: product gone", ErrNotFound))

	assert.ErrorIs(t, err, ErrNotFound)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "updateProduct", reqErr.Op)
}

func TestOpOf(t *testing.T) {
	err := Server("upsertCartItem", 500, "boom")
	assert.Equal(t, "upsertCartItem", OpOf(err))

	wrapped := Wrap(err, "add to cart")
	assert.Equal(t, "upsertCartItem", OpOf(wrapped))

	assert.Empty(t, OpOf(errors.New("plain")))
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("price must be a number")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "price must be a number")
}
