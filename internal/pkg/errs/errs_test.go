//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"bookwise/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// Marks are invisible to stdlib errors.Is, so any sentinel the HTTP layer
// switches on has to be returned bare. These assertions pin that contract.
func TestMarkVisibility(t *testing.T) {
	cause := errs.New("insufficient slot capacity")
	sentinel := errs.New("no available capacity")

	marked := errs.Mark(cause, sentinel)

	assert.True(t, errors.Is(marked, cause), "the cause chain stays visible through a mark")
	assert.False(t, errors.Is(marked, sentinel), "stdlib matching must not see the mark")
	assert.True(t, errs.Is(marked, sentinel), "errs.Is sees both the chain and the mark")
	assert.True(t, errs.Is(marked, cause))
}

func TestMarkNilCause(t *testing.T) {
	sentinel := errs.New("boom")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}

func TestWrapKeepsChain(t *testing.T) {
	sentinel := errs.New("not found")
	wrapped := errs.Wrap(sentinel, "loading booking")

	assert.True(t, errors.Is(wrapped, sentinel), "wrapping must not break stdlib matching")
	assert.Nil(t, errs.Wrap(nil, "noop"))
}
