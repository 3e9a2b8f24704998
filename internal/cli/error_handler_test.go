package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pytick/internal/errors"
)

func TestErrorHandlerHandle(t *testing.T) {
	eh := NewErrorHandler()

	t.Run("app errors use the user message", func(t *testing.T) {
		err := eh.Handle("query entries", errors.NewInvalidInputError("billed", "yes", `must be "true" or "false"`))

		require.Error(t, err)
		assert.Equal(t, `failed to query entries: invalid input for billed: must be "true" or "false"`, err.Error())
	})

	t.Run("plain errors are wrapped and still unwrappable", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := eh.Handle("upload hours.csv", cause)

		require.Error(t, err)
		assert.Equal(t, "failed to upload hours.csv: disk full", err.Error())
		assert.True(t, stderrors.Is(err, cause))
	})
}

func TestErrorHandlerPredicates(t *testing.T) {
	eh := NewErrorHandler()

	assert.True(t, eh.IsInvalidInputError(errors.NewInvalidInputError("hours", "x", "must be a decimal number")))
	assert.True(t, eh.IsFetchError(errors.NewFetchError("projects", 500, nil)))
	assert.True(t, eh.IsWriteError(errors.NewWriteError(0, 422, nil)))
	assert.False(t, eh.IsFetchError(stderrors.New("plain")))
}
