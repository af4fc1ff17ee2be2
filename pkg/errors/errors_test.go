package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap("storage_error", "Database query error", cause)

	require.Equal(t, "Database query error: connection refused", err.Error())
	require.ErrorIs(t, err, cause)
	require.Equal(t, "Item not found", Wrap("item_not_found", "Item not found", nil).Error())
}

func TestCodeOf(t *testing.T) {
	err := fmt.Errorf("update: %w", Wrap("item_not_found", "Item not found", nil))

	require.Equal(t, "item_not_found", CodeOf(err))
	require.True(t, IsCode(err, "item_not_found"))
	require.False(t, IsCode(err, "parse_error"))
	require.Empty(t, CodeOf(errors.New("plain")))
	require.Empty(t, CodeOf(nil))
}
