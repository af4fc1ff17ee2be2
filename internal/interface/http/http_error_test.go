package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/qa-service/internal/domain/qa"
)

func TestTranslateError_Taxonomy(t *testing.T) {
	_, parseErr := strconv.Atoi("x")
	tests := []struct {
		name         string
		err          error
		legacy       int
		conventional int
		code         string
	}{
		{"parse", qa.ParseError(parseErr), 416, 400, qa.CodeParseError},
		{"missing", qa.ErrMissingParameters, 416, 400, qa.CodeMissingParameters},
		{"start>end", qa.ErrStartGreaterThanEnd, 416, 400, qa.CodeStartGreaterThanEnd},
		{"end>len", qa.ErrEndExceedsLength, 416, 400, qa.CodeEndExceedsLength},
		{"storage", qa.StorageError(errors.New("pool closed")), 416, 500, qa.CodeStorageError},
		{"not found", qa.ErrItemNotFound, 404, 404, qa.CodeItemNotFound},
		{"wrapped not found", fmt.Errorf("update: %w", qa.ErrItemNotFound), 404, 404, qa.CodeItemNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			legacy := translateError(tc.err, true)
			require.Equal(t, tc.legacy, legacy.Status)
			require.Equal(t, tc.code, legacy.Code)

			conventional := translateError(tc.err, false)
			require.Equal(t, tc.conventional, conventional.Status)
			require.Equal(t, tc.code, conventional.Code)
		})
	}
}

func TestTranslateError_Messages(t *testing.T) {
	_, parseErr := strconv.Atoi("abc")
	require.Contains(t, translateError(qa.ParseError(parseErr), true).Message, "Cannot parse parameter: ")
	require.Equal(t, "Item not found", translateError(qa.ErrItemNotFound, true).Message)

	storage := translateError(qa.StorageError(errors.New("password authentication failed")), true)
	require.Equal(t, "Database query error", storage.Message)
	require.NotContains(t, storage.Message, "password")
}

func TestTranslateError_UnknownFallsBackToRouteNotFound(t *testing.T) {
	got := translateError(errors.New("unexpected"), true)
	require.Equal(t, http.StatusNotFound, got.Status)
	require.Equal(t, codeRouteNotFound, got.Code)
	require.Equal(t, "Route not found", got.Message)
}

func TestTranslateError_KeepsHTTPErrors(t *testing.T) {
	in := NewHTTPError(http.StatusUnprocessableEntity, codeInvalidBody, "bad json", nil)
	require.Same(t, in, translateError(in, true))
	require.Nil(t, translateError(nil, true))
}
