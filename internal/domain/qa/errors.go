package qa

import (
	apperrors "github.com/yanqian/qa-service/pkg/errors"
)

// Error codes form the closed set of failures surfaced by this package.
const (
	CodeParseError          = "parse_error"
	CodeMissingParameters   = "missing_parameters"
	CodeItemNotFound        = "item_not_found"
	CodeStartGreaterThanEnd = "start_greater_than_end"
	CodeEndExceedsLength    = "end_exceeds_length"
	CodeStorageError        = "storage_error"
)

var (
	// ErrMissingParameters reports an incomplete pagination pair.
	ErrMissingParameters = apperrors.Wrap(CodeMissingParameters, "Missing parameter", nil)
	// ErrItemNotFound reports an unknown identifier on update or delete.
	ErrItemNotFound = apperrors.Wrap(CodeItemNotFound, "Item not found", nil)
	// ErrStartGreaterThanEnd reports an inverted index range.
	ErrStartGreaterThanEnd = apperrors.Wrap(CodeStartGreaterThanEnd, "Start cannot be greater than end parameter", nil)
	// ErrEndExceedsLength reports an index range past the end of the collection.
	ErrEndExceedsLength = apperrors.Wrap(CodeEndExceedsLength, "End parameter exceeds item list length", nil)
)

// ParseError wraps a malformed parameter failure.
func ParseError(err error) error {
	return apperrors.Wrap(CodeParseError, "Cannot parse parameter", err)
}

// StorageError wraps a backend failure.
func StorageError(err error) error {
	return apperrors.Wrap(CodeStorageError, "Database query error", err)
}

// IsTaxonomy reports whether err already carries one of the codes above.
func IsTaxonomy(err error) bool {
	switch apperrors.CodeOf(err) {
	case CodeParseError, CodeMissingParameters, CodeItemNotFound,
		CodeStartGreaterThanEnd, CodeEndExceedsLength, CodeStorageError:
		return true
	default:
		return false
	}
}
