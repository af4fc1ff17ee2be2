package qa

import (
	"errors"
	"math"
	"net/url"
	"strconv"
)

// Query parameter names understood by ExtractPagination.
const (
	ParamStart  = "start"
	ParamEnd    = "end"
	ParamLimit  = "limit"
	ParamOffset = "offset"
)

// Pagination is either an IndexRange or a LimitOffset. A nil Pagination
// lists the whole collection.
type Pagination interface {
	// Window resolves the variant against a collection of the given length
	// and returns the half-open [lo, hi) slice bounds.
	Window(length int) (lo, hi int, err error)
	isPagination()
}

// IndexRange selects collection[Start:End].
type IndexRange struct {
	Start int
	End   int
}

// Window checks Start <= End <= length before any slicing happens.
func (r IndexRange) Window(length int) (int, int, error) {
	if r.Start > r.End {
		return 0, 0, ErrStartGreaterThanEnd
	}
	if r.End > length {
		return 0, 0, ErrEndExceedsLength
	}
	return r.Start, r.End, nil
}

func (IndexRange) isPagination() {}

// LimitOffset skips Offset rows and returns at most Limit of the rest. A nil
// Limit means no limit.
type LimitOffset struct {
	Limit  *int
	Offset int
}

// Window clamps the range to the collection; it never fails.
func (p LimitOffset) Window(length int) (int, int, error) {
	lo := min(p.Offset, length)
	hi := length
	if p.Limit != nil && *p.Limit < hi-lo {
		hi = lo + *p.Limit
	}
	return lo, hi, nil
}

func (LimitOffset) isPagination() {}

// ExtractPagination turns raw query parameters into a Pagination.
//
//	?start=0&end=10     -> IndexRange
//	?limit=5&offset=10  -> LimitOffset (limit optional)
//	(no parameters)     -> nil
//
// Anything else fails with ErrMissingParameters, and non-numeric or negative
// values fail with a parse_error.
func ExtractPagination(params url.Values) (Pagination, error) {
	if len(params) == 0 {
		return nil, nil
	}

	hasStart, hasEnd := params.Has(ParamStart), params.Has(ParamEnd)
	if hasStart && hasEnd {
		start, err := parseIndex(params.Get(ParamStart))
		if err != nil {
			return nil, err
		}
		end, err := parseIndex(params.Get(ParamEnd))
		if err != nil {
			return nil, err
		}
		return IndexRange{Start: start, End: end}, nil
	}
	if hasStart || hasEnd {
		return nil, ErrMissingParameters
	}

	if !params.Has(ParamOffset) {
		return nil, ErrMissingParameters
	}
	offset, err := parseIndex(params.Get(ParamOffset))
	if err != nil {
		return nil, err
	}
	page := LimitOffset{Offset: offset}
	if params.Has(ParamLimit) {
		limit, err := parseIndex(params.Get(ParamLimit))
		if err != nil {
			return nil, err
		}
		page.Limit = &limit
	}
	return page, nil
}

var errIndexTooLarge = errors.New("value out of range")

func parseIndex(raw string) (int, error) {
	n, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, ParseError(err)
	}
	if n > math.MaxInt {
		return 0, ParseError(errIndexTooLarge)
	}
	return int(n), nil
}
