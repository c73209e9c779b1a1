package seatmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxColumn is the largest column number a seat code may carry.
const MaxColumn = 1000

// ErrMalformedCode is matched by every *ParseError.
var ErrMalformedCode = errors.New("malformed seat code")

// ParseError reports a seat code that does not split into a row prefix
// and a positive column number.
type ParseError struct {
	Code   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("seat code %q: %s", e.Code, e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrMalformedCode }

// ParseCode splits a seat code such as "C4" into its row ("C") and column (4).
// The row is every leading non-digit character; the rest must be an integer
// between 1 and MaxColumn.
func ParseCode(code string) (string, int, error) {
	s := strings.TrimSpace(code)
	i := strings.IndexFunc(s, isDigit)
	if i < 0 {
		return "", 0, &ParseError{Code: code, Reason: "missing column number"}
	}
	if i == 0 {
		return "", 0, &ParseError{Code: code, Reason: "missing row"}
	}
	row, rest := s[:i], s[i:]
	col, err := strconv.Atoi(rest)
	if err != nil {
		return "", 0, &ParseError{Code: code, Reason: "column is not an integer"}
	}
	if col < 1 {
		return "", 0, &ParseError{Code: code, Reason: "column must be positive"}
	}
	if col > MaxColumn {
		return "", 0, &ParseError{Code: code, Reason: "column exceeds " + strconv.Itoa(MaxColumn)}
	}
	return row, col, nil
}

// FormatCode is the inverse of ParseCode and yields the canonical seat id.
func FormatCode(row string, column int) string {
	return row + strconv.Itoa(column)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
