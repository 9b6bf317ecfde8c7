// Package parse turns the harness input text into a sequence.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Int64s parses a comma or whitespace separated list of integers,
// e.g. "0,0,1,1,1,2,2,3,3,4". Empty input yields an empty slice.
func Int64s(text string) ([]int64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Sorted reports whether s is in non-decreasing order. The compactor
// does not check this itself; the harness uses it to warn the caller.
func Sorted(s []int64) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
