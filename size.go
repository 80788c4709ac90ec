package rtfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeValue is an optional interface for values referenced as an
// indirect width or precision. AsSize reports the value as a
// non-negative size; ok is false when the value cannot act as one.
type SizeValue interface {
	AsSize() (size int, ok bool)
}

// resolveSize converts a width or precision token to a concrete size.
// Tokens ending in $ are indirect: a leading digit makes the remainder
// a positional index, anything else a name. Indirect lookups never
// advance the cursor. Every other token is a literal decimal size.
func resolveSize(token string, src ArgumentSource) (int, error) {
	if ref, ok := strings.CutSuffix(token, "$"); ok && ref != "" && src != nil {
		if ref[0] >= '0' && ref[0] <= '9' {
			idx, err := strconv.Atoi(ref)
			if err != nil {
				return 0, fmt.Errorf("%w: index %q", ErrInvalidSize, ref)
			}
			v, found := src.ByIndex(idx)
			if !found {
				return 0, fmt.Errorf("%w: no positional argument %d", ErrInvalidSize, idx)
			}
			return valueAsSize(v, token)
		}
		v, found := src.ByName(ref)
		if !found {
			return 0, fmt.Errorf("%w: no named argument %q", ErrInvalidSize, ref)
		}
		return valueAsSize(v, token)
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, token)
	}
	return n, nil
}

func valueAsSize(v Value, token string) (int, error) {
	if sv, ok := v.(SizeValue); ok {
		if n, ok := sv.AsSize(); ok {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: argument %q is not a size", ErrInvalidSize, token)
}
