package rtfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"
)

// IntValue adapts a signed integer. It supports every format kind and
// can act as an indirect size when non-negative.
type IntValue int64

// Supports accepts every specifier.
func (v IntValue) Supports(Specifier) bool { return true }

// Display renders the decimal form. Precision has no meaning for
// integers and is ignored.
func (v IntValue) Display(Precision) string { return strconv.FormatInt(int64(v), 10) }

// Debug renders the same as Display.
func (v IntValue) Debug(prec Precision) string { return v.Display(prec) }

func (v IntValue) Octal(Precision) string    { return strconv.FormatInt(int64(v), 8) }
func (v IntValue) LowerHex(Precision) string { return strconv.FormatInt(int64(v), 16) }
func (v IntValue) UpperHex(Precision) string {
	return strings.ToUpper(strconv.FormatInt(int64(v), 16))
}
func (v IntValue) Binary(Precision) string   { return strconv.FormatInt(int64(v), 2) }
func (v IntValue) LowerExp(Precision) string { return intExp(v.Display(Precision{}), 'e') }
func (v IntValue) UpperExp(Precision) string { return intExp(v.Display(Precision{}), 'E') }

// Numeric reports numeric output for alignment, sign, and padding.
func (v IntValue) Numeric() bool { return true }

// AsSize reports the value as an indirect width or precision.
func (v IntValue) AsSize() (int, bool) {
	if v < 0 {
		return 0, false
	}
	n, err := safecast.Conv[int](int64(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// UintValue adapts an unsigned integer. It supports every format kind
// and can always act as an indirect size.
type UintValue uint64

// Supports accepts every specifier.
func (v UintValue) Supports(Specifier) bool { return true }

// Display renders the decimal form, ignoring precision.
func (v UintValue) Display(Precision) string { return strconv.FormatUint(uint64(v), 10) }

// Debug renders the same as Display.
func (v UintValue) Debug(prec Precision) string { return v.Display(prec) }

func (v UintValue) Octal(Precision) string    { return strconv.FormatUint(uint64(v), 8) }
func (v UintValue) LowerHex(Precision) string { return strconv.FormatUint(uint64(v), 16) }
func (v UintValue) UpperHex(Precision) string {
	return strings.ToUpper(strconv.FormatUint(uint64(v), 16))
}
func (v UintValue) Binary(Precision) string   { return strconv.FormatUint(uint64(v), 2) }
func (v UintValue) LowerExp(Precision) string { return intExp(v.Display(Precision{}), 'e') }
func (v UintValue) UpperExp(Precision) string { return intExp(v.Display(Precision{}), 'E') }

// Numeric reports numeric output for alignment, sign, and padding.
func (v UintValue) Numeric() bool { return true }

// AsSize reports the value as an indirect width or precision.
func (v UintValue) AsSize() (int, bool) {
	n, err := safecast.Conv[int](uint64(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// FloatValue adapts a floating-point number. It supports the display,
// debug, and exponent format kinds.
type FloatValue float64

// Supports accepts display, debug, and the two exponent kinds.
func (v FloatValue) Supports(spec Specifier) bool {
	switch spec.Format {
	case FormatDisplay, FormatDebug, FormatLowerExp, FormatUpperExp:
		return true
	default:
		return false
	}
}

// Display renders the shortest decimal form that round-trips, or a
// fixed number of fractional digits when precision is set.
func (v FloatValue) Display(prec Precision) string {
	f := float64(v)
	if s, ok := floatSpecial(f); ok {
		return s
	}
	digits := -1
	if prec.Valid {
		digits = prec.Digits
	}
	return strconv.FormatFloat(f, 'f', digits, 64)
}

// Debug renders like Display except that integral values keep a
// trailing .0.
func (v FloatValue) Debug(prec Precision) string {
	if _, ok := floatSpecial(float64(v)); ok {
		return v.Display(prec)
	}
	s := v.Display(prec)
	if !prec.Valid && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (v FloatValue) Octal(Precision) string    { return "" }
func (v FloatValue) LowerHex(Precision) string { return "" }
func (v FloatValue) UpperHex(Precision) string { return "" }
func (v FloatValue) Binary(Precision) string   { return "" }

// LowerExp renders scientific notation with a bare exponent: 4.2e1,
// not 4.2e+01.
func (v FloatValue) LowerExp(prec Precision) string { return v.exp('e', prec) }

// UpperExp renders like LowerExp with an upper-case marker.
func (v FloatValue) UpperExp(prec Precision) string { return v.exp('E', prec) }

func (v FloatValue) exp(marker byte, prec Precision) string {
	f := float64(v)
	if s, ok := floatSpecial(f); ok {
		return s
	}
	digits := -1
	if prec.Valid {
		digits = prec.Digits
	}
	return cleanExponent(strconv.FormatFloat(f, marker, digits, 64), marker)
}

// Numeric reports numeric output for alignment, sign, and padding.
func (v FloatValue) Numeric() bool { return true }

// StringValue adapts a string. It supports the display and debug
// format kinds; precision truncates to a maximum display width.
type StringValue string

// Supports accepts display and debug.
func (v StringValue) Supports(spec Specifier) bool {
	return spec.Format == FormatDisplay || spec.Format == FormatDebug
}

// Display renders the string, truncated to precision display cells
// when precision is set.
func (v StringValue) Display(prec Precision) string {
	if prec.Valid {
		return runewidth.Truncate(string(v), prec.Digits, "")
	}
	return string(v)
}

// Debug renders the truncated string as a quoted literal.
func (v StringValue) Debug(prec Precision) string {
	return strconv.Quote(v.Display(prec))
}

func (v StringValue) Octal(Precision) string    { return "" }
func (v StringValue) LowerHex(Precision) string { return "" }
func (v StringValue) UpperHex(Precision) string { return "" }
func (v StringValue) Binary(Precision) string   { return "" }
func (v StringValue) LowerExp(Precision) string { return "" }
func (v StringValue) UpperExp(Precision) string { return "" }

// BoolValue adapts a boolean. It supports the display and debug
// format kinds.
type BoolValue bool

// Supports accepts display and debug.
func (v BoolValue) Supports(spec Specifier) bool {
	return spec.Format == FormatDisplay || spec.Format == FormatDebug
}

// Display renders true or false.
func (v BoolValue) Display(Precision) string { return strconv.FormatBool(bool(v)) }

// Debug renders the same as Display.
func (v BoolValue) Debug(prec Precision) string { return v.Display(prec) }

func (v BoolValue) Octal(Precision) string    { return "" }
func (v BoolValue) LowerHex(Precision) string { return "" }
func (v BoolValue) UpperHex(Precision) string { return "" }
func (v BoolValue) Binary(Precision) string   { return "" }
func (v BoolValue) LowerExp(Precision) string { return "" }
func (v BoolValue) UpperExp(Precision) string { return "" }

// NewValue adapts a Go value to the [Value] interface. Values already
// implementing Value pass through unchanged; built-in integers,
// floats, strings, booleans, and [fmt.Stringer] implementations get
// the matching adapter. Anything else is [ErrInvalidValue].
func NewValue(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case int:
		return IntValue(x), nil
	case int8:
		return IntValue(x), nil
	case int16:
		return IntValue(x), nil
	case int32:
		return IntValue(x), nil
	case int64:
		return IntValue(x), nil
	case uint:
		return UintValue(x), nil
	case uint8:
		return UintValue(x), nil
	case uint16:
		return UintValue(x), nil
	case uint32:
		return UintValue(x), nil
	case uint64:
		return UintValue(x), nil
	case float32:
		return FloatValue(x), nil
	case float64:
		return FloatValue(x), nil
	case string:
		return StringValue(x), nil
	case bool:
		return BoolValue(x), nil
	case fmt.Stringer:
		return StringValue(x.String()), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidValue, v)
	}
}

// Args adapts a list of Go values into positional arguments for [Parse].
func Args(values ...any) (Values, error) {
	out := make(Values, 0, len(values))
	for i, v := range values {
		val, err := NewValue(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, val)
	}
	return out, nil
}

// Named adapts a map of Go values into named arguments for [Parse].
func Named(values map[string]any) (ValueMap, error) {
	out := make(ValueMap, len(values))
	for name, v := range values {
		val, err := NewValue(v)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		out[name] = val
	}
	return out, nil
}

// intExp renders a decimal digit string in scientific notation with
// all significant digits: 420 becomes 4.2e2, 0 becomes 0e0.
func intExp(digits string, marker byte) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	mantissa := strings.TrimRight(digits, "0")
	if mantissa == "" {
		return "0" + string(marker) + "0"
	}
	out := mantissa[:1]
	if len(mantissa) > 1 {
		out += "." + mantissa[1:]
	}
	out += string(marker) + strconv.Itoa(len(digits)-1)
	if neg {
		out = "-" + out
	}
	return out
}

// cleanExponent rewrites Go's signed two-digit exponent ("4.2e+01")
// into the bare form ("4.2e1"): no plus sign, no leading zeros.
func cleanExponent(s string, marker byte) string {
	i := strings.IndexByte(s, marker)
	if i < 0 {
		return s
	}
	mantissa, exp := s[:i], s[i+1:]
	neg := false
	switch {
	case strings.HasPrefix(exp, "+"):
		exp = exp[1:]
	case strings.HasPrefix(exp, "-"):
		neg = true
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mantissa + string(marker) + exp
}

func floatSpecial(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "inf", true
	case math.IsInf(f, -1):
		return "-inf", true
	}
	return "", false
}
