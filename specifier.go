package rtfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Align positions output that is narrower than the field width.
// AlignNone defers to the value's default: right for numeric output,
// left for everything else.
type Align int

const (
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Sign controls the sign of numeric output.
type Sign int

const (
	SignDefault Sign = iota // sign only on negative values
	SignAlways              // force + on non-negative values
)

// Repr selects the alternate representation, which prefixes octal,
// hex, and binary output with 0o, 0x, and 0b.
type Repr int

const (
	ReprDefault Repr = iota
	ReprAlt
)

// Pad selects the fill for numeric output narrower than the field
// width. PadZero fills with zeros between the sign or prefix and the
// digits, overriding alignment.
type Pad int

const (
	PadSpace Pad = iota
	PadZero
)

// Format selects one of the eight elementary rendering modes.
type Format int

const (
	FormatDisplay Format = iota
	FormatDebug
	FormatOctal
	FormatLowerHex
	FormatUpperHex
	FormatBinary
	FormatLowerExp
	FormatUpperExp
)

var (
	aligns  = []Align{AlignNone, AlignLeft, AlignCenter, AlignRight}
	signs   = []Sign{SignDefault, SignAlways}
	reprs   = []Repr{ReprDefault, ReprAlt}
	pads    = []Pad{PadSpace, PadZero}
	formats = []Format{
		FormatDisplay, FormatDebug, FormatOctal, FormatLowerHex,
		FormatUpperHex, FormatBinary, FormatLowerExp, FormatUpperExp,
	}
)

// String returns the specifier fragment for a, empty for AlignNone.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "<"
	case AlignCenter:
		return "^"
	case AlignRight:
		return ">"
	default:
		return ""
	}
}

// String returns the specifier fragment for s, empty for SignDefault.
func (s Sign) String() string {
	if s == SignAlways {
		return "+"
	}
	return ""
}

// String returns the specifier fragment for r, empty for ReprDefault.
func (r Repr) String() string {
	if r == ReprAlt {
		return "#"
	}
	return ""
}

// String returns the specifier fragment for p, empty for PadSpace.
func (p Pad) String() string {
	if p == PadZero {
		return "0"
	}
	return ""
}

// String returns the specifier fragment for f, empty for FormatDisplay.
func (f Format) String() string {
	switch f {
	case FormatDebug:
		return "?"
	case FormatOctal:
		return "o"
	case FormatLowerHex:
		return "x"
	case FormatUpperHex:
		return "X"
	case FormatBinary:
		return "b"
	case FormatLowerExp:
		return "e"
	case FormatUpperExp:
		return "E"
	default:
		return ""
	}
}

// ParseAlign parses an alignment fragment. The empty string is AlignNone.
func ParseAlign(s string) (Align, error) {
	for _, a := range aligns {
		if a.String() == s {
			return a, nil
		}
	}
	return AlignNone, fmt.Errorf("%w: align %q", ErrInvalidSpecifier, s)
}

// ParseSign parses a sign fragment. The empty string is SignDefault.
func ParseSign(s string) (Sign, error) {
	for _, v := range signs {
		if v.String() == s {
			return v, nil
		}
	}
	return SignDefault, fmt.Errorf("%w: sign %q", ErrInvalidSpecifier, s)
}

// ParseRepr parses a representation fragment. The empty string is ReprDefault.
func ParseRepr(s string) (Repr, error) {
	for _, r := range reprs {
		if r.String() == s {
			return r, nil
		}
	}
	return ReprDefault, fmt.Errorf("%w: repr %q", ErrInvalidSpecifier, s)
}

// ParsePad parses a padding fragment. The empty string is PadSpace.
func ParsePad(s string) (Pad, error) {
	for _, p := range pads {
		if p.String() == s {
			return p, nil
		}
	}
	return PadSpace, fmt.Errorf("%w: pad %q", ErrInvalidSpecifier, s)
}

// ParseFormat parses a format-kind fragment. The empty string is
// FormatDisplay.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if f.String() == s {
			return f, nil
		}
	}
	return FormatDisplay, fmt.Errorf("%w: format %q", ErrInvalidSpecifier, s)
}

// Width is the minimum-width dimension of a specifier. The zero value
// places no minimum on the output.
type Width struct {
	Min   int
	Valid bool
}

// AtLeast returns a Width of at least n display cells.
func AtLeast(n int) Width { return Width{Min: n, Valid: true} }

// String returns the width fragment, empty when no width is set.
func (w Width) String() string {
	if !w.Valid {
		return ""
	}
	return strconv.Itoa(w.Min)
}

// Precision is the precision dimension of a specifier. The zero value
// leaves precision to the value's natural rendering.
type Precision struct {
	Digits int
	Valid  bool
}

// Exactly returns a Precision of exactly n digits. String values treat
// n as a maximum display width instead.
func Exactly(n int) Precision { return Precision{Digits: n, Valid: true} }

// String returns the precision fragment without the leading dot, empty
// when no precision is set.
func (p Precision) String() string {
	if !p.Valid {
		return ""
	}
	return strconv.Itoa(p.Digits)
}

// Specifier is the resolved set of formatting modifiers for one
// placeholder: seven independent dimensions, each defaulting to its
// zero value. The zero Specifier is what "{}" produces. Indirect width
// and precision references are resolved during parsing, so a Specifier
// always carries concrete sizes.
type Specifier struct {
	Align     Align
	Sign      Sign
	Repr      Repr
	Pad       Pad
	Width     Width
	Precision Precision
	Format    Format
}

// String returns the canonical specifier fragment, such as ">+#042.17E".
// Parsing the result with [ParseSpecifier] yields an equal Specifier.
func (s Specifier) String() string {
	var sb strings.Builder
	sb.WriteString(s.Align.String())
	sb.WriteString(s.Sign.String())
	sb.WriteString(s.Repr.String())
	sb.WriteString(s.Pad.String())
	sb.WriteString(s.Width.String())
	if s.Precision.Valid {
		sb.WriteByte('.')
		sb.WriteString(s.Precision.String())
	}
	sb.WriteString(s.Format.String())
	return sb.String()
}
