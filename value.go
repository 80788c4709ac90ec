package rtfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Value is a single formattable argument. Supports reports whether the
// value can render the given specifier; the elementary methods produce
// the bare rendering for one format kind, before width, alignment,
// sign forcing, and prefixes are applied. Parsing checks Supports once
// per placeholder, so the elementary methods are only invoked for
// specifiers the value accepted.
//
// Precision is passed through because its meaning belongs to the
// renderer: digits for floats, a maximum display width for strings,
// ignored where it has no meaning. Negative numeric output carries its
// leading minus sign; [FormatValue] detaches it when padding.
type Value interface {
	Supports(spec Specifier) bool

	Display(prec Precision) string
	Debug(prec Precision) string
	Octal(prec Precision) string
	LowerHex(prec Precision) string
	UpperHex(prec Precision) string
	Binary(prec Precision) string
	LowerExp(prec Precision) string
	UpperExp(prec Precision) string
}

// Numeric is an optional interface marking values whose Display and
// Debug output is a number. Numeric output right-aligns by default and
// participates in sign forcing and zero padding; the radix and
// exponent format kinds count as numeric regardless of this interface.
type Numeric interface {
	Numeric() bool
}

// FormatValue renders v according to spec. The specifier must be one
// that v supports; [Parse] guarantees this for every segment it emits.
func FormatValue(v Value, spec Specifier) string {
	body := elementary(v, spec)
	numeric := numericOutput(v, spec.Format)

	var sign string
	if numeric {
		if rest, ok := strings.CutPrefix(body, "-"); ok {
			sign, body = "-", rest
		} else if spec.Sign == SignAlways {
			sign = "+"
		}
	}

	var prefix string
	if spec.Repr == ReprAlt {
		switch spec.Format {
		case FormatOctal:
			prefix = "0o"
		case FormatLowerHex, FormatUpperHex:
			prefix = "0x"
		case FormatBinary:
			prefix = "0b"
		}
	}

	if numeric && spec.Pad == PadZero && spec.Width.Valid {
		if fill := spec.Width.Min - runewidth.StringWidth(sign+prefix+body); fill > 0 {
			return sign + prefix + strings.Repeat("0", fill) + body
		}
		return sign + prefix + body
	}

	align := spec.Align
	if align == AlignNone {
		if numeric {
			align = AlignRight
		} else {
			align = AlignLeft
		}
	}
	out := sign + prefix + body
	if !spec.Width.Valid {
		return out
	}
	return alignCell(out, spec.Width.Min, align)
}

func elementary(v Value, spec Specifier) string {
	switch spec.Format {
	case FormatDebug:
		return v.Debug(spec.Precision)
	case FormatOctal:
		return v.Octal(spec.Precision)
	case FormatLowerHex:
		return v.LowerHex(spec.Precision)
	case FormatUpperHex:
		return v.UpperHex(spec.Precision)
	case FormatBinary:
		return v.Binary(spec.Precision)
	case FormatLowerExp:
		return v.LowerExp(spec.Precision)
	case FormatUpperExp:
		return v.UpperExp(spec.Precision)
	default:
		return v.Display(spec.Precision)
	}
}

func numericOutput(v Value, f Format) bool {
	switch f {
	case FormatOctal, FormatLowerHex, FormatUpperHex, FormatBinary,
		FormatLowerExp, FormatUpperExp:
		return true
	default:
		n, ok := v.(Numeric)
		return ok && n.Numeric()
	}
}

// alignCell pads s with spaces to width display cells. Center splits
// the leftover space with the extra cell on the right.
func alignCell(s string, width int, align Align) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
