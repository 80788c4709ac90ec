package rtfmt

import (
	"bytes"
	"io"
)

// Segment is one piece of a parsed template: either literal text or a
// resolved argument with its specifier. Text segments have a nil
// Value; argument segments have an empty Text.
type Segment struct {
	Text  string
	Value Value
	Spec  Specifier
}

// ParsedFormat is a fully resolved template. All argument lookups and
// support checks happened during [Parse], so rendering cannot fail and
// may be repeated any number of times.
type ParsedFormat struct {
	segments []Segment
}

// Segments returns a copy of the parsed segments in template order.
func (p *ParsedFormat) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// WriteTo renders the segments to w. The only possible errors are w's
// own write errors.
func (p *ParsedFormat) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, seg := range p.segments {
		s := seg.Text
		if seg.Value != nil {
			s = FormatValue(seg.Value, seg.Spec)
		}
		n, err := io.WriteString(w, s)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the segments to a string.
func (p *ParsedFormat) String() string {
	var buf bytes.Buffer
	_, _ = p.WriteTo(&buf)
	return buf.String()
}
