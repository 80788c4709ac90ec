package rtfmt

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// specPattern is the inner specifier grammar shared by placeholders
// and [ParseSpecifier]: align, sign, alternate form, zero pad, width,
// precision, and format kind, all optional. Width and precision accept
// literal digits, an explicit index reference ("1$"), or a name
// reference ("name$"); precision additionally accepts "*".
const specPattern = `(?P<align>[<^>])?(?P<sign>\+)?(?P<repr>#)?(?P<pad>0)?` +
	`(?P<width>\d+\$?|[\p{L}_][\p{L}\p{N}_]*\$)?` +
	`(?:\.(?P<precision>\d+\$?|[\p{L}_][\p{L}\p{N}_]*\$|\*))?` +
	`(?P<format>[?oxXbeE])?`

var (
	placeholderRE = regexp.MustCompile(
		`\A\{(?:(?P<index>\d+)|(?P<name>[\p{L}_][\p{L}\p{N}_]*))?(?::` + specPattern + `)?\}`)
	specifierRE = regexp.MustCompile(`\A` + specPattern + `\z`)
)

// ParseSpecifier parses a bare specifier fragment such as ">+#042.17E".
// Indirect width and precision references resolve against src, which
// may be nil when the fragment contains none. The whole input must be
// a valid fragment; the empty string yields the default Specifier.
func ParseSpecifier(s string, src ArgumentSource) (Specifier, error) {
	m := specifierRE.FindStringSubmatchIndex(s)
	if m == nil {
		return Specifier{}, fmt.Errorf("%w: %q", ErrInvalidSpecifier, s)
	}
	return buildSpecifier(captures{re: specifierRE, m: m, text: s}, src)
}

// Tokenizer splits a template into segments, resolving each
// placeholder's arguments as it goes. It follows the bufio.Scanner
// idiom: Scan advances to the next segment, Segment returns it, and
// Err reports why scanning stopped early. A tokenizer is not
// restartable; the first error discards the remaining input.
type Tokenizer struct {
	rest     string
	consumed int
	src      ArgumentSource
	seg      Segment
	err      error
}

// NewTokenizer returns a tokenizer over template drawing arguments
// from src. A nil src resolves no arguments; templates without
// placeholders still tokenize.
func NewTokenizer(template string, src ArgumentSource) *Tokenizer {
	if src == nil {
		src = NewSource(nil, nil)
	}
	return &Tokenizer{rest: template, src: src}
}

// Scan advances to the next segment. It returns false when the input
// is exhausted or a placeholder fails; Err distinguishes the two.
func (t *Tokenizer) Scan() bool {
	if t.err != nil || len(t.rest) == 0 {
		return false
	}
	i := strings.IndexAny(t.rest, "{}")
	switch {
	case i < 0:
		t.seg = Segment{Text: t.rest}
		t.advance(len(t.rest))
	case i > 0:
		t.seg = Segment{Text: t.rest[:i]}
		t.advance(i)
	default:
		return t.scanBrace()
	}
	return true
}

// Segment returns the segment produced by the last successful Scan.
func (t *Tokenizer) Segment() Segment { return t.seg }

// Err returns the error that stopped scanning, if any. It is always a
// [*ParseError] carrying the byte offset at which the failing
// placeholder began.
func (t *Tokenizer) Err() error { return t.err }

// Segments returns an iterator over the remaining segments. Iteration
// stops at the first error; check Err afterwards.
func (t *Tokenizer) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for t.Scan() {
			if !yield(t.seg) {
				return
			}
		}
	}
}

func (t *Tokenizer) advance(n int) {
	t.rest = t.rest[n:]
	t.consumed += n
}

func (t *Tokenizer) fail(err error) bool {
	t.err = &ParseError{Offset: t.consumed, Err: err}
	t.rest = ""
	return false
}

// scanBrace handles input starting at a brace: a doubled brace is an
// escape, anything else must match the full placeholder grammar.
func (t *Tokenizer) scanBrace() bool {
	if len(t.rest) < 2 {
		return t.fail(fmt.Errorf("%w: lone %q", ErrInvalidPlaceholder, t.rest))
	}
	if t.rest[0] == t.rest[1] {
		t.seg = Segment{Text: t.rest[:1]}
		t.advance(2)
		return true
	}
	m := placeholderRE.FindStringSubmatchIndex(t.rest)
	if m == nil {
		return t.fail(fmt.Errorf("%w: %q", ErrInvalidPlaceholder, placeholderText(t.rest)))
	}
	g := captures{re: placeholderRE, m: m, text: t.rest}

	// The specifier resolves first: an embedded * precision consumes
	// the cursor before the placeholder's own value is looked up.
	spec, err := buildSpecifier(g, t.src)
	if err != nil {
		return t.fail(err)
	}

	var (
		v  Value
		ok bool
	)
	switch {
	case g.get("index") != "":
		idx, convErr := strconv.Atoi(g.get("index"))
		if convErr != nil {
			return t.fail(fmt.Errorf("%w: index %q", ErrInvalidPlaceholder, g.get("index")))
		}
		if v, ok = t.src.ByIndex(idx); !ok {
			return t.fail(fmt.Errorf("%w: no positional argument %d", ErrMissingArgument, idx))
		}
	case g.get("name") != "":
		name := g.get("name")
		if v, ok = t.src.ByName(name); !ok {
			return t.fail(fmt.Errorf("%w: no named argument %q", ErrMissingArgument, name))
		}
	default:
		if v, ok = t.src.Next(); !ok {
			return t.fail(fmt.Errorf("%w: positional arguments exhausted", ErrMissingArgument))
		}
	}
	if !v.Supports(spec) {
		return t.fail(fmt.Errorf("%w: %q not supported by %T", ErrUnsupportedSpecifier, spec, v))
	}

	t.seg = Segment{Value: v, Spec: spec}
	t.advance(m[1])
	return true
}

// captures reads named groups out of a submatch index slice.
type captures struct {
	re   *regexp.Regexp
	m    []int
	text string
}

// get returns the text of the named group, empty when unmatched. No
// group in the grammar matches the empty string, so empty always
// means absent.
func (c captures) get(name string) string {
	i := c.re.SubexpIndex(name)
	if i < 0 || c.m[2*i] < 0 {
		return ""
	}
	return c.text[c.m[2*i]:c.m[2*i+1]]
}

// buildSpecifier assembles a Specifier from capture groups in field
// order. Width resolves before precision, so a * precision observes
// the cursor after any width lookup.
func buildSpecifier(g captures, src ArgumentSource) (Specifier, error) {
	var spec Specifier
	var err error
	if spec.Align, err = ParseAlign(g.get("align")); err != nil {
		return Specifier{}, err
	}
	if spec.Sign, err = ParseSign(g.get("sign")); err != nil {
		return Specifier{}, err
	}
	if spec.Repr, err = ParseRepr(g.get("repr")); err != nil {
		return Specifier{}, err
	}
	if spec.Pad, err = ParsePad(g.get("pad")); err != nil {
		return Specifier{}, err
	}
	if tok := g.get("width"); tok != "" {
		n, err := resolveSize(tok, src)
		if err != nil {
			return Specifier{}, err
		}
		spec.Width = AtLeast(n)
	}
	if tok := g.get("precision"); tok != "" {
		n, err := resolvePrecision(tok, src)
		if err != nil {
			return Specifier{}, err
		}
		spec.Precision = Exactly(n)
	}
	if spec.Format, err = ParseFormat(g.get("format")); err != nil {
		return Specifier{}, err
	}
	return spec, nil
}

// resolvePrecision handles the * token, which consumes the next
// positional argument; every other token goes through resolveSize.
func resolvePrecision(token string, src ArgumentSource) (int, error) {
	if token != "*" {
		return resolveSize(token, src)
	}
	if src == nil {
		return 0, fmt.Errorf("%w: no argument for precision *", ErrInvalidSize)
	}
	v, ok := src.Next()
	if !ok {
		return 0, fmt.Errorf("%w: no argument for precision *", ErrInvalidSize)
	}
	return valueAsSize(v, "*")
}

// placeholderText bounds an error message to the failing placeholder.
func placeholderText(rest string) string {
	if i := strings.IndexByte(rest, '}'); i >= 0 {
		return rest[:i+1]
	}
	return rest
}
