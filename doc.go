// Package rtfmt interprets format!-style {} templates at runtime.
//
// A template mixes literal text with brace-delimited placeholders.
// Templates and argument types that a compiled format macro would
// check at build time are resolved here entirely at runtime: parsing
// looks up every argument, resolves indirect widths and precisions,
// and verifies that each value supports its specifier, so that
// rendering the parsed result can no longer fail. The central entry
// points are [Parse] and [Render]:
//
//	out, err := rtfmt.Render("{0} meets {name:>8}!", []any{"Alice"},
//		map[string]any{"name": "Bob"})
//	// out == "Alice meets      Bob!"
//
// # Placeholders
//
// A placeholder is "{", an optional argument reference, an optional
// ":" followed by a specifier, and "}". The reference forms are:
//
//   - {} — the next positional argument; only this form advances the cursor
//   - {2} — the positional argument at index 2
//   - {name} — the named argument "name"
//
// Names start with a Unicode letter or underscore and continue with
// letters, digits, or underscores. "{{" and "}}" render as single
// literal braces.
//
// # Specifiers
//
// The specifier grammar is [align][sign][#][0][width][.precision][format],
// every field optional:
//
//   - align: "<" left, "^" center, ">" right
//   - sign: "+" forces a sign on non-negative numeric output
//   - "#": alternate representation (0o, 0x, 0b prefixes)
//   - "0": zero padding for numeric output, overriding alignment
//   - width: minimum display cells, e.g. "8"
//   - precision: fractional digits, or maximum cells for strings, e.g. ".2"
//   - format: "?" debug, "o" octal, "x"/"X" hex, "b" binary, "e"/"E" exponent
//
// Width and precision may also reference arguments: "1$" reads the
// positional argument at index 1 and "name$" reads a named argument,
// neither advancing the cursor, while a precision of "*" consumes the
// next positional argument. A placeholder's embedded references
// resolve before its own value, so in "{:.*}" the precision is taken
// first and the value second. [ParseSpecifier] parses a bare fragment,
// and [Specifier.String] reproduces one.
//
// # Arguments
//
// [Parse] reads positional values through [PositionalArguments] and
// named values through [NamedArguments]; [Values] and [ValueMap] are
// the slice and map implementations, and nil stores act as empty.
// [Args] and [Named] adapt ordinary Go values in one call. Implement
// [ArgumentSource] only to replace the resolution protocol itself;
// [NewSource] supplies the standard cursor behavior.
//
// # Values
//
// Every argument implements [Value]: one support predicate plus the
// eight elementary rendering modes. [IntValue], [UintValue],
// [FloatValue], [StringValue], and [BoolValue] adapt the built-in
// kinds, and [NewValue] selects the right one. Two optional
// interfaces refine behavior:
//
//   - [SizeValue] — the value can act as an indirect width or precision
//   - [Numeric] — display output is a number: right-aligned by default,
//     eligible for "+" and zero padding
//
// A value that does not support a placeholder's specifier fails the
// parse at that placeholder.
//
// # Streaming
//
// [Tokenizer] walks a template one segment at a time in the
// bufio.Scanner idiom, or as an iterator via [Tokenizer.Segments].
// [ParsedFormat] collects the segments; it renders via [ParsedFormat.String]
// or [ParsedFormat.WriteTo] and re-renders without re-parsing.
//
// # Errors
//
// Parse failures are [*ParseError] values carrying the byte offset of
// the placeholder that failed. The wrapped sentinels classify the
// cause:
//
//   - [ErrInvalidPlaceholder] — stray brace or malformed placeholder
//   - [ErrInvalidSpecifier] — unrecognized specifier fragment
//   - [ErrMissingArgument] — index out of range, unknown name, or
//     exhausted cursor
//   - [ErrInvalidSize] — indirect width/precision missing or not usable
//     as a size
//   - [ErrUnsupportedSpecifier] — the value rejected the specifier
//   - [ErrInvalidValue] — [NewValue] given an unsupported Go type
package rtfmt
