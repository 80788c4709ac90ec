package rtfmt_test

import (
	"testing"

	"github.com/bjaus/rtfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlign(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    rtfmt.Align
		wantErr require.ErrorAssertionFunc
	}{
		"default": {input: "", want: rtfmt.AlignNone, wantErr: require.NoError},
		"left":    {input: "<", want: rtfmt.AlignLeft, wantErr: require.NoError},
		"center":  {input: "^", want: rtfmt.AlignCenter, wantErr: require.NoError},
		"right":   {input: ">", want: rtfmt.AlignRight, wantErr: require.NoError},
		"unknown": {input: "=", want: rtfmt.AlignNone, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.ParseAlign(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSign(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    rtfmt.Sign
		wantErr require.ErrorAssertionFunc
	}{
		"default": {input: "", want: rtfmt.SignDefault, wantErr: require.NoError},
		"always":  {input: "+", want: rtfmt.SignAlways, wantErr: require.NoError},
		"unknown": {input: "-", want: rtfmt.SignDefault, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.ParseSign(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRepr(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    rtfmt.Repr
		wantErr require.ErrorAssertionFunc
	}{
		"default":   {input: "", want: rtfmt.ReprDefault, wantErr: require.NoError},
		"alternate": {input: "#", want: rtfmt.ReprAlt, wantErr: require.NoError},
		"unknown":   {input: "&", want: rtfmt.ReprDefault, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.ParseRepr(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePad(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    rtfmt.Pad
		wantErr require.ErrorAssertionFunc
	}{
		"default": {input: "", want: rtfmt.PadSpace, wantErr: require.NoError},
		"zero":    {input: "0", want: rtfmt.PadZero, wantErr: require.NoError},
		"unknown": {input: "1", want: rtfmt.PadSpace, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.ParsePad(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    rtfmt.Format
		wantErr require.ErrorAssertionFunc
	}{
		"display":   {input: "", want: rtfmt.FormatDisplay, wantErr: require.NoError},
		"debug":     {input: "?", want: rtfmt.FormatDebug, wantErr: require.NoError},
		"octal":     {input: "o", want: rtfmt.FormatOctal, wantErr: require.NoError},
		"lower hex": {input: "x", want: rtfmt.FormatLowerHex, wantErr: require.NoError},
		"upper hex": {input: "X", want: rtfmt.FormatUpperHex, wantErr: require.NoError},
		"binary":    {input: "b", want: rtfmt.FormatBinary, wantErr: require.NoError},
		"lower exp": {input: "e", want: rtfmt.FormatLowerExp, wantErr: require.NoError},
		"upper exp": {input: "E", want: rtfmt.FormatUpperExp, wantErr: require.NoError},
		"unknown":   {input: "d", want: rtfmt.FormatDisplay, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDimensionErrorsAreInvalidSpecifier(t *testing.T) {
	t.Parallel()
	_, err := rtfmt.ParseAlign("z")
	assert.ErrorIs(t, err, rtfmt.ErrInvalidSpecifier)
	_, err = rtfmt.ParseFormat("z")
	assert.ErrorIs(t, err, rtfmt.ErrInvalidSpecifier)
}

func TestWidthPrecisionFragments(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", rtfmt.Width{}.String())
	assert.Equal(t, "5", rtfmt.AtLeast(5).String())
	assert.Equal(t, "", rtfmt.Precision{}.String())
	assert.Equal(t, "17", rtfmt.Exactly(17).String())
}

func TestSpecifierString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		spec rtfmt.Specifier
		want string
	}{
		"default": {spec: rtfmt.Specifier{}, want: ""},
		"sign alt octal": {
			spec: rtfmt.Specifier{
				Sign:   rtfmt.SignAlways,
				Repr:   rtfmt.ReprAlt,
				Format: rtfmt.FormatOctal,
			},
			want: "+#o",
		},
		"center zero width precision upper exp": {
			spec: rtfmt.Specifier{
				Align:     rtfmt.AlignCenter,
				Pad:       rtfmt.PadZero,
				Width:     rtfmt.AtLeast(42),
				Precision: rtfmt.Exactly(17),
				Format:    rtfmt.FormatUpperExp,
			},
			want: "^042.17E",
		},
		"every dimension": {
			spec: rtfmt.Specifier{
				Align:     rtfmt.AlignRight,
				Sign:      rtfmt.SignAlways,
				Repr:      rtfmt.ReprAlt,
				Pad:       rtfmt.PadZero,
				Width:     rtfmt.AtLeast(42),
				Precision: rtfmt.Exactly(17),
				Format:    rtfmt.FormatUpperExp,
			},
			want: ">+#042.17E",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.spec.String())
		})
	}
}

func TestParseSpecifier(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    rtfmt.Specifier
		wantErr require.ErrorAssertionFunc
	}{
		"empty": {input: "", want: rtfmt.Specifier{}, wantErr: require.NoError},
		"every dimension": {
			input: ">+#042.17E",
			want: rtfmt.Specifier{
				Align:     rtfmt.AlignRight,
				Sign:      rtfmt.SignAlways,
				Repr:      rtfmt.ReprAlt,
				Pad:       rtfmt.PadZero,
				Width:     rtfmt.AtLeast(42),
				Precision: rtfmt.Exactly(17),
				Format:    rtfmt.FormatUpperExp,
			},
			wantErr: require.NoError,
		},
		"format only": {
			input:   "x",
			want:    rtfmt.Specifier{Format: rtfmt.FormatLowerHex},
			wantErr: require.NoError,
		},
		"align only": {
			input:   "<",
			want:    rtfmt.Specifier{Align: rtfmt.AlignLeft},
			wantErr: require.NoError,
		},
		"bare zero is padding": {
			input:   "0",
			want:    rtfmt.Specifier{Pad: rtfmt.PadZero},
			wantErr: require.NoError,
		},
		"width only": {
			input:   "6",
			want:    rtfmt.Specifier{Width: rtfmt.AtLeast(6)},
			wantErr: require.NoError,
		},
		"trailing garbage": {input: "5Z", wantErr: require.Error},
		"unknown dimension": {input: "Z", wantErr: require.Error},
		"indirect without source": {input: "1$", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.ParseSpecifier(tt.input, nil)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpecifierIndirect(t *testing.T) {
	t.Parallel()
	args, err := rtfmt.Args(8, 3)
	require.NoError(t, err)

	t.Run("width by index", func(t *testing.T) {
		t.Parallel()
		spec, err := rtfmt.ParseSpecifier("1$", rtfmt.NewSource(args, nil))
		require.NoError(t, err)
		assert.Equal(t, rtfmt.AtLeast(3), spec.Width)
	})

	t.Run("width by name", func(t *testing.T) {
		t.Parallel()
		named, err := rtfmt.Named(map[string]any{"w": 9})
		require.NoError(t, err)
		spec, err := rtfmt.ParseSpecifier("w$", rtfmt.NewSource(nil, named))
		require.NoError(t, err)
		assert.Equal(t, rtfmt.AtLeast(9), spec.Width)
	})

	t.Run("star precision consumes cursor", func(t *testing.T) {
		t.Parallel()
		src := rtfmt.NewSource(args, nil)
		spec, err := rtfmt.ParseSpecifier(".*", src)
		require.NoError(t, err)
		assert.Equal(t, rtfmt.Exactly(8), spec.Precision)

		// The next cursor read sees the second value.
		v, ok := src.Next()
		require.True(t, ok)
		assert.Equal(t, rtfmt.IntValue(3), v)
	})

	t.Run("missing indirect width", func(t *testing.T) {
		t.Parallel()
		_, err := rtfmt.ParseSpecifier("7$", rtfmt.NewSource(args, nil))
		assert.ErrorIs(t, err, rtfmt.ErrInvalidSize)
	})
}

func TestSpecifierRoundTrip(t *testing.T) {
	t.Parallel()
	widths := []rtfmt.Width{{}, rtfmt.AtLeast(42)}
	precisions := []rtfmt.Precision{{}, rtfmt.Exactly(17)}
	for _, align := range []rtfmt.Align{rtfmt.AlignNone, rtfmt.AlignLeft, rtfmt.AlignCenter, rtfmt.AlignRight} {
		for _, sign := range []rtfmt.Sign{rtfmt.SignDefault, rtfmt.SignAlways} {
			for _, repr := range []rtfmt.Repr{rtfmt.ReprDefault, rtfmt.ReprAlt} {
				for _, pad := range []rtfmt.Pad{rtfmt.PadSpace, rtfmt.PadZero} {
					for _, width := range widths {
						for _, prec := range precisions {
							for _, format := range []rtfmt.Format{
								rtfmt.FormatDisplay, rtfmt.FormatDebug, rtfmt.FormatOctal,
								rtfmt.FormatLowerHex, rtfmt.FormatUpperHex, rtfmt.FormatBinary,
								rtfmt.FormatLowerExp, rtfmt.FormatUpperExp,
							} {
								spec := rtfmt.Specifier{
									Align: align, Sign: sign, Repr: repr, Pad: pad,
									Width: width, Precision: prec, Format: format,
								}
								got, err := rtfmt.ParseSpecifier(spec.String(), nil)
								require.NoError(t, err, "fragment %q", spec.String())
								assert.Equal(t, spec, got, "fragment %q", spec.String())
							}
						}
					}
				}
			}
		}
	}
}
