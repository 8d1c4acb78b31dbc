// Package harmony derives ordered color sequences from a base CMYK
// color using the classic color-wheel relationships.
package harmony

import (
	"fmt"
	"math"
	"strings"

	"inkwheel/internal/colormath"
)

// Kind identifies one of the five supported harmony rules. It is a
// closed enumeration; ParseKind rejects anything else.
type Kind string

const (
	Complementary Kind = "complementary"
	Monochromatic Kind = "monochromatic"
	Analogous     Kind = "analogous"
	Triadic       Kind = "triadic"
	Tetradic      Kind = "tetradic"
)

// Kinds lists every harmony kind in display order.
var Kinds = []Kind{Complementary, Monochromatic, Analogous, Triadic, Tetradic}

// ParseKind maps a user-supplied string onto a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown harmony kind %q (want one of: %s)", s, KindNames())
}

// KindNames returns the kinds joined for error and help text.
func KindNames() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// monoFactors scale C/M/Y for the monochromatic shades. K is held
// constant on purpose: black is not part of the shade scaling.
var monoFactors = []float64{0.25, 0.5, 0.75, 1.0}

// hueOffsets gives the rotation sequence per hue-based kind, in the
// order the derived colors appear. Order is significant: it drives
// display and mix-selection ordering downstream.
var hueOffsets = map[Kind][]float64{
	Analogous: {-30, 30},
	Triadic:   {120, 240},
	Tetradic:  {90, 180, 270},
}

// Generate returns the base color followed by its derived colors for
// the given kind, in generation order. Every returned color has
// integer channels; derived values are rounded at generation time so
// what is displayed matches what is persisted.
func Generate(base colormath.CMYK, kind Kind) []colormath.CMYK {
	base = base.Clamp()
	out := []colormath.CMYK{base}

	switch kind {
	case Complementary:
		out = append(out, complement(base))
	case Monochromatic:
		for _, f := range monoFactors {
			out = append(out, shade(base, f))
		}
	case Analogous, Triadic, Tetradic:
		for _, off := range hueOffsets[kind] {
			out = append(out, Rotate(base, off))
		}
	}
	return out
}

// complement inverts the three ink channels against 100 and leaves K
// untouched: the complementary relation lives in CMY ink space only.
func complement(c colormath.CMYK) colormath.CMYK {
	return colormath.CMYK{C: 100 - c.C, M: 100 - c.M, Y: 100 - c.Y, K: c.K}
}

// shade scales C/M/Y by f, keeping K.
func shade(c colormath.CMYK, f float64) colormath.CMYK {
	scale := func(v int) int {
		return int(math.Round(float64(v) * f))
	}
	return colormath.CMYK{C: scale(c.C), M: scale(c.M), Y: scale(c.Y), K: c.K}
}

// Rotate shifts the base color's hue by offset degrees (may be
// negative) and converts back to CMYK. The rotation happens in HSL:
// CMYK -> RGB -> HSL, normalize hue into [0,360), then HSL -> RGB ->
// CMYK, which rounds the result to integer channels.
func Rotate(base colormath.CMYK, offset float64) colormath.CMYK {
	hsl := base.RGB().HSL()
	hsl.H = colormath.NormalizeHue(hsl.H + offset)
	return hsl.RGB().CMYK()
}
