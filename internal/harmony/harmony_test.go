package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwheel/internal/colormath"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "complementary", want: Complementary},
		{in: "Monochromatic", want: Monochromatic},
		{in: " TRIADIC ", want: Triadic},
		{in: "tetradic", want: Tetradic},
		{in: "analogous", want: Analogous},
		{in: "split-complementary", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateStartsWithBase(t *testing.T) {
	base := colormath.CMYK{C: 30, M: 60, Y: 90, K: 10}
	for _, kind := range Kinds {
		seq := Generate(base, kind)
		require.NotEmpty(t, seq, "kind %s", kind)
		assert.Equal(t, base, seq[0], "kind %s must lead with the base color", kind)
	}
}

func TestGenerateLengths(t *testing.T) {
	base := colormath.CMYK{C: 30, M: 60, Y: 90, K: 10}
	wantLen := map[Kind]int{
		Complementary: 2,
		Monochromatic: 5,
		Analogous:     3,
		Triadic:       3,
		Tetradic:      4,
	}
	for kind, n := range wantLen {
		assert.Len(t, Generate(base, kind), n, "kind %s", kind)
	}
}

func TestComplementary(t *testing.T) {
	// CMY inverted against 100, K untouched
	seq := Generate(colormath.CMYK{C: 30, M: 60, Y: 90, K: 10}, Complementary)
	require.Len(t, seq, 2)
	assert.Equal(t, colormath.CMYK{C: 70, M: 40, Y: 10, K: 10}, seq[1])

	// Complement of the complement is the original
	again := Generate(seq[1], Complementary)
	assert.Equal(t, colormath.CMYK{C: 30, M: 60, Y: 90, K: 10}, again[1])
}

func TestMonochromatic(t *testing.T) {
	base := colormath.CMYK{C: 40, M: 80, Y: 20, K: 10}
	seq := Generate(base, Monochromatic)
	require.Len(t, seq, 5)

	want := []colormath.CMYK{
		{C: 40, M: 80, Y: 20, K: 10},
		{C: 10, M: 20, Y: 5, K: 10},
		{C: 20, M: 40, Y: 10, K: 10},
		{C: 30, M: 60, Y: 15, K: 10},
		{C: 40, M: 80, Y: 20, K: 10},
	}
	assert.Equal(t, want, seq)

	// K is constant across the whole sequence and C/M/Y never decrease
	// across the derived shades
	for i, c := range seq {
		assert.Equal(t, base.K, c.K, "entry %d", i)
	}
	for i := 2; i < len(seq); i++ {
		assert.GreaterOrEqual(t, seq[i].C, seq[i-1].C)
		assert.GreaterOrEqual(t, seq[i].M, seq[i-1].M)
		assert.GreaterOrEqual(t, seq[i].Y, seq[i-1].Y)
	}
}

func TestRotateZeroIsNearIdentity(t *testing.T) {
	// A zero rotation still walks CMYK->RGB->HSL->RGB->CMYK, so the
	// display channels may drift by one rounding step, no more.
	base := colormath.CMYK{C: 30, M: 60, Y: 90, K: 10}
	got := Rotate(base, 0)

	want := base.RGB()
	gotRGB := got.RGB()
	assert.InDelta(t, want.R, gotRGB.R, 1)
	assert.InDelta(t, want.G, gotRGB.G, 1)
	assert.InDelta(t, want.B, gotRGB.B, 1)
}

func TestRotateNormalizesHue(t *testing.T) {
	base := colormath.CMYK{C: 10, M: 90, Y: 0, K: 0}
	for _, off := range []float64{-30, -720, 30, 360, 1080, 359.9} {
		c := Rotate(base, off)
		h := c.RGB().HSL().H
		assert.GreaterOrEqual(t, h, 0.0, "offset %v", off)
		assert.Less(t, h, 360.0, "offset %v", off)
	}
}

func TestRotateFullCircleComposition(t *testing.T) {
	// Three 120-degree steps land back near the start
	base := colormath.CMYK{C: 30, M: 60, Y: 90, K: 10}
	c := base
	for i := 0; i < 3; i++ {
		c = Rotate(c, 120)
	}
	want := base.RGB()
	got := c.RGB()
	assert.InDelta(t, want.R, got.R, 3)
	assert.InDelta(t, want.G, got.G, 3)
	assert.InDelta(t, want.B, got.B, 3)
}

func TestTriadicOffsetsPreserveOrder(t *testing.T) {
	base := colormath.CMYK{C: 10, M: 90, Y: 0, K: 0}
	seq := Generate(base, Triadic)
	require.Len(t, seq, 3)

	baseHue := base.RGB().HSL().H
	h1 := seq[1].RGB().HSL().H
	h2 := seq[2].RGB().HSL().H

	// Derived hues sit ~120 and ~240 degrees past the base, in that order
	assert.InDelta(t, colormath.NormalizeHue(baseHue+120), h1, 2)
	assert.InDelta(t, colormath.NormalizeHue(baseHue+240), h2, 2)
}

func TestGenerateClampsOutOfRangeBase(t *testing.T) {
	seq := Generate(colormath.CMYK{C: 130, M: -10, Y: 50, K: 0}, Complementary)
	assert.Equal(t, colormath.CMYK{C: 100, M: 0, Y: 50, K: 0}, seq[0])
	assert.Equal(t, colormath.CMYK{C: 0, M: 100, Y: 50, K: 0}, seq[1])
}
