package colormath

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCMYKToRGBAnchors(t *testing.T) {
	tests := []struct {
		name string
		in   CMYK
		want RGB
	}{
		{name: "paper white", in: CMYK{0, 0, 0, 0}, want: RGB{255, 255, 255}},
		{name: "full key black", in: CMYK{0, 0, 0, 100}, want: RGB{0, 0, 0}},
		{name: "full cyan", in: CMYK{100, 0, 0, 0}, want: RGB{0, 255, 255}},
		{name: "full magenta", in: CMYK{0, 100, 0, 0}, want: RGB{255, 0, 255}},
		{name: "full yellow", in: CMYK{0, 0, 100, 0}, want: RGB{255, 255, 0}},
		{name: "process black", in: CMYK{100, 100, 100, 0}, want: RGB{0, 0, 0}},
		{name: "mid tones", in: CMYK{30, 60, 90, 10}, want: RGB{161, 92, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.RGB())
		})
	}
}

func TestCMYKToRGBStaysInRange(t *testing.T) {
	for c := 0; c <= 100; c += 20 {
		for m := 0; m <= 100; m += 20 {
			for y := 0; y <= 100; y += 20 {
				for k := 0; k <= 100; k += 20 {
					rgb := CMYK{c, m, y, k}.RGB()
					for _, ch := range []int{rgb.R, rgb.G, rgb.B} {
						if ch < 0 || ch > 255 {
							t.Fatalf("CMYK{%d,%d,%d,%d}.RGB() = %+v, channel out of [0,255]", c, m, y, k, rgb)
						}
					}
				}
			}
		}
	}
}

func TestRGBToCMYKBlackFallback(t *testing.T) {
	// Pure black hits the k=1 singularity; c/m/y must fall back to zero
	assert.Equal(t, CMYK{0, 0, 0, 100}, RGB{0, 0, 0}.CMYK())
}

func TestRGBToCMYKKnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want CMYK
	}{
		{name: "white", in: RGB{255, 255, 255}, want: CMYK{0, 0, 0, 0}},
		{name: "red", in: RGB{255, 0, 0}, want: CMYK{0, 100, 100, 0}},
		{name: "green", in: RGB{0, 255, 0}, want: CMYK{100, 0, 100, 0}},
		{name: "blue", in: RGB{0, 0, 255}, want: CMYK{100, 100, 0, 0}},
		{name: "mid gray", in: RGB{128, 128, 128}, want: CMYK{0, 0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.CMYK())
		})
	}
}

// Round-trip equality is only defined for colors that came out of
// RGB->CMYK in the first place: black is reachable two ways in CMYK,
// so the general CMYK->RGB->CMYK trip is not identity. Integer percent
// rounding allows a small drift per display channel.
func TestRGBToCMYKFeedback(t *testing.T) {
	samples := []RGB{
		{161, 92, 23},
		{12, 200, 255},
		{77, 77, 200},
		{0, 128, 64},
		{255, 255, 255},
		{1, 2, 3},
	}

	for _, rgb := range samples {
		back := rgb.CMYK().RGB()
		assert.InDelta(t, rgb.R, back.R, 3, "R channel for %+v", rgb)
		assert.InDelta(t, rgb.G, back.G, 3, "G channel for %+v", rgb)
		assert.InDelta(t, rgb.B, back.B, 3, "B channel for %+v", rgb)
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		h    float64
		s    float64
		l    float64
	}{
		{name: "red", in: RGB{255, 0, 0}, h: 0, s: 1, l: 0.5},
		{name: "green", in: RGB{0, 255, 0}, h: 120, s: 1, l: 0.5},
		{name: "blue", in: RGB{0, 0, 255}, h: 240, s: 1, l: 0.5},
		{name: "yellow", in: RGB{255, 255, 0}, h: 60, s: 1, l: 0.5},
		{name: "achromatic gray", in: RGB{128, 128, 128}, h: 0, s: 0, l: 128.0 / 255},
		{name: "white", in: RGB{255, 255, 255}, h: 0, s: 0, l: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsl := tt.in.HSL()
			assert.InDelta(t, tt.h, hsl.H, 0.01)
			assert.InDelta(t, tt.s, hsl.S, 0.001)
			assert.InDelta(t, tt.l, hsl.L, 0.001)
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   HSL
		want RGB
	}{
		{name: "red", in: HSL{0, 1, 0.5}, want: RGB{255, 0, 0}},
		{name: "green", in: HSL{120, 1, 0.5}, want: RGB{0, 255, 0}},
		{name: "blue", in: HSL{240, 1, 0.5}, want: RGB{0, 0, 255}},
		{name: "achromatic", in: HSL{0, 0, 0.5}, want: RGB{128, 128, 128}},
		{name: "black", in: HSL{0, 0, 0}, want: RGB{0, 0, 0}},
		{name: "white", in: HSL{0, 0, 1}, want: RGB{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.RGB())
		})
	}
}

func TestHSLRoundTripWithinRounding(t *testing.T) {
	samples := []RGB{
		{161, 92, 23},
		{200, 10, 250},
		{0, 128, 64},
		{33, 33, 34},
	}
	for _, rgb := range samples {
		back := rgb.HSL().RGB()
		assert.InDelta(t, rgb.R, back.R, 1, "R channel for %+v", rgb)
		assert.InDelta(t, rgb.G, back.G, 1, "G channel for %+v", rgb)
		assert.InDelta(t, rgb.B, back.B, 1, "B channel for %+v", rgb)
	}
}

func TestHexFormat(t *testing.T) {
	hexPattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	for c := 0; c <= 100; c += 25 {
		for k := 0; k <= 100; k += 25 {
			h := CMYK{c, 100 - c, c / 2, k}.Hex()
			if !hexPattern.MatchString(h) {
				t.Fatalf("Hex() = %q, want lowercase #rrggbb", h)
			}
		}
	}

	assert.Equal(t, "#ffffff", CMYK{0, 0, 0, 0}.Hex())
	assert.Equal(t, "#000000", CMYK{0, 0, 0, 100}.Hex())
	assert.Equal(t, "#00ffff", CMYK{100, 0, 0, 0}.Hex())
}

func TestMix(t *testing.T) {
	a := CMYK{10, 80, 0, 0}
	b := CMYK{50, 20, 30, 5}
	assert.Equal(t, CMYK{50, 80, 30, 5}, Mix(a, b))

	// Commutative, idempotent, paper-white neutral
	assert.Equal(t, Mix(a, b), Mix(b, a))
	assert.Equal(t, a, Mix(a, a))
	assert.Equal(t, a, Mix(a, CMYK{0, 0, 0, 0}))
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-30, 330},
		{30, 30},
		{360, 0},
		{390, 30},
		{-360, 0},
		{-390, 330},
		{719.5, 359.5},
	}

	for _, tt := range tests {
		got := NormalizeHue(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "NormalizeHue(%v)", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, CMYK{0, 100, 0, 100}, CMYK{-5, 120, 0, 101}.Clamp())
	assert.Equal(t, RGB{0, 255, 10}, RGB{-1, 300, 10}.Clamp())
}

func TestParseCMYK(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    CMYK
		wantErr bool
	}{
		{name: "plain", in: "30,60,90,10", want: CMYK{30, 60, 90, 10}},
		{name: "spaces", in: " 0, 0 ,0,100 ", want: CMYK{0, 0, 0, 100}},
		{name: "too few channels", in: "30,60,90", wantErr: true},
		{name: "not a number", in: "30,60,x,10", wantErr: true},
		{name: "out of range", in: "30,60,90,101", wantErr: true},
		{name: "negative", in: "-1,0,0,0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCMYK(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", in: "#a15c17", want: RGB{161, 92, 23}},
		{name: "without hash", in: "ffffff", want: RGB{255, 255, 255}},
		{name: "uppercase", in: "#00FF00", want: RGB{0, 255, 0}},
		{name: "short", in: "#fff", wantErr: true},
		{name: "bad digits", in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
