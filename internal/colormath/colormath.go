package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CMYK is the canonical color representation: ink coverage percentages
// in [0,100]. Values are immutable; every operation returns a new value.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// RGB holds additive channel values in [0,255]. Derived from CMYK for
// display, never authoritative.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL is the hue-rotation space used by the harmony engine. Hue is in
// degrees [0,360), saturation and lightness in [0,1]. Never persisted.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// clampPct clamps a CMYK channel to [0,100].
func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// clampByte clamps an RGB channel to [0,255].
func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Clamp returns the color with every channel forced into [0,100].
// Out-of-range inputs are clamped silently, never rejected.
func (c CMYK) Clamp() CMYK {
	return CMYK{clampPct(c.C), clampPct(c.M), clampPct(c.Y), clampPct(c.K)}
}

// Clamp returns the color with every channel forced into [0,255].
func (c RGB) Clamp() RGB {
	return RGB{clampByte(c.R), clampByte(c.G), clampByte(c.B)}
}

// RGB converts ink percentages to display channels:
// channel = round(255 * (1 - x/100) * (1 - k/100)).
// For in-range input every result channel lands in [0,255].
func (c CMYK) RGB() RGB {
	c = c.Clamp()
	k := float64(c.K) / 100
	conv := func(x int) int {
		return int(math.Round(255 * (1 - float64(x)/100) * (1 - k)))
	}
	return RGB{conv(c.C), conv(c.M), conv(c.Y)}
}

// CMYK converts display channels back to ink percentages. This is a
// lossy, non-bijective inverse of CMYK.RGB: black is reachable both as
// C=M=Y=100,K=0 and as K=100, so round-trips through RGB are not
// identity in general. Pure black takes the zero-fallback (c=m=y=0,
// k=100) to avoid the division-by-zero singularity.
func (c RGB) CMYK() CMYK {
	c = c.Clamp()
	rf := float64(c.R) / 255
	gf := float64(c.G) / 255
	bf := float64(c.B) / 255

	k := math.Min(1-rf, math.Min(1-gf, 1-bf))
	if k >= 1 {
		return CMYK{0, 0, 0, 100}
	}

	pct := func(x float64) int {
		return int(math.Round((1 - x - k) / (1 - k) * 100))
	}
	return CMYK{pct(rf), pct(gf), pct(bf), int(math.Round(k * 100))}
}

// HSL decomposes display channels into hue/saturation/lightness.
// Achromatic input yields h=0, s=0.
func (c RGB) HSL() HSL {
	c = c.Clamp()
	rf := float64(c.R) / 255
	gf := float64(c.G) / 255
	bf := float64(c.B) / 255

	maxv := math.Max(rf, math.Max(gf, bf))
	minv := math.Min(rf, math.Min(gf, bf))
	l := (maxv + minv) / 2

	if maxv == minv {
		return HSL{0, 0, l}
	}

	d := maxv - minv
	var s float64
	if l > 0.5 {
		s = d / (2 - maxv - minv)
	} else {
		s = d / (maxv + minv)
	}

	var h float64
	switch maxv {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h = h / 6 * 360

	return HSL{h, s, l}
}

// hueToChannel is the standard piecewise helper mapping one hue sector
// onto a channel intensity. t is a hue fraction and may fall outside
// [0,1); it is wrapped first.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// RGB converts hue/saturation/lightness to display channels.
// Zero saturation yields the gray r=g=b=round(255*l).
func (c HSL) RGB() RGB {
	if c.S == 0 {
		v := int(math.Round(c.L * 255))
		return RGB{v, v, v}.Clamp()
	}

	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q
	hk := c.H / 360

	conv := func(t float64) int {
		return int(math.Round(hueToChannel(p, q, t) * 255))
	}
	return RGB{conv(hk + 1.0/3), conv(hk), conv(hk - 1.0/3)}.Clamp()
}

// Hex renders the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	c = c.Clamp()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Hex renders the color as lowercase "#rrggbb" via RGB conversion.
func (c CMYK) Hex() string {
	return c.RGB().Hex()
}

// String renders the color as "c,m,y,k", the format ParseCMYK accepts.
func (c CMYK) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.C, c.M, c.Y, c.K)
}

// Mix combines two colors by taking the per-channel maximum. This is a
// simplified subtractive approximation, not an ink-absorption model:
// whichever color lays down more of an ink wins that channel. The rule
// is deliberate and kept as-is.
func Mix(a, b CMYK) CMYK {
	maxi := func(x, y int) int {
		if x > y {
			return x
		}
		return y
	}
	return CMYK{
		C: maxi(a.C, b.C),
		M: maxi(a.M, b.M),
		Y: maxi(a.Y, b.Y),
		K: maxi(a.K, b.K),
	}
}

// NormalizeHue wraps a hue angle (possibly negative) into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ParseCMYK parses "c,m,y,k" with integer channels in [0,100].
func ParseCMYK(s string) (CMYK, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 4 {
		return CMYK{}, fmt.Errorf("expected 4 comma-separated channels, got %d", len(parts))
	}

	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return CMYK{}, fmt.Errorf("channel %d: %q is not an integer", i+1, strings.TrimSpace(p))
		}
		if v < 0 || v > 100 {
			return CMYK{}, fmt.Errorf("channel %d: %d is outside [0,100]", i+1, v)
		}
		vals[i] = v
	}
	return CMYK{vals[0], vals[1], vals[2], vals[3]}, nil
}

// ParseHex parses "#rrggbb" (case-insensitive, leading '#' optional).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("expected 6 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return RGB{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, nil
}
