package canvas

import "testing"

// TestRGBASplit verifies splitting a paint into opaque color and alpha.
func TestRGBASplit(t *testing.T) {
	paint := RGBA{R: 10, G: 20, B: 30, A: 40}
	rgb, alpha := paint.RGB()
	if rgb != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("RGB part: got %v, want {10 20 30}", rgb)
	}
	if alpha != 40 {
		t.Errorf("alpha: got %d, want 40", alpha)
	}
}

// TestLerpTruncates verifies that interpolation truncates toward zero
// instead of rounding.
func TestLerpTruncates(t *testing.T) {
	tests := []struct {
		name string
		base RGB
		over RGB
		t    float64
		want RGB
	}{
		{"midpoint of black and white", RGB{}, RGB{255, 255, 255}, 0.5, RGB{127, 127, 127}},
		{"t=0 is base", RGB{1, 2, 3}, RGB{200, 200, 200}, 0, RGB{1, 2, 3}},
		{"t=1 is over", RGB{1, 2, 3}, RGB{200, 201, 202}, 1, RGB{200, 201, 202}},
		{"quarter", RGB{}, RGB{10, 10, 10}, 0.25, RGB{2, 2, 2}}, // 2.5 truncates to 2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.Lerp(tt.over, tt.t); got != tt.want {
				t.Errorf("Lerp: got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestBlendAlphaExtremes verifies that alpha 0 is a no-op and alpha 255
// fully replaces the base color.
func TestBlendAlphaExtremes(t *testing.T) {
	base := RGB{R: 40, G: 80, B: 120}

	if got := base.Blend(RGBA{R: 255, G: 0, B: 0, A: 0}); got != base {
		t.Errorf("alpha 0: got %v, want base %v", got, base)
	}
	if got := base.Blend(RGBA{R: 7, G: 8, B: 9, A: 255}); got != (RGB{R: 7, G: 8, B: 9}) {
		t.Errorf("alpha 255: got %v, want {7 8 9}", got)
	}
}

// TestBlendHalfAlpha spot-checks a semi-transparent composite.
func TestBlendHalfAlpha(t *testing.T) {
	// alpha 51 is exactly t=0.2: 0.8*100 + 0.2*200 = 120.
	got := RGB{R: 100, G: 100, B: 100}.Blend(RGBA{R: 200, G: 200, B: 200, A: 51})
	want := RGB{R: 120, G: 120, B: 120}
	if got != want {
		t.Errorf("Blend: got %v, want %v", got, want)
	}
}

// TestFloats verifies normalized float conversion.
func TestFloats(t *testing.T) {
	f := RGBA{R: 255, G: 0, B: 51, A: 255}.Floats()
	if f[0] != 1 || f[1] != 0 || f[3] != 1 {
		t.Errorf("Floats: got %v", f)
	}
	if f[2] != 51.0/255 {
		t.Errorf("Floats B: got %v, want %v", f[2], 51.0/255)
	}
}
