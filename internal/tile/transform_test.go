package tile

import (
	"testing"

	"github.com/matryer/is"
)

func TestClipInsideRangeIsNoop(t *testing.T) {
	is := is.New(t)

	for _, p := range []Point{{0, 0}, {Extent, Extent}, {0, Extent}, {17, 4095}, {2048, 1}} {
		is.Equal(Clip(Ring{p}), Ring{p})
	}
}

func TestClipOutsideRangeStaysInBounds(t *testing.T) {
	is := is.New(t)

	in := Ring{{-50, -50}, {Extent + 1, 10}, {10, Extent * 3}, {-1, Extent + 1}}
	out := Clip(in)

	is.Equal(len(out), len(in))
	is.Equal(out, Ring{{0, 0}, {Extent, 10}, {10, Extent}, {0, Extent}})
	for _, p := range out {
		is.True(p[0] >= 0 && p[0] <= Extent)
		is.True(p[1] >= 0 && p[1] <= Extent)
	}
	is.Equal(in[0], Point{-50, -50}) // input untouched
}

func TestIsVisible(t *testing.T) {
	tests := []struct {
		name string
		ring Ring
		want bool
	}{
		{"empty", Ring{}, false},
		{"origin", Ring{{0, 0}}, true},
		{"both axes out", Ring{{Extent + 1, Extent + 1}}, false},
		{"x out y in", Ring{{Extent + 1, 0}}, true},
		{"y out x in", Ring{{Extent, -1}}, true},
		{"negative", Ring{{-50, -50}}, false},
		{"second point in", Ring{{-1, -1}, {-5, 12}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(IsVisible(tt.ring), tt.want)
		})
	}
}

func TestFlipYIsInvolution(t *testing.T) {
	is := is.New(t)

	for _, p := range []Point{{0, 0}, {100, 4090}, {-7, 9000}, {Extent, Extent}} {
		is.Equal(FlipY(FlipY(p)), p)
	}
	is.Equal(FlipY(Point{100, 100}), Point{100, Extent - 100})
}

func TestFlipRing(t *testing.T) {
	is := is.New(t)

	in := Ring{{1, 2}, {3, 4}}
	is.Equal(FlipRing(in), Ring{{1, Extent - 2}, {3, Extent - 4}})
	is.Equal(in, Ring{{1, 2}, {3, 4}})
}

func TestScale(t *testing.T) {
	is := is.New(t)

	in := Ring{{100, 4090}, {4096, 0}, {15, 31}}

	is.Equal(Scale(in, 1), in)
	is.Equal(Scale(in, ScaleFactor), Ring{{6, 255}, {256, 0}, {0, 1}})

	// coordinate-wise: scaling x and y on their own gives the same result
	for i, p := range Scale(in, 7) {
		is.Equal(p[0], in[i][0]/7)
		is.Equal(p[1], in[i][1]/7)
	}
}

func TestScaleTruncatesTowardZero(t *testing.T) {
	is := is.New(t)
	is.Equal(Scale(Ring{{-17, 17}}, 16), Ring{{-1, 1}})
}

func TestScaleIgnoresNonPositiveFactor(t *testing.T) {
	is := is.New(t)
	is.Equal(Scale(Ring{{10, 20}}, 0), Ring{{10, 20}})
}
