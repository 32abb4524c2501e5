package tile

import (
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

func TestLonLatToTileIndex(t *testing.T) {
	is := is.New(t)

	x, y := LonLatToTileIndex(52.52, 13.405, 10)
	is.Equal(x, 550)
	is.Equal(y, 335)

	x, y = LonLatToTileIndex(0.5, 0.5, 0)
	is.Equal(x, 0)
	is.Equal(y, 0)
}

func TestLonLatToTileIndexMatchesMaptile(t *testing.T) {
	places := []struct {
		name     string
		lat, lon float64
	}{
		{"berlin", 52.52, 13.405},
		{"sydney", -33.8688, 151.2093},
		{"sao paulo", -23.5505, -46.6333},
		{"anchorage", 61.2181, -149.9003},
	}

	for _, p := range places {
		t.Run(p.name, func(t *testing.T) {
			is := is.New(t)
			for _, z := range []int{1, 5, 12, 16} {
				x, y := LonLatToTileIndex(p.lat, p.lon, z)
				want := maptile.At(orb.Point{p.lon, p.lat}, maptile.Zoom(z))
				is.Equal(x, int(want.X))
				is.Equal(y, int(want.Y))
			}
		})
	}
}

func TestFlipRow(t *testing.T) {
	is := is.New(t)

	is.Equal(FlipRow(0, 0), 0)
	is.Equal(FlipRow(0, 3), 7)
	is.Equal(FlipRow(FlipRow(5, 4), 4), 5)
}

func TestValidIndex(t *testing.T) {
	tests := []struct {
		x, y, z int
		want    bool
	}{
		{0, 0, 0, true},
		{1, 0, 0, false},
		{7, 7, 3, true},
		{8, 0, 3, false},
		{0, 8, 3, false},
		{-1, 0, 3, false},
		{0, 0, MaxZoom, true},
		{1<<MaxZoom - 1, 1<<MaxZoom - 1, MaxZoom, true},
		{0, 0, MaxZoom + 1, false},
		{0, 0, -1, false},
	}

	for _, tt := range tests {
		is := is.New(t)
		is.Equal(ValidIndex(tt.x, tt.y, tt.z), tt.want)
	}
}
