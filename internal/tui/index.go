package tui

import (
	"github.com/dhconnelly/rtreego"

	"tilesvg/internal/render"
	"tilesvg/internal/tile"
)

// vertex is one polyline vertex stored in the R-tree.
type vertex struct {
	line  int
	index int
	pt    tile.Point
	style string
}

// Bounds implements rtreego.Spatial. Vertices get a tiny box since the
// tree needs non-zero extents.
func (v *vertex) Bounds() rtreego.Rect {
	const epsilon = 0.01
	rect, _ := rtreego.NewRect(rtreego.Point{float64(v.pt[0]), float64(v.pt[1])}, []float64{epsilon, epsilon})
	return rect
}

// vertexIndex answers nearest-vertex queries over rendered polylines in
// pixel space.
type vertexIndex struct {
	rtree *rtreego.Rtree
}

func newVertexIndex(lines []render.Polyline) *vertexIndex {
	rtree := rtreego.NewTree(2, 25, 50)
	for i, l := range lines {
		for j, p := range l.Points {
			rtree.Insert(&vertex{line: i, index: j, pt: p, style: l.Style})
		}
	}
	return &vertexIndex{rtree: rtree}
}

// nearest returns the vertex closest to the pixel position px, py.
func (ix *vertexIndex) nearest(px, py float64) (*vertex, bool) {
	if ix == nil || ix.rtree == nil || ix.rtree.Size() == 0 {
		return nil, false
	}
	sp := ix.rtree.NearestNeighbor(rtreego.Point{px, py})
	v, ok := sp.(*vertex)
	return v, ok
}

func (ix *vertexIndex) size() int {
	if ix == nil || ix.rtree == nil {
		return 0
	}
	return ix.rtree.Size()
}
