// Package geom provides the small amount of polygon math the layout needs:
// parsing vertex path strings, centroids, convexity, triangulation and
// rigid transforms.
package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D point in screen space (y grows downward).
type Vec = r2.Vec

// ParsePath parses a whitespace or comma separated list of coordinates
// ("x0 y0 x1 y1 ...") into vertices.
func ParsePath(path string) ([]Vec, error) {
	fields := strings.FieldsFunc(path, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("path has odd number of coordinates (%d)", len(fields))
	}

	verts := make([]Vec, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing x of vertex %d: %w", i/2, err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing y of vertex %d: %w", i/2, err)
		}
		verts = append(verts, Vec{X: x, Y: y})
	}
	return dedupeClosing(verts), nil
}

// MustParsePath is like ParsePath but panics on error.
// Used for the fixed path assets compiled into the layout.
func MustParsePath(path string) []Vec {
	verts, err := ParsePath(path)
	if err != nil {
		panic(fmt.Sprintf("geom: invalid path %q: %v", path, err))
	}
	return verts
}

// FormatPath is the inverse of ParsePath.
func FormatPath(verts []Vec) string {
	parts := make([]string, 0, len(verts)*2)
	for _, v := range verts {
		parts = append(parts, strconv.FormatFloat(v.X, 'g', -1, 64), strconv.FormatFloat(v.Y, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}

// dedupeClosing drops a final vertex that repeats the first one.
func dedupeClosing(verts []Vec) []Vec {
	if len(verts) > 1 && verts[0] == verts[len(verts)-1] {
		return verts[:len(verts)-1]
	}
	return verts
}

// SignedArea returns the shoelace area. Positive for clockwise winding in
// screen space (counter-clockwise in y-up space).
func SignedArea(verts []Vec) float64 {
	var a float64
	for i := range verts {
		j := (i + 1) % len(verts)
		a += r2.Cross(verts[i], verts[j])
	}
	return a / 2
}

// Centroid returns the area centroid of a simple polygon. Degenerate
// polygons fall back to the vertex mean.
func Centroid(verts []Vec) Vec {
	area := SignedArea(verts)
	if math.Abs(area) < 1e-12 {
		return Mean(verts)
	}
	var c Vec
	for i := range verts {
		j := (i + 1) % len(verts)
		cross := r2.Cross(verts[i], verts[j])
		c = r2.Add(c, r2.Scale(cross, r2.Add(verts[i], verts[j])))
	}
	return r2.Scale(1/(6*area), c)
}

// Mean returns the arithmetic mean of the points.
func Mean(pts []Vec) Vec {
	if len(pts) == 0 {
		return Vec{}
	}
	var sum Vec
	for _, p := range pts {
		sum = r2.Add(sum, p)
	}
	return r2.Scale(1/float64(len(pts)), sum)
}

// IsConvex reports whether the polygon turns the same way at every vertex.
// Collinear vertices are allowed.
func IsConvex(verts []Vec) bool {
	if len(verts) < 3 {
		return false
	}
	sign := 0
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		c := verts[(i+2)%len(verts)]
		cross := r2.Cross(r2.Sub(b, a), r2.Sub(c, b))
		switch {
		case cross > 1e-9:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < -1e-9:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return sign != 0
}

// Triangulate splits a simple polygon into triangles by ear clipping. The
// triangles are vertex index triples wound like the polygon. A vertex left
// collinear with its neighbours is dropped without a triangle.
func Triangulate(verts []Vec) [][3]int {
	if len(verts) < 3 {
		return nil
	}
	orient := 1.0
	if SignedArea(verts) < 0 {
		orient = -1
	}

	idx := make([]int, len(verts))
	for i := range idx {
		idx[i] = i
	}
	out := make([][3]int, 0, len(verts)-2)
	for len(idx) > 3 {
		clipped := false
		for i := range idx {
			p, c, n := idx[(i+len(idx)-1)%len(idx)], idx[i], idx[(i+1)%len(idx)]
			turn := r2.Cross(r2.Sub(verts[c], verts[p]), r2.Sub(verts[n], verts[c])) * orient
			if math.Abs(turn) < 1e-12 {
				idx = append(idx[:i], idx[i+1:]...)
				clipped = true
				break
			}
			if turn < 0 || !isEar(verts, idx, p, c, n, orient) {
				continue
			}
			out = append(out, [3]int{p, c, n})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// self-intersecting input
			return out
		}
	}
	if len(idx) == 3 {
		a, b, c := verts[idx[0]], verts[idx[1]], verts[idx[2]]
		if math.Abs(r2.Cross(r2.Sub(b, a), r2.Sub(c, b))) >= 1e-12 {
			out = append(out, [3]int{idx[0], idx[1], idx[2]})
		}
	}
	return out
}

// isEar reports whether no other remaining vertex lies in triangle p c n.
func isEar(verts []Vec, idx []int, p, c, n int, orient float64) bool {
	a, b, d := verts[p], verts[c], verts[n]
	for _, i := range idx {
		if i == p || i == c || i == n {
			continue
		}
		q := verts[i]
		if q == a || q == b || q == d {
			continue
		}
		if r2.Cross(r2.Sub(b, a), r2.Sub(q, a))*orient >= 0 &&
			r2.Cross(r2.Sub(d, b), r2.Sub(q, b))*orient >= 0 &&
			r2.Cross(r2.Sub(a, d), r2.Sub(q, d))*orient >= 0 {
			return false
		}
	}
	return true
}

// Scale multiplies every vertex by f.
func Scale(verts []Vec, f float64) []Vec {
	out := make([]Vec, len(verts))
	for i, v := range verts {
		out[i] = r2.Scale(f, v)
	}
	return out
}

// Translate moves every vertex by d.
func Translate(verts []Vec, d Vec) []Vec {
	out := make([]Vec, len(verts))
	for i, v := range verts {
		out[i] = r2.Add(v, d)
	}
	return out
}

// Rotate rotates every vertex by angle radians around pivot.
func Rotate(verts []Vec, angle float64, pivot Vec) []Vec {
	out := make([]Vec, len(verts))
	for i, v := range verts {
		out[i] = r2.Rotate(v, angle, pivot)
	}
	return out
}

// PlaceAt translates the polygon so its area centroid sits at pos.
func PlaceAt(verts []Vec, pos Vec) []Vec {
	return Translate(verts, r2.Sub(pos, Centroid(verts)))
}

// Bounds returns the axis-aligned bounding box of the points.
func Bounds(verts []Vec) r2.Box {
	if len(verts) == 0 {
		return r2.Box{}
	}
	box := r2.Box{Min: verts[0], Max: verts[0]}
	for _, v := range verts[1:] {
		box.Min.X = math.Min(box.Min.X, v.X)
		box.Min.Y = math.Min(box.Min.Y, v.Y)
		box.Max.X = math.Max(box.Max.X, v.X)
		box.Max.Y = math.Max(box.Max.Y, v.Y)
	}
	return box
}

// RectCorners returns the four corners of a w×h rectangle centred at pos
// and rotated by angle, in clockwise screen order starting top-left.
func RectCorners(pos Vec, w, h, angle float64) []Vec {
	hw, hh := w/2, h/2
	corners := []Vec{
		{X: pos.X - hw, Y: pos.Y - hh},
		{X: pos.X + hw, Y: pos.Y - hh},
		{X: pos.X + hw, Y: pos.Y + hh},
		{X: pos.X - hw, Y: pos.Y + hh},
	}
	if angle == 0 {
		return corners
	}
	return Rotate(corners, angle, pos)
}

// Dist returns the distance between a and b.
func Dist(a, b Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}
