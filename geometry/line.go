package geometry

// Line is a straight segment of a drivable course, defined by its two
// endpoints.
type Line struct {
	start, end Point
}

// NewLine builds a Line from start to end.
func NewLine(start, end Point) Line {
	return Line{start: start, end: end}
}

// Start returns the line's start point.
func (l Line) Start() Point {
	return l.start
}

// End returns the line's end point.
func (l Line) End() Point {
	return l.end
}

// Direction returns end-start, the line's (unnormalised) tangent vector.
func (l Line) Direction() Point {
	return l.end.Sub(l.start)
}

// Length returns the Euclidean length of the line.
func (l Line) Length() float64 {
	return Dist(l.start, l.end)
}

// NearestPointTo returns the orthogonal projection of p onto the infinite
// line through start and end. If start == end, start is returned.
func (l Line) NearestPointTo(p Point) Point {
	dir := l.Direction()
	lenSq := dir.Dot(dir)
	if lenSq == 0 {
		return l.start
	}
	t := p.Sub(l.start).Dot(dir) / lenSq
	return l.start.Add(dir.Mul(t))
}
