package geom

// Rect is an axis-aligned box. Min is the top-left corner, Max the
// bottom-right one (screen coordinates, y grows downwards).
type Rect struct {
	Min Point
	Max Point
}

// RectAt builds a rectangle from its top-left corner and its size.
func RectAt(topLeft Point, w, h float64) Rect {
	return Rect{Min: topLeft, Max: Point{topLeft.X + w, topLeft.Y + h}}
}

// BoxAround is the bounding box of a circle.
func BoxAround(center Point, radius float64) Rect {
	return Rect{
		Min: Point{center.X - radius, center.Y - radius},
		Max: Point{center.X + radius, center.Y + radius},
	}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Translate moves the rectangle by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Expand grows the rectangle by pad on every side. A negative pad shrinks it.
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		Min: Point{r.Min.X - pad, r.Min.Y - pad},
		Max: Point{r.Max.X + pad, r.Max.Y + pad},
	}
}

// Intersects reports whether two rectangles overlap. Touching edges count as
// an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}
