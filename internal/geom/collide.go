package geom

// WouldCollide reports whether a circle-shaped body at pos with the given
// radius, once moved by vel, overlaps the obstacle box grown by padding.
//
// The body is approximated by its bounding box, so the test is a plain
// rectangle overlap. It has no side effects: callers probe hypothetical
// velocities by passing them in vel.
func WouldCollide(pos Point, radius float64, vel Point, box Rect, padding float64) bool {
	return BoxAround(pos, radius).Translate(vel).Intersects(box.Expand(padding))
}

// Padding is the forgiveness margin that lets a circle of the given radius
// travel down a corridor one tile wide without its box touching the walls.
// It must be recomputed whenever the tile size or the radius changes.
func Padding(tileSize, radius float64) float64 {
	return tileSize/2 - radius - 1
}
