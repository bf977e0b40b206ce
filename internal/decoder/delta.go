package decoder

// CoordinateSystem converts raw integer stream units into real-world
// coordinates. Resolution is the real-world width of one raw unit, so an
// absolute coordinate is raw*Resolution + offset. The values come from the
// spatial reference the stream was written against.
type CoordinateSystem struct {
	OffsetX    float64
	OffsetY    float64
	OffsetZ    float64
	Resolution float64
}

// rescale converts a raw delta-encoded buffer into absolute coordinates.
// The first pair is anchored at the system offset. Every later pair is a
// delta from the previous vertex and must be scaled before it is added to
// the previous absolute value; summing raw deltas first and scaling once
// produces a different rounding sequence than the writer used.
func (cs CoordinateSystem) rescale(raw []int64) []float64 {
	abs := make([]float64, len(raw))
	if len(raw) < 2 {
		return abs
	}
	abs[0] = float64(raw[0])*cs.Resolution + cs.OffsetX
	abs[1] = float64(raw[1])*cs.Resolution + cs.OffsetY
	for i := 2; i+1 < len(raw); i += 2 {
		abs[i] = float64(raw[i])*cs.Resolution + abs[i-2]
		abs[i+1] = float64(raw[i+1])*cs.Resolution + abs[i-1]
	}
	return abs
}

// absolute converts a single raw coordinate pair with no delta chain.
func (cs CoordinateSystem) absolute(rawX, rawY int64) (float64, float64) {
	return float64(rawX)*cs.Resolution + cs.OffsetX,
		float64(rawY)*cs.Resolution + cs.OffsetY
}
