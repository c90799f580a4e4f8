package detection

// IoU computes the Intersection-over-Union (Jaccard index) of two boxes.
//
// Parameters:
//   - a, b: The boxes to compare. No constraints are imposed; inverted or
//     zero-area boxes are tolerated, not rejected.
//
// Returns a value in [0.0, 1.0]:
//   - 1.0 = the boxes cover exactly the same area
//   - 0.0 = the boxes share no area at all
//
// # Algorithm
//
// The intersection rectangle is the max of the left/top edges and the min of
// the right/bottom edges. If that rectangle is inverted on either axis the
// boxes are disjoint and the result is exactly 0. Otherwise the result is
//
//	intersection / (area(a) + area(b) - intersection)
//
// with all areas computed as (X2-X1)*(Y2-Y1).
//
// # Degenerate Boxes
//
// Two zero-area boxes produce a zero union; IoU returns 0 in that case
// rather than dividing by zero. Inverted boxes fail the disjointness test
// and also return 0.
func IoU(a, b Box) float64 {
	xLeft := max(a.X1, b.X1)
	xRight := min(a.X2, b.X2)
	yTop := max(a.Y1, b.Y1)
	yBottom := min(a.Y2, b.Y2)

	if xLeft > xRight || yBottom < yTop {
		return 0.0
	}

	intersection := (xRight - xLeft) * (yBottom - yTop)
	union := a.Area() + b.Area() - intersection
	if union <= 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}
