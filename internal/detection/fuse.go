package detection

// Fuse merges the detection sets of two detectors that observed the same
// image into a single consolidated set.
//
// The caller must guarantee that both sets annotate the same frame; this
// function has no way to check.
//
// Parameters:
//   - primary: The set that seeds the result. Its boxes, order, and classes
//     are preserved; a box enlarged by a merge keeps its original class.
//   - secondary: The set folded into the result, in order.
//   - threshold: Minimum IoU (0.0 to 1.0) at which a secondary box is
//     considered the same object as an existing result entry. The
//     comparison is >=.
//
// Returns a new slice. Neither input slice is modified.
//
// # Algorithm
//
// The result starts as a copy of primary. Each secondary box scans the
// current result in order for the FIRST entry with IoU >= threshold. On a
// match, that entry is replaced in place by the coordinate envelope of the
// two boxes and the scan for this secondary box stops; first match wins,
// not best match. With no match, the secondary box is appended unchanged.
//
// Because each merge immediately enlarges the entry used for subsequent
// comparisons, one result entry can absorb several secondary boxes, and a
// previously appended secondary box can itself become a merge target.
//
// # Asymmetry
//
// Fuse(a, b, t) and Fuse(b, a, t) generally differ: the merge order and the
// envelope growth order both depend on which set is primary. Callers must
// treat the argument order as meaningful.
func Fuse(primary, secondary []Detection, threshold float64) []Detection {
	result := make([]Detection, len(primary), len(primary)+len(secondary))
	copy(result, primary)

	for _, det := range secondary {
		merged := false
		for i := range result {
			if IoU(result[i].Box, det.Box) >= threshold {
				result[i].Box = result[i].Box.Envelope(det.Box)
				merged = true
				break
			}
		}
		if !merged {
			result = append(result, det)
		}
	}

	return result
}
