package detection

// SuppressDuplicates removes duplicate reports of the same object from one
// detector's output.
//
// A detector scanning a single image often reports the same physical object
// several times with slightly shifted boxes. This pass keeps the earliest
// box of each overlap cluster and drops the rest.
//
// Parameters:
//   - dets: The detection set, in detector output order. Order matters:
//     earlier boxes act as cluster anchors and always survive.
//   - threshold: Minimum IoU (0.0 to 1.0) at which two boxes are considered
//     the same object. The comparison is >=, so a threshold of 0 collapses
//     every box into the first one.
//
// Returns a new slice containing the surviving detections in their original
// relative order. The input slice is never modified.
//
// # Algorithm
//
// Greedy keep-earliest clustering. Every box starts marked "keep". Indices
// are scanned in order; each still-kept box i marks every later box j with
// IoU(i, j) >= threshold as discarded. Discarded boxes are never used as
// anchors themselves, and discarding is monotonic: a box once dropped is
// never reconsidered.
//
// Unlike Fuse, no coordinates are merged here; dropped boxes vanish
// entirely.
func SuppressDuplicates(dets []Detection, threshold float64) []Detection {
	keep := make([]bool, len(dets))
	for i := range keep {
		keep[i] = true
	}

	for i := 0; i < len(dets); i++ {
		if !keep[i] {
			continue
		}
		for j := i + 1; j < len(dets); j++ {
			if !keep[j] {
				continue
			}
			if IoU(dets[i].Box, dets[j].Box) >= threshold {
				keep[j] = false
			}
		}
	}

	cleaned := make([]Detection, 0, len(dets))
	for i, d := range dets {
		if keep[i] {
			cleaned = append(cleaned, d)
		}
	}
	return cleaned
}
