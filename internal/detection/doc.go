// Package detection provides post-processing for object-detection results.
//
// This package implements the box-level cleanup that runs after one or more
// detectors have analyzed a still image: collapsing duplicate reports of the
// same physical object, and fusing the outputs of two independent detectors
// into a single consolidated set. It does not run any inference itself; it
// consumes the bounding boxes a detector layer hands it.
//
// # Data Model
//
// A Box is an axis-aligned rectangle in pixel coordinates with corners
// (X1, Y1) top-left and (X2, Y2) bottom-right. A Detection pairs a Box with
// an object Class (face, weapon, mask). Detection sets are plain ordered
// slices; order is meaningful, because both cleanup operations use
// first-wins policies (see below).
//
// # Overlap Metric
//
// All identity decisions are driven by IoU, the Jaccard index of two box
// areas. Areas use the (X2-X1)*(Y2-Y1) convention throughout. Downstream
// thresholds are calibrated against this exact formula, so it must not be
// changed to the inclusive-pixel (+1 per axis) variant.
//
// # Cleanup Operations
//
// SuppressDuplicates removes boxes within one detector's output that overlap
// an earlier-kept box at or above a threshold. The earliest box of each
// overlap cluster survives; later boxes are dropped outright.
//
// Fuse combines the outputs of two detectors that observed the same image.
// Overlapping pairs are merged into their coordinate envelope; boxes unique
// to either side are kept as-is. Argument order matters: the primary set
// seeds the result and wins ties.
//
// # Determinism and Concurrency
//
// Both operations are pure transforms over their inputs: they allocate fresh
// result slices, never mutate their arguments, and hold no state across
// calls. They are safe to call concurrently on independent data.
//
// # Complexity
//
// Both operations compare all pairs, so cost is O(n*m) IoU evaluations.
// Detection sets per frame are small (tens of boxes), so no spatial index is
// used; an index would also obscure the documented first-wins ordering
// semantics.
package detection
