package detection

import (
	"encoding/json"
	"fmt"
)

// Box represents an axis-aligned bounding box in pixel coordinates.
//
// The coordinate convention follows standard image bounds:
//   - (X1, Y1) is the top-left corner
//   - (X2, Y2) is the bottom-right corner
//
// Callers are expected to supply X1 <= X2 and Y1 <= Y2. Inverted boxes are
// tolerated by the overlap metric (they simply never overlap anything) but
// are rejected where boxes enter the system from untrusted input.
type Box struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Width returns the horizontal extent (X2 - X1).
func (b Box) Width() int { return b.X2 - b.X1 }

// Height returns the vertical extent (Y2 - Y1).
func (b Box) Height() int { return b.Y2 - b.Y1 }

// Area returns Width * Height.
//
// The formula is deliberately (X2-X1)*(Y2-Y1) without the +1 per axis an
// inclusive-pixel convention would add. Every IoU threshold in this codebase
// is calibrated against this formula.
func (b Box) Area() int { return b.Width() * b.Height() }

// Envelope returns the smallest box containing both b and o.
func (b Box) Envelope(o Box) Box {
	return Box{
		X1: min(b.X1, o.X1),
		Y1: min(b.Y1, o.Y1),
		X2: max(b.X2, o.X2),
		Y2: max(b.Y2, o.Y2),
	}
}

// Valid reports whether the box has non-inverted edges.
func (b Box) Valid() bool {
	return b.X1 <= b.X2 && b.Y1 <= b.Y2
}

// Class identifies the kind of object a detector reported.
//
// The numeric values match the tag convention used by the detector layer:
// 0 = face, 1 = weapon, 2 = mask. Classes marshal to and from JSON as their
// lowercase names; numeric tags are also accepted on input for compatibility
// with raw detector output.
type Class int

const (
	ClassFace   Class = iota // Human face
	ClassWeapon              // Weapon (firearm)
	ClassMask                // Face mask / covering
)

// classNames maps Class values to their canonical lowercase names.
var classNames = [...]string{"face", "weapon", "mask"}

// String returns the lowercase name of the class, or "unknown(N)" for
// out-of-range values.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("unknown(%d)", int(c))
	}
	return classNames[c]
}

// ParseClass converts a class name ("face", "weapon", "mask") to its Class
// value. The comparison is exact; names are lowercase.
func ParseClass(s string) (Class, error) {
	for i, name := range classNames {
		if s == name {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("unknown object class: %q", s)
}

// MarshalJSON encodes the class as its lowercase name.
func (c Class) MarshalJSON() ([]byte, error) {
	if c < 0 || int(c) >= len(classNames) {
		return nil, fmt.Errorf("cannot marshal out-of-range class %d", int(c))
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts either a class name ("weapon") or a numeric tag (1).
func (c *Class) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseClass(name)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var tag int
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("class must be a name or numeric tag: %s", string(data))
	}
	if tag < 0 || tag >= len(classNames) {
		return fmt.Errorf("numeric class tag %d out of range", tag)
	}
	*c = Class(tag)
	return nil
}

// Detection is a single detector hit: a bounding box plus the class of the
// object the detector believes it contains.
type Detection struct {
	Box   Box   `json:"box"`
	Class Class `json:"class"`
}
