package conic

import "math"

// HoverThreshold is the hit distance in CSS pixels; it is multiplied by the
// device pixel ratio before testing.
const HoverThreshold = 20

// Axis identifies one of the rotated principal axes.
type Axis int

const (
	AxisNone Axis = iota
	AxisX         // x' axis
	AxisY         // y' axis
)

// String returns "none", "x'" or "y'".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x'"
	case AxisY:
		return "y'"
	default:
		return "none"
	}
}

// AxisDistances returns the perpendicular pixel distances from pointer to the
// x' and y' axes through origin. Both points are in pixel space, where the
// x' axis has direction angle -theta because the y axis points down.
func AxisDistances(pointer, origin Point, theta float64) (distX, distY float64) {
	d := pointer.Sub(origin)
	distX = math.Abs(d.Dot(Normal(-theta)))
	distY = math.Abs(d.Dot(Normal(-theta + math.Pi/2)))
	return distX, distY
}

// HitTest returns the axis within threshold pixels of pointer, preferring
// the closer one. The x' axis wins ties.
func HitTest(pointer, origin Point, theta, threshold float64) Axis {
	distX, distY := AxisDistances(pointer, origin, theta)
	switch {
	case distX < threshold && distX <= distY:
		return AxisX
	case distY < threshold:
		return AxisY
	default:
		return AxisNone
	}
}

// Hover tracks which rotated axis is under the pointer. It only changes on
// Move and Leave; the zero value is in state AxisNone.
type Hover struct {
	axis Axis
}

// Axis returns the current hover state.
func (h *Hover) Axis() Axis {
	return h.axis
}

// Move re-runs the hit test for a pointer position in device pixels and
// reports whether the state changed.
func (h *Hover) Move(pointer Point, f *Frame) bool {
	next := AxisNone
	if origin, ok := f.Origin(); ok {
		threshold := HoverThreshold * f.Viewport.Ratio()
		next = HitTest(pointer, origin, f.Geometry.Theta, threshold)
	}
	return h.set(next)
}

// Leave forces the state to AxisNone and reports whether it changed.
func (h *Hover) Leave() bool {
	return h.set(AxisNone)
}

func (h *Hover) set(a Axis) bool {
	if h.axis == a {
		return false
	}
	h.axis = a
	return true
}
