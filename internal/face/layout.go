package face

import "math"

// Size is the extent of a render target.
type Size struct {
	Width, Height float64
}

// BoxConstraints are the bounds a layout pass offers. A zero Max dimension
// means unbounded.
type BoxConstraints struct {
	Min, Max Size
}

// Tight offers exactly s.
func Tight(s Size) BoxConstraints {
	return BoxConstraints{Min: s, Max: s}
}

// Loose offers anything up to s.
func Loose(s Size) BoxConstraints {
	return BoxConstraints{Max: s}
}

func (bc BoxConstraints) maxWidth() float64 {
	if bc.Max.Width <= 0 {
		return math.Inf(1)
	}
	return bc.Max.Width
}

func (bc BoxConstraints) maxHeight() float64 {
	if bc.Max.Height <= 0 {
		return math.Inf(1)
	}
	return bc.Max.Height
}

// Constrain clamps s into the constraints.
func (bc BoxConstraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, bc.Min.Width, bc.maxWidth()),
		Height: clamp(s.Height, bc.Min.Height, bc.maxHeight()),
	}
}

// ConstrainAspectRatio picks the size closest to width wide and
// ratio*width tall that the constraints allow. The aspect ratio is kept
// whenever the constraints leave room for it.
func (bc BoxConstraints) ConstrainAspectRatio(ratio, width float64) Size {
	w := clamp(width, bc.Min.Width, bc.maxWidth())
	h := w * ratio

	if h > bc.maxHeight() {
		h = bc.maxHeight()
		w = h / ratio
	}
	if h < bc.Min.Height {
		h = bc.Min.Height
		w = h / ratio
	}
	return bc.Constrain(Size{Width: w, Height: h})
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
