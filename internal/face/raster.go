package face

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/tartampluch/go-clock/internal/engine"
	"golang.org/x/image/vector"
)

// RenderImage paints the face for t onto a w by h pixel image. scale is the
// number of pixels per surface unit, so fixed unit sizes such as the rim
// inset keep their on-screen size on high density displays.
func RenderImage(t engine.Timelike, w, h int, scale float64, opts Options) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	s := NewRasterSurface(img)
	s.Transform(Scale(scale))
	Render(s, t, Size{Width: float64(w) / scale, Height: float64(h) / scale}, opts)
	return img
}

// RasterSurface paints onto an RGBA image. Each filled rectangle is
// transformed into a quadrilateral and scan-converted with anti-aliasing.
type RasterSurface struct {
	dst   *image.RGBA
	z     *vector.Rasterizer
	cur   Affine
	stack []Affine
}

// NewRasterSurface wraps dst. The initial transform maps surface units
// one-to-one onto pixels of dst, with the origin at dst.Bounds().Min.
func NewRasterSurface(dst *image.RGBA) *RasterSurface {
	b := dst.Bounds()
	return &RasterSurface{
		dst: dst,
		z:   vector.NewRasterizer(b.Dx(), b.Dy()),
		cur: Identity,
	}
}

// Image returns the backing image.
func (s *RasterSurface) Image() *image.RGBA {
	return s.dst
}

func (s *RasterSurface) WithSave(fn func()) {
	s.stack = append(s.stack, s.cur)
	defer func() {
		s.cur = s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
	}()
	fn()
}

func (s *RasterSurface) Transform(a Affine) {
	s.cur = s.cur.Mul(a)
}

func (s *RasterSurface) Fill(r Rect, c color.Color) {
	b := s.dst.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over

	corners := r.Corners()
	for i, p := range corners {
		q := s.cur.Apply(p)
		if i == 0 {
			s.z.MoveTo(float32(q.X), float32(q.Y))
			continue
		}
		s.z.LineTo(float32(q.X), float32(q.Y))
	}
	s.z.ClosePath()
	s.z.Draw(s.dst, b, image.NewUniform(c), image.Point{})
}
