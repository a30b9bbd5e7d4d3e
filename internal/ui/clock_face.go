package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/face"
)

// ClockFace is a widget showing an analog clock for the time it was last given.
// It keeps no clock of its own; the sampler pushes values in through SetTime.
type ClockFace struct {
	widget.BaseWidget

	time engine.TimeValue
	opts face.Options
}

// NewClockFace creates a face showing initial.
func NewClockFace(initial engine.TimeValue) *ClockFace {
	c := &ClockFace{time: initial}
	c.ExtendBaseWidget(c)
	return c
}

// Time returns the value currently drawn.
func (c *ClockFace) Time() engine.TimeValue {
	return c.time
}

// SetTime stores v and requests a repaint if it differs from the value on
// screen at one-second granularity. It reports whether a repaint was requested.
func (c *ClockFace) SetTime(v engine.TimeValue) bool {
	if v.Equal(c.time) {
		return false
	}
	c.time = v
	c.Refresh()
	return true
}

// ShowSecondHand reports whether the optional second hand is drawn.
func (c *ClockFace) ShowSecondHand() bool {
	return c.opts.ShowSecondHand
}

// SetShowSecondHand toggles the optional second hand.
func (c *ClockFace) SetShowSecondHand(show bool) {
	if c.opts.ShowSecondHand == show {
		return
	}
	c.opts.ShowSecondHand = show
	c.Refresh()
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer.
func (c *ClockFace) CreateRenderer() fyne.WidgetRenderer {
	c.ExtendBaseWidget(c)
	r := &clockFaceRenderer{clock: c}
	r.raster = canvas.NewRaster(r.draw)
	return r
}

type clockFaceRenderer struct {
	clock  *ClockFace
	raster *canvas.Raster
}

// draw rasterizes the face. fyne asks for device pixels, so the face is laid
// out in the raster's own units and scaled up to fill them.
func (r *clockFaceRenderer) draw(w, h int) image.Image {
	scale := 1.0
	if units := r.raster.Size().Width; units > 0 {
		scale = float64(w) / float64(units)
	}
	return face.RenderImage(r.clock.time, w, h, scale, r.clock.opts)
}

// Layout centers a square raster inside size, capped at the face maximum.
func (r *clockFaceRenderer) Layout(size fyne.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		r.raster.Resize(fyne.NewSize(0, 0))
		return
	}

	s := face.LayoutSize(face.Loose(face.Size{Width: float64(size.Width), Height: float64(size.Height)}))
	fit := fyne.NewSize(float32(s.Width), float32(s.Height))

	r.raster.Resize(fit)
	r.raster.Move(fyne.NewPos((size.Width-fit.Width)/2, (size.Height-fit.Height)/2))
}

func (r *clockFaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(config.FaceMinExtent, config.FaceMinExtent)
}

func (r *clockFaceRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *clockFaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *clockFaceRenderer) Destroy() {}
