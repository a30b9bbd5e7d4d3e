// Package face maps a time of day and a surface size onto the filled shapes
// of an analog clock face. Everything here is pure: the same inputs always
// produce the same geometry and the same draw calls.
package face

import (
	"image/color"
	"math"

	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

// Surface is an immediate-mode 2D target with a transform stack.
type Surface interface {
	// WithSave runs fn and then restores the transform in effect before it.
	WithSave(fn func())
	// Transform composes a onto the current transform.
	Transform(a Affine)
	// Fill paints r, under the current transform, with c.
	Fill(r Rect, c color.Color)
}

// Options are the switches a caller may flip. The zero value draws the
// reference face.
type Options struct {
	ShowSecondHand bool
}

// HandKind names a hand.
type HandKind int

const (
	HourHand HandKind = iota
	MinuteHand
	SecondHand
)

func (k HandKind) String() string {
	switch k {
	case HourHand:
		return "hour"
	case MinuteHand:
		return "minute"
	case SecondHand:
		return "second"
	default:
		return "unknown"
	}
}

// Tick is one minute mark, expressed in the frame rotated by Angle.
type Tick struct {
	Index int
	Angle float64
	Long  bool
	Rect  Rect
}

// Hand is one clock hand, expressed in the frame rotated by Angle.
type Hand struct {
	Kind  HandKind
	Angle float64
	Rect  Rect
	Color color.NRGBA
}

// Geometry is everything Render draws, relative to Center.
type Geometry struct {
	Center    Point
	MaxRadius float64
	Ticks     []Tick
	Hands     []Hand
}

// MaxRadius is half the shorter side of the surface.
func MaxRadius(size Size) float64 {
	return math.Min(size.Width, size.Height) / 2
}

// LayoutSize answers a layout pass: always square, never beyond
// config.FaceMaxExtent, whatever the offered constraints.
func LayoutSize(bc BoxConstraints) Size {
	return bc.ConstrainAspectRatio(config.FaceAspectRatio, config.FaceMaxExtent)
}

// HourHandAngle turns twice per day, once per twelve hours.
func HourHandAngle(t engine.Timelike) float64 {
	return 2 * math.Pi * float64(t.SecondsSinceMidnight()) * 2 / config.SecondsPerDay
}

// MinuteHandAngle turns once per hour. It is driven by the seconds since
// midnight, so the hand sweeps continuously instead of stepping each minute.
func MinuteHandAngle(t engine.Timelike) float64 {
	return 2 * math.Pi * float64(t.SecondsSinceMidnight()) / config.SecondsPerHour
}

// SecondHandAngle turns once per minute, stepping each second.
func SecondHandAngle(t engine.Timelike) float64 {
	return 2 * math.Pi * float64(t.Second()) / config.SecondsPerMinute
}

// TickMarks returns the 60 minute marks. Every fifth one is long.
func TickMarks(maxRadius float64) []Tick {
	inner := config.RimInset - maxRadius
	ticks := make([]Tick, 0, config.TickCount)

	for i := 0; i < config.TickCount; i++ {
		long := i%config.TickLongEvery == 0

		var r Rect
		if long {
			r = RectFromPoints(
				Point{config.LongTickLeft, -maxRadius},
				Point{config.LongTickRight, inner})
		} else {
			r = RectFromPoints(
				Point{config.ShortTickLeft, config.ShortTickOuter - maxRadius},
				Point{config.ShortTickRight, inner})
		}

		ticks = append(ticks, Tick{
			Index: i,
			Angle: 2 * math.Pi / config.TickCount * float64(i),
			Long:  long,
			Rect:  r,
		})
	}
	return ticks
}

// Hands returns the hour and minute hands, plus the second hand when asked.
func Hands(t engine.Timelike, maxRadius float64, opts Options) []Hand {
	tip := config.RimInset - maxRadius

	hands := []Hand{
		{
			Kind:  HourHand,
			Angle: HourHandAngle(t),
			Rect: RectFromPoints(
				Point{-config.HourHandHalfWidth, 0},
				Point{config.HourHandHalfWidth, tip / 2}),
			Color: config.ColorHand,
		},
		{
			Kind:  MinuteHand,
			Angle: MinuteHandAngle(t),
			Rect: RectFromPoints(
				Point{config.MinuteHandLeft, 0},
				Point{config.MinuteHandRight, tip}),
			Color: config.ColorHand,
		},
	}

	if opts.ShowSecondHand {
		hands = append(hands, Hand{
			Kind:  SecondHand,
			Angle: SecondHandAngle(t),
			Rect: RectFromPoints(
				Point{-config.SecondHandHalfWidth, 0},
				Point{config.SecondHandHalfWidth, tip}),
			Color: config.ColorSecondHand,
		})
	}
	return hands
}

// Compute derives the full face geometry.
func Compute(t engine.Timelike, size Size, opts Options) Geometry {
	r := MaxRadius(size)
	return Geometry{
		Center:    Point{size.Width / 2, size.Height / 2},
		MaxRadius: r,
		Ticks:     TickMarks(r),
		Hands:     Hands(t, r, opts),
	}
}

// Render draws the face for t onto s. Ticks are painted first, hands on top
// in hour, minute, second order.
func Render(s Surface, t engine.Timelike, size Size, opts Options) {
	g := Compute(t, size, opts)

	s.WithSave(func() {
		s.Transform(Translate(g.Center.X, g.Center.Y))

		for _, tick := range g.Ticks {
			s.WithSave(func() {
				s.Transform(Rotate(tick.Angle))
				s.Fill(tick.Rect, config.ColorTick)
			})
		}

		for _, hand := range g.Hands {
			s.WithSave(func() {
				s.Transform(Rotate(hand.Angle))
				s.Fill(hand.Rect, hand.Color)
			})
		}
	})
}
