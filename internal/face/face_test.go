package face

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/config"
)

// -----------------------------------------------------------------------------
// Test Doubles
// -----------------------------------------------------------------------------

// fixedTime is a Timelike holding seconds since midnight. It is allowed to
// exceed a day so periodicity can be checked past midnight.
type fixedTime int

func hms(h, m, s int) fixedTime { return fixedTime(h*3600 + m*60 + s) }

func (f fixedTime) Hour() int                 { return int(f) / 3600 }
func (f fixedTime) Minute() int               { return int(f) / 60 % 60 }
func (f fixedTime) Second() int               { return int(f) % 60 }
func (f fixedTime) SecondsSinceMidnight() int { return int(f) }

// fill is one recorded draw call, with the rectangle already mapped through
// the transform that was active.
type fill struct {
	Corners [4]Point
	Color   color.NRGBA
}

// recorder is a Surface that remembers what it was asked to paint.
type recorder struct {
	cur      Affine
	stack    []Affine
	maxDepth int
	fills    []fill
}

func newRecorder() *recorder {
	return &recorder{cur: Identity}
}

func (r *recorder) WithSave(fn func()) {
	r.stack = append(r.stack, r.cur)
	r.maxDepth = max(r.maxDepth, len(r.stack))
	fn()
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *recorder) Transform(a Affine) {
	r.cur = r.cur.Mul(a)
}

func (r *recorder) Fill(rect Rect, c color.Color) {
	var f fill
	for i, p := range rect.Corners() {
		f.Corners[i] = r.cur.Apply(p)
	}
	f.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
	r.fills = append(r.fills, f)
}

// sameAngle compares two angles modulo a full turn.
func sameAngle(a, b float64) bool {
	d := math.Abs(math.Mod(a-b, 2*math.Pi))
	return math.Min(d, 2*math.Pi-d) < 1e-9
}

// -----------------------------------------------------------------------------
// Hand Angle Tests
// -----------------------------------------------------------------------------

func TestHandAngles_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		time   fixedTime
		hour   float64
		minute float64
	}{
		{"Midnight", hms(0, 0, 0), 0, 0},
		{"Six o'clock", hms(6, 0, 0), math.Pi, 0},
		{"Half past midnight", hms(0, 30, 0), math.Pi / 12, math.Pi},
		{"Three o'clock", hms(3, 0, 0), math.Pi / 2, 0},
		{"Quarter to eleven", hms(10, 45, 0), 2 * math.Pi * (10.75 / 12), 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, sameAngle(tt.hour, HourHandAngle(tt.time)),
				"hour angle: want %v got %v", tt.hour, HourHandAngle(tt.time))
			assert.True(t, sameAngle(tt.minute, MinuteHandAngle(tt.time)),
				"minute angle: want %v got %v", tt.minute, MinuteHandAngle(tt.time))
		})
	}
}

func TestHandAngles_Periodicity(t *testing.T) {
	for s := 0; s < 43200; s += 997 {
		ts := fixedTime(s)
		assert.True(t, sameAngle(HourHandAngle(ts), HourHandAngle(ts+43200)), "hour hand at %d", s)
		assert.True(t, sameAngle(MinuteHandAngle(ts), MinuteHandAngle(ts+3600)), "minute hand at %d", s)
	}
}

func TestMinuteHand_SweepsWithSeconds(t *testing.T) {
	a := MinuteHandAngle(hms(0, 10, 0))
	b := MinuteHandAngle(hms(0, 10, 30))
	assert.InDelta(t, 2*math.Pi/120, b-a, 1e-12, "Thirty seconds move the minute hand half a minute mark")
}

func TestSecondHandAngle(t *testing.T) {
	assert.True(t, sameAngle(math.Pi/2, SecondHandAngle(hms(7, 1, 15))))
	assert.True(t, sameAngle(0, SecondHandAngle(hms(7, 1, 0))))
}

// -----------------------------------------------------------------------------
// Geometry Tests
// -----------------------------------------------------------------------------

func TestTickMarks(t *testing.T) {
	ticks := TickMarks(100)
	require.Len(t, ticks, 60)

	var long []int
	for i, tick := range ticks {
		assert.Equal(t, i, tick.Index)
		assert.InDelta(t, float64(i)*2*math.Pi/60, tick.Angle, 1e-12)
		if tick.Long {
			long = append(long, i)
		}
	}
	assert.Equal(t, []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55}, long)

	assert.Equal(t, Rect{X0: -3, Y0: -100, X1: 2, Y1: -80}, ticks[0].Rect)
	assert.Equal(t, Rect{X0: -1, Y0: -83, X1: 1, Y1: -80}, ticks[1].Rect)
	assert.Greater(t, ticks[0].Rect.Width(), ticks[1].Rect.Width(), "Hour marks are wider")
	assert.Greater(t, ticks[0].Rect.Height(), ticks[1].Rect.Height(), "Hour marks are longer")
}

func TestHands_Proportions(t *testing.T) {
	hands := Hands(hms(0, 0, 0), 100, Options{})
	require.Len(t, hands, 2, "The reference face ships without a second hand")

	hour, minute := hands[0], hands[1]
	assert.Equal(t, HourHand, hour.Kind)
	assert.Equal(t, MinuteHand, minute.Kind)
	assert.Equal(t, Rect{X0: -6, Y0: -40, X1: 6, Y1: 0}, hour.Rect)
	assert.Equal(t, Rect{X0: -3, Y0: -80, X1: 2, Y1: 0}, minute.Rect)
	assert.Equal(t, config.ColorHand, hour.Color)
	assert.Equal(t, config.ColorHand, minute.Color)
	assert.InDelta(t, minute.Rect.Height()/2, hour.Rect.Height(), 1e-12)
}

func TestHands_OptionalSecondHand(t *testing.T) {
	hands := Hands(hms(0, 0, 15), 100, Options{ShowSecondHand: true})
	require.Len(t, hands, 3)

	sec := hands[2]
	assert.Equal(t, SecondHand, sec.Kind)
	assert.Equal(t, "second", sec.Kind.String())
	assert.Equal(t, config.ColorSecondHand, sec.Color)
	assert.True(t, sameAngle(math.Pi/2, sec.Angle))
	assert.Equal(t, Rect{X0: -1, Y0: -80, X1: 1, Y1: 0}, sec.Rect)
}

func TestCompute_CentersOnSurface(t *testing.T) {
	g := Compute(hms(1, 2, 3), Size{300, 200}, Options{})

	assert.Equal(t, Point{150, 100}, g.Center)
	assert.Equal(t, 100.0, g.MaxRadius)
	assert.Len(t, g.Ticks, 60)
	assert.Len(t, g.Hands, 2)
}

// -----------------------------------------------------------------------------
// Render Tests
// -----------------------------------------------------------------------------

func TestRender_DrawOrderAndColors(t *testing.T) {
	rec := newRecorder()
	Render(rec, hms(3, 0, 0), Size{200, 200}, Options{ShowSecondHand: true})

	require.Len(t, rec.fills, 63)
	for _, f := range rec.fills[:60] {
		assert.Equal(t, config.ColorTick, f.Color)
	}
	assert.Equal(t, config.ColorHand, rec.fills[60].Color)
	assert.Equal(t, config.ColorHand, rec.fills[61].Color)
	assert.Equal(t, config.ColorSecondHand, rec.fills[62].Color)

	// The transform stack is fully unwound afterwards.
	assert.Equal(t, Identity, rec.cur)
	assert.Empty(t, rec.stack)
	assert.Equal(t, 2, rec.maxDepth, "One scope for the face, one per element")
}

func TestRender_HourHandPlacement(t *testing.T) {
	rec := newRecorder()
	Render(rec, hms(3, 0, 0), Size{200, 200}, Options{})

	// At three o'clock the hour hand lies along +x from the center.
	hour := rec.fills[60]
	var minX, maxX, minY, maxY = math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	for _, p := range hour.Corners {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	assert.InDelta(t, 100, minX, 1e-9)
	assert.InDelta(t, 140, maxX, 1e-9)
	assert.InDelta(t, 94, minY, 1e-9)
	assert.InDelta(t, 106, maxY, 1e-9)
}

func TestRender_Idempotent(t *testing.T) {
	first, second := newRecorder(), newRecorder()
	tm := hms(17, 42, 9)

	Render(first, tm, Size{320, 240}, Options{ShowSecondHand: true})
	Render(second, tm, Size{320, 240}, Options{ShowSecondHand: true})

	if diff := cmp.Diff(first.fills, second.fills); diff != "" {
		t.Errorf("render is not idempotent (-first +second):\n%s", diff)
	}
}
