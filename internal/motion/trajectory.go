// Package motion generates humanlike pointer trajectories and plays
// them back against a pointer device.
package motion

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Trajectory synthesis constants.
const (
	// ReferenceDist is the travel distance in pixels at which the
	// adaptive step count reaches the top of the configured range.
	ReferenceDist = 500.0

	// StepJitter is the random slack added to the adaptive step count
	// before clamping back into the configured range.
	StepJitter = 2

	// SpeedJitter is the multiplicative jitter applied to the sampled
	// travel speed.
	SpeedJitter = 0.10

	// ControlOffsetFrac bounds the perpendicular control point offset
	// as a fraction of the travel distance.
	ControlOffsetFrac = 1.0 / 3.0

	// minSpeed guards the travel-time division against a zero speed.
	minSpeed = 1e-3
)

// Trajectory is one point-to-point travel: ordered positions plus the
// delay following each step. Delays[i] is the wait after moving to
// Points[i], so len(Delays) is always len(Points)-1. Total is the exact
// sum of the delays. Treat all fields as read-only once generated.
type Trajectory struct {
	Points []Point
	Delays []time.Duration
	Total  time.Duration
}

// Options tune trajectory synthesis.
type Options struct {
	StepMin  int     // fewest positions per travel
	StepMax  int     // most positions per travel
	SpeedMin float64 // pixels per second
	SpeedMax float64 // pixels per second
	Noise    float64 // stddev in pixels of interior point noise, 0 disables
	Curve    CurveKind
	Ease     Easing
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		StepMin:  20,
		StepMax:  50,
		SpeedMin: 200,
		SpeedMax: 800,
		Noise:    1.5,
		Curve:    CurveCubic,
		Ease:     EaseSmootherStep,
	}
}

// Generator builds randomized curved trajectories between screen
// positions.
type Generator struct {
	rnd   *rand.Rand
	opts  Options
	noise distuv.Normal
}

// NewGenerator creates a generator drawing randomness from rnd.
// Non-positive step and speed bounds fall back to DefaultOptions
// values; a nil Ease falls back to EaseSmootherStep. Noise of zero
// stays zero and disables point noise.
func NewGenerator(rnd *rand.Rand, opts Options) *Generator {
	def := DefaultOptions()
	if opts.StepMin <= 0 {
		opts.StepMin = def.StepMin
	}
	if opts.StepMax <= 0 {
		opts.StepMax = def.StepMax
	}
	if opts.StepMax < opts.StepMin {
		opts.StepMax = opts.StepMin
	}
	if opts.SpeedMin <= 0 {
		opts.SpeedMin = def.SpeedMin
	}
	if opts.SpeedMax <= 0 {
		opts.SpeedMax = def.SpeedMax
	}
	if opts.SpeedMax < opts.SpeedMin {
		opts.SpeedMax = opts.SpeedMin
	}
	if opts.Ease == nil {
		opts.Ease = def.Ease
	}
	return &Generator{
		rnd:   rnd,
		opts:  opts,
		noise: distuv.Normal{Mu: 0, Sigma: opts.Noise},
	}
}

// Generate produces a randomized curved trajectory from one position to
// another. A travel below the degenerate distance yields a single-point
// trajectory with no delays.
func (g *Generator) Generate(from, to Point) Trajectory {
	dist := Dist(from, to)
	if dist < degenerateDist {
		return Trajectory{Points: []Point{from}}
	}

	n := g.stepCount(dist)
	ctrl := g.controlPoints(from, to, dist)

	points := make([]Point, n)
	for i := range points {
		t := float64(i) / float64(n-1)
		points[i] = evalCurve(from, ctrl, to, t)
	}
	if g.opts.Noise > 0 {
		// Endpoints stay exact; only interior points wobble.
		for i := 1; i < n-1; i++ {
			points[i].X += g.noise.Rand()
			points[i].Y += g.noise.Rand()
		}
	}

	total := g.travelTime(PathLength(points))
	return Trajectory{
		Points: points,
		Delays: easedDelays(total, n, g.opts.Ease),
		Total:  total,
	}
}

// stepCount picks how many positions a travel of the given distance
// gets: the configured range scaled by distance, plus jitter, clamped
// back into the range. Never fewer than two points, or the destination
// would be unreachable.
func (g *Generator) stepCount(dist float64) int {
	n := baseSteps(g.opts.StepMin, g.opts.StepMax, dist)
	n += g.rnd.Intn(2*StepJitter+1) - StepJitter
	if n < g.opts.StepMin {
		n = g.opts.StepMin
	}
	if n > g.opts.StepMax {
		n = g.opts.StepMax
	}
	if n < 2 {
		n = 2
	}
	return n
}

// baseSteps scales the step range by distance, capping the scale factor
// at 1.0 for travels at or beyond the reference distance.
func baseSteps(lo, hi int, dist float64) int {
	scale := dist / ReferenceDist
	if scale > 1 {
		scale = 1
	}
	return lo + int(math.Round(scale*float64(hi-lo)))
}

// controlPoints builds the random control points bending the path away
// from the straight line. Offsets are perpendicular to the travel and
// bounded by ControlOffsetFrac of its length.
func (g *Generator) controlPoints(from, to Point, dist float64) []Point {
	px := -(to.Y - from.Y) / dist
	py := (to.X - from.X) / dist
	maxOff := dist * ControlOffsetFrac

	at := func(frac float64) Point {
		off := (g.rnd.Float64()*2 - 1) * maxOff
		return Point{
			X: from.X + (to.X-from.X)*frac + px*off,
			Y: from.Y + (to.Y-from.Y)*frac + py*off,
		}
	}

	if g.opts.Curve == CurveQuadratic {
		return []Point{at(0.5)}
	}
	return []Point{at(1.0 / 3.0), at(2.0 / 3.0)}
}

func evalCurve(from Point, ctrl []Point, to Point, t float64) Point {
	if len(ctrl) == 1 {
		return quadBezier(from, ctrl[0], to, t)
	}
	return cubicBezier(from, ctrl[0], ctrl[1], to, t)
}

// travelTime derives the total duration for a path from a sampled speed
// with multiplicative jitter.
func (g *Generator) travelTime(pathLen float64) time.Duration {
	speed := g.opts.SpeedMin + g.rnd.Float64()*(g.opts.SpeedMax-g.opts.SpeedMin)
	speed *= 1 + (g.rnd.Float64()*2-1)*SpeedJitter
	if speed < minSpeed {
		speed = minSpeed
	}
	return time.Duration(pathLen / speed * float64(time.Second))
}

// easedDelays splits total across the trajectory's segments so progress
// through the path follows the easing curve: equal progress increments
// are mapped through the easing inverse, giving long waits near both
// endpoints and short ones mid-flight. The last delay absorbs rounding
// so the delays sum to exactly total.
func easedDelays(total time.Duration, n int, ease Easing) []time.Duration {
	if n < 2 {
		return nil
	}
	delays := make([]time.Duration, n-1)
	var sum time.Duration
	prev := 0.0
	for i := 1; i < n-1; i++ {
		u := easeInverse(ease, float64(i)/float64(n-1))
		delays[i-1] = time.Duration((u - prev) * float64(total))
		sum += delays[i-1]
		prev = u
	}
	last := total - sum
	if last < 0 {
		last = 0
	}
	delays[n-2] = last
	return delays
}
