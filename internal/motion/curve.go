package motion

import "math"

// degenerateDist is the distance below which a travel collapses to a
// single point instead of a curve.
const degenerateDist = 1e-6

// Point is a position in screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt converts integer pixel coordinates to a Point.
func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Round returns the point as integer pixel coordinates.
func (p Point) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PathLength sums the distances between consecutive points.
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Dist(points[i-1], points[i])
	}
	return total
}

// CurveKind selects the parametric curve built for a travel.
type CurveKind int

const (
	// CurveCubic bends the path with two randomized control points.
	// The default.
	CurveCubic CurveKind = iota

	// CurveQuadratic is the simpler single-control-point alternative.
	CurveQuadratic
)

// quadBezier evaluates a quadratic Bezier through p0, c, p1 at t.
func quadBezier(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// cubicBezier evaluates a cubic Bezier through p0, c1, c2, p1 at t.
func cubicBezier(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	uu := u * u
	tt := t * t
	return Point{
		X: uu*u*p0.X + 3*uu*t*c1.X + 3*u*tt*c2.X + tt*t*p1.X,
		Y: uu*u*p0.Y + 3*uu*t*c1.Y + 3*u*tt*c2.Y + tt*t*p1.Y,
	}
}

// Easing remaps linear progress in [0,1] to eased progress in [0,1].
// Implementations must be monotonic with ease(0)=0 and ease(1)=1.
type Easing func(t float64) float64

// EaseInOutCubic is the symmetric cubic ease.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseSmootherStep is a quintic ease with zero first and second
// derivatives at both ends, for extra-soft departures and arrivals.
func EaseSmootherStep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// easeInverse finds t with e(t) close to s by bisection.
// e must be monotonically increasing on [0,1].
func easeInverse(e Easing, s float64) float64 {
	if s <= 0 {
		return 0
	}
	if s >= 1 {
		return 1
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		if e(mid) < s {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
