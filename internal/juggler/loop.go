package juggler

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/kjetilmb/mouse-juggler/internal/config"
	"github.com/kjetilmb/mouse-juggler/internal/device"
	"github.com/kjetilmb/mouse-juggler/internal/motion"
)

// Session loop tuning.
const (
	// pauseSlice is the coarse segmentation of an idle pause; each
	// slice is further cut by Signal.Wait.
	pauseSlice = time.Second

	// Most travels use the sampled displacement as is; a minority
	// shrink or stretch it so travel lengths don't settle into a
	// uniform band.
	displacementScaleChance = 0.30
	displacementScaleSmall  = 0.3
	displacementScaleLarge  = 2.0

	// Pauses longer than fidgetEligible may be split around a small
	// slow hop near the current position.
	fidgetEligible = 2 * time.Second
	fidgetChance   = 0.30
	fidgetDistMin  = 5
	fidgetDistMax  = 25
	fidgetSpeedLo  = 0.3
	fidgetSpeedHi  = 0.6

	// edgeMargin keeps destinations off the exact screen border.
	edgeMargin = 1
)

// session is one run of the movement loop: a config snapshot, the
// generators built from it, and the stop signal it obeys. The worker
// goroutine owns the pointer for the life of the session.
type session struct {
	cfg   config.Config
	dev   device.Pointer
	sig   *Signal
	rnd   *rand.Rand
	gen   *motion.Generator
	fid   *motion.Generator
	sched *motion.Scheduler

	travels atomic.Int64
	pixels  atomic.Int64
	started time.Time
}

func newSession(cfg config.Config, dev device.Pointer, sig *Signal, rnd *rand.Rand) *session {
	gen := motion.NewGenerator(rnd, motion.Options{
		StepMin:  cfg.Steps.Min,
		StepMax:  cfg.Steps.Max,
		SpeedMin: cfg.Speed.Min,
		SpeedMax: cfg.Speed.Max,
		Noise:    cfg.Noise,
	})
	fid := motion.NewGenerator(rnd, motion.Options{
		StepMin:  cfg.Steps.Min,
		StepMax:  cfg.Steps.Min,
		SpeedMin: cfg.Speed.Min * fidgetSpeedLo,
		SpeedMax: cfg.Speed.Min * fidgetSpeedHi,
		Noise:    cfg.Noise,
	})
	return &session{
		cfg:     cfg,
		dev:     dev,
		sig:     sig,
		rnd:     rnd,
		gen:     gen,
		fid:     fid,
		sched:   motion.NewScheduler(dev),
		started: time.Now(),
	}
}

// run drives the movement loop until the signal stops it. Device
// failures never end the loop, only cancellation does.
func (s *session) run() {
	for !s.sig.Stopped() {
		x, y := s.dev.Position()
		from := motion.Pt(x, y)
		traj := s.clampTrajectory(s.gen.Generate(from, s.pickDestination(from)))
		if !s.sched.Play(traj, s.sig) {
			return
		}
		s.travels.Add(1)
		s.pixels.Add(int64(math.Round(motion.PathLength(traj.Points))))
		if !s.idle() {
			return
		}
	}
}

func (s *session) stats() Stats {
	return Stats{
		Travels: int(s.travels.Load()),
		Pixels:  s.pixels.Load(),
		Started: s.started,
	}
}

// pickDestination samples a signed displacement per axis, occasionally
// rescales it, and clamps the result into screen bounds.
func (s *session) pickDestination(from motion.Point) motion.Point {
	dx := float64(s.cfg.DistX.Sample(s.rnd))
	dy := float64(s.cfg.DistY.Sample(s.rnd))
	if s.rnd.Float64() < 0.5 {
		dx = -dx
	}
	if s.rnd.Float64() < 0.5 {
		dy = -dy
	}
	if s.rnd.Float64() < displacementScaleChance {
		scale := displacementScaleSmall
		if s.rnd.Float64() < 0.5 {
			scale = displacementScaleLarge
		}
		dx *= scale
		dy *= scale
	}
	return s.clampToScreen(motion.Point{X: from.X + dx, Y: from.Y + dy})
}

// clampToScreen keeps p inside the screen with a one-pixel margin, so
// the cursor never parks on the exact border.
func (s *session) clampToScreen(p motion.Point) motion.Point {
	w, h := s.dev.Size()
	return clampPoint(p, w, h)
}

// clampTrajectory pulls every point of a travel inside the screen.
// Curves bow away from the straight line, so a path running close to
// an edge can bulge past it even when both endpoints are on screen;
// clamped points slide along the border instead.
func (s *session) clampTrajectory(t motion.Trajectory) motion.Trajectory {
	w, h := s.dev.Size()
	for i := range t.Points {
		t.Points[i] = clampPoint(t.Points[i], w, h)
	}
	return t
}

func clampPoint(p motion.Point, w, h int) motion.Point {
	return motion.Point{
		X: clamp(p.X, edgeMargin, float64(w-1-edgeMargin)),
		Y: clamp(p.Y, edgeMargin, float64(h-1-edgeMargin)),
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// idle waits out a sampled pause between travels, sometimes splitting
// a longer pause around a fidget. Returns false when the stop signal
// cut the pause short.
func (s *session) idle() bool {
	pause := time.Duration(s.cfg.Pause.Sample(s.rnd) * float64(time.Second))
	if s.shouldFidget(pause) {
		return s.fidget(pause)
	}
	return s.wait(pause)
}

// shouldFidget decides whether a pause gets split around a hop. Only
// pauses long enough to read as a real break are eligible.
func (s *session) shouldFidget(pause time.Duration) bool {
	return pause > fidgetEligible && s.rnd.Float64() < fidgetChance
}

// wait sleeps through d in coarse slices so a stop lands quickly even
// in pauses of many seconds.
func (s *session) wait(d time.Duration) bool {
	for d > pauseSlice {
		if !s.sig.Wait(pauseSlice) {
			return false
		}
		d -= pauseSlice
	}
	return s.sig.Wait(d)
}

// fidget splits pause around a small slow hop near the current
// position: part of the wait, the hop, then the rest of the wait.
func (s *session) fidget(pause time.Duration) bool {
	before := time.Duration(float64(pause) * (0.3 + s.rnd.Float64()*0.4))
	if !s.wait(before) {
		return false
	}
	x, y := s.dev.Position()
	from := motion.Pt(x, y)
	traj := s.clampTrajectory(s.fid.Generate(from, s.fidgetDestination(from)))
	if !s.sched.Play(traj, s.sig) {
		return false
	}
	s.pixels.Add(int64(math.Round(motion.PathLength(traj.Points))))
	return s.wait(pause - before)
}

// fidgetDestination picks a spot a handful of pixels away.
func (s *session) fidgetDestination(from motion.Point) motion.Point {
	dx := float64(fidgetDistMin + s.rnd.Intn(fidgetDistMax-fidgetDistMin+1))
	dy := float64(fidgetDistMin + s.rnd.Intn(fidgetDistMax-fidgetDistMin+1))
	if s.rnd.Float64() < 0.5 {
		dx = -dx
	}
	if s.rnd.Float64() < 0.5 {
		dy = -dy
	}
	return s.clampToScreen(motion.Point{X: from.X + dx, Y: from.Y + dy})
}
