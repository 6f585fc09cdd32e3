package deform

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/sphereballs/shared/gamemath"
	"go.uber.org/zap"
)

// Phase is the controller's position in the interaction state machine.
type Phase int

const (
	PhaseAtRest   Phase = iota // settled, no gesture held
	PhaseActive                // at least one gesture is tracking live input
	PhaseEasing                // released, channels still travelling
	PhaseLaunched              // Bouncy only: out on a bounce trajectory
)

func (p Phase) String() string {
	switch p {
	case PhaseAtRest:
		return "at-rest"
	case PhaseActive:
		return "active"
	case PhaseEasing:
		return "easing"
	case PhaseLaunched:
		return "launched"
	}
	return "unknown"
}

// CancelPolicy decides what happens to pending follow-ups when a new event
// arrives.
type CancelPolicy int

const (
	// CancelOverlapping cancels a pending follow-up when a new event writes any
	// field the follow-up would write.
	CancelOverlapping CancelPolicy = iota
	// CancelNone never cancels: a stale follow-up may overwrite a newer target.
	CancelNone
)

// DefaultScreen is the portrait screen size used until SetScreen is called.
var DefaultScreen = gamemath.Vec{X: 390, Y: 844}

type pendingFollowUp struct {
	token Token
	mask  Mask
}

// Controller turns gesture events into deformation targets for one ball.
// It is not safe for concurrent use; drive it from a single loop.
type Controller struct {
	responder Responder
	bounds    Bounds
	anim      *Animator
	sched     *Scheduler
	pending   []pendingFollowUp

	haptics Haptics
	logger  *zap.Logger
	random  func() float64
	policy  CancelPolicy
	screen  gamemath.Vec

	velocity gamemath.Vec
	held     gestureKind
	launched bool
	phase    Phase
}

// Option configures a Controller.
type Option func(*Controller)

// WithHaptics sets the haptic sink. nil disables haptics.
func WithHaptics(h Haptics) Option {
	return func(c *Controller) {
		if h == nil {
			h = noHaptics{}
		}
		c.haptics = h
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRand sets the random source used for launch jitter.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.random = r.Float64
		}
	}
}

// WithScreen sets the screen size used for bounce limits.
func WithScreen(screen gamemath.Vec) Option {
	return func(c *Controller) {
		c.screen = screen
	}
}

// WithSize sets the ball's display diameter.
func WithSize(size float64) Option {
	return func(c *Controller) {
		c.anim.SetSize(size)
	}
}

// WithCancelPolicy selects how pending follow-ups react to new events.
func WithCancelPolicy(p CancelPolicy) Option {
	return func(c *Controller) {
		c.policy = p
	}
}

// NewController creates a controller at rest for archetype a.
func NewController(a Archetype, opts ...Option) (*Controller, error) {
	responder, err := NewResponder(a)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		responder: responder,
		bounds:    a.Bounds(),
		anim:      NewAnimator(Identity()),
		sched:     NewScheduler(),
		haptics:   noHaptics{},
		logger:    zap.NewNop(),
		random:    rand.Float64,
		screen:    DefaultScreen,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Archetype is the controller's archetype.
func (c *Controller) Archetype() Archetype {
	return c.responder.Archetype()
}

// HandleTap dispatches a tap at the given location.
func (c *Controller) HandleTap(at gamemath.Vec) {
	c.Handle(Tap{At: at})
}

// HandlePinch dispatches a live pinch (active) or its release.
func (c *Controller) HandlePinch(scale float64, active bool) {
	if active {
		c.Handle(PinchChanged{Scale: scale})
		return
	}
	c.Handle(PinchEnded{Scale: scale})
}

// HandleDrag dispatches a live drag (active) or its release.
func (c *Controller) HandleDrag(translation gamemath.Vec, active bool) {
	if active {
		c.Handle(DragChanged{Translation: translation})
		return
	}
	c.Handle(DragEnded{Translation: translation})
}

// HandleLongPress dispatches a long-press state change.
func (c *Controller) HandleLongPress(active bool) {
	c.Handle(LongPressChanged{Active: active})
}

// Handle runs ev through the archetype's response table and starts the
// resulting transitions.
func (c *Controller) Handle(ev Event) {
	kind, held := classify(ev)
	switch kind {
	case gestureTap:
		c.haptics.Pulse(Light)
	case gestureLongPress:
		c.haptics.Pulse(Medium)
	}

	env := Env{
		State:  c.anim.Target(),
		Screen: c.screen,
		Rand:   c.uniform,
	}
	resp := c.responder.Respond(ev, env)
	cancelled := c.apply(resp)

	if held {
		c.held |= kind
	} else {
		c.held &^= kind
	}
	c.refreshPhase()

	c.logger.Debug("gesture",
		zap.Stringer("archetype", c.Archetype()),
		zap.Stringer("event", ev),
		zap.Int("transitions", len(resp.Transitions)),
		zap.Int("followUps", len(resp.FollowUps)),
		zap.Int("cancelled", cancelled),
		zap.Stringer("phase", c.phase),
	)
}

func (c *Controller) apply(resp Response) int {
	cancelled := 0
	if c.policy == CancelOverlapping {
		cancelled = c.cancelOverlapping(resp.Mask())
	}

	for _, t := range resp.Transitions {
		if t.Target.Empty() {
			continue
		}
		c.anim.Apply(t.Target.Clamp(c.bounds), t.Curve)
	}
	for _, fu := range resp.FollowUps {
		c.schedule(fu)
	}
	for _, h := range resp.Haptics {
		c.haptics.Pulse(h)
	}
	if resp.Launch != nil {
		c.velocity = *resp.Launch
		c.launched = true
	}
	return cancelled
}

func (c *Controller) schedule(fu FollowUp) {
	t := fu.Transition
	if t.Target.Empty() {
		return
	}
	target := t.Target.Clamp(c.bounds)
	token := c.sched.After(fu.Delay, func() {
		c.anim.Apply(target, t.Curve)
	})
	c.pending = append(c.pending, pendingFollowUp{token: token, mask: target.Mask()})
}

func (c *Controller) cancelOverlapping(m Mask) int {
	n := 0
	for _, p := range c.pending {
		if p.mask.Overlaps(m) && p.token.Cancel() {
			n++
		}
	}
	c.prunePending()
	return n
}

func (c *Controller) prunePending() {
	live := c.pending[:0]
	for _, p := range c.pending {
		if p.token.Active() {
			live = append(live, p)
		}
	}
	c.pending = live
}

func (c *Controller) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*c.random()
}

// Update advances follow-up timers and every animation channel by dt.
func (c *Controller) Update(dt time.Duration) {
	c.sched.Advance(dt)
	c.anim.Advance(dt)
	c.refreshPhase()
}

func (c *Controller) refreshPhase() {
	c.prunePending()
	switch {
	case c.held != 0:
		c.phase = PhaseActive
	case c.anim.Settled() && len(c.pending) == 0:
		c.phase = PhaseAtRest
		c.launched = false
	case c.launched:
		c.phase = PhaseLaunched
	default:
		c.phase = PhaseEasing
	}
}

// State is the interpolated deformation for the current frame.
func (c *Controller) State() State {
	return c.anim.Current()
}

// Target is the deformation the ball is heading toward.
func (c *Controller) Target() State {
	return c.anim.Target()
}

// Velocity is the last launch velocity (Bouncy only).
func (c *Controller) Velocity() gamemath.Vec {
	return c.velocity
}

// Phase is the current interaction phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Pending counts follow-ups that have not fired yet.
func (c *Controller) Pending() int {
	return c.sched.Pending()
}

// SetSize changes the display diameter without touching the deformation.
func (c *Controller) SetSize(size float64) {
	c.anim.SetSize(size)
}

// SetScreen changes the screen size used for bounce limits.
func (c *Controller) SetScreen(screen gamemath.Vec) {
	c.screen = screen
}

// Reset drops pending follow-ups and returns to rest, keeping the size.
func (c *Controller) Reset() {
	c.sched.CancelAll()
	c.pending = c.pending[:0]

	s := c.anim.Current()
	s.Reset()
	c.anim.Reset(s)

	c.velocity = gamemath.Vec{}
	c.held = 0
	c.launched = false
	c.phase = PhaseAtRest
}
