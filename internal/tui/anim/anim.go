package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = time.Second / 30

// Easing maps linear progress 0..1 to eased progress 0..1.
type Easing func(float64) float64

func Linear(t float64) float64 { return t }

func EaseInCubic(t float64) float64 { return t * t * t }

func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EasingByName resolves a configured easing name. Unknown names fall back
// to linear; the specific curves are defaults, not contract.
func EasingByName(name string) Easing {
	switch name {
	case "ease-in-cubic":
		return EaseInCubic
	case "ease-out-cubic":
		return EaseOutCubic
	case "ease-in-out-cubic":
		return EaseInOutCubic
	default:
		return Linear
	}
}

// FrameMsg advances the animation with the given ID.
type FrameMsg struct {
	ID string
	At time.Time
}

// DoneMsg signals that the animation with the given ID reached its end
// pose. Callers advance on this message, never on a parallel timed wait.
type DoneMsg struct {
	ID string
}

// Animation is a frame-tick animation. It is a value: Update returns the
// advanced copy plus the command that keeps it running.
type Animation struct {
	id       string
	duration time.Duration
	easing   Easing
	start    time.Time
	now      time.Time
	running  bool
	done     bool

	nowFn func() time.Time
}

func New(id string, duration time.Duration, easing Easing) Animation {
	if easing == nil {
		easing = Linear
	}
	if duration <= 0 {
		duration = frameInterval
	}
	return Animation{id: id, duration: duration, easing: easing, nowFn: time.Now}
}

func (a Animation) ID() string { return a.id }

func (a Animation) Running() bool { return a.running }

func (a Animation) Done() bool { return a.done }

// Progress returns eased progress in 0..1.
func (a Animation) Progress() float64 {
	if a.done {
		return 1
	}
	if !a.running || a.now.Before(a.start) {
		return 0
	}
	t := float64(a.now.Sub(a.start)) / float64(a.duration)
	if t > 1 {
		t = 1
	}
	return a.easing(t)
}

// Start begins the animation and returns the first frame command.
func (a Animation) Start() (Animation, tea.Cmd) {
	a.start = a.nowFn()
	a.now = a.start
	a.running = true
	a.done = false
	return a, frameCmd(a.id)
}

// Update consumes this animation's frame messages. On the final frame it
// emits DoneMsg instead of scheduling another tick.
func (a Animation) Update(msg tea.Msg) (Animation, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != a.id || !a.running {
		return a, nil
	}
	a.now = frame.At
	if a.now.Sub(a.start) >= a.duration {
		a.running = false
		a.done = true
		id := a.id
		return a, func() tea.Msg { return DoneMsg{ID: id} }
	}
	return a, frameCmd(a.id)
}

func frameCmd(id string) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, At: t}
	})
}
