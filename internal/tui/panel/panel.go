package panel

import "math"

// State is the panel's transition state. Exactly one Machine owns it; all
// mutation goes through the transition methods below.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// Mode selects the controller variant.
type Mode int

const (
	// Reversible keeps gesture handling active after the panel opens, so a
	// backward gesture closes it again.
	Reversible Mode = iota
	// OneShot retires gesture handling once the panel reaches Open.
	OneShot
)

// Direction is a normalized gesture direction.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

// DirectionFor derives a direction from an input delta's sign. Zero and
// non-finite deltas carry no direction.
func DirectionFor(delta float64) Direction {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta == 0 {
		return None
	}
	if delta > 0 {
		return Forward
	}
	return Backward
}

// leafCount is the number of concurrent leaf animations per transition; the
// machine advances to the stable state only after every leaf reports done.
const leafCount = 2

type Machine struct {
	state      State
	mode       Mode
	leavesLeft int
	opened     bool
}

func NewMachine(mode Mode) *Machine {
	return &Machine{state: Closed, mode: mode}
}

func (m *Machine) State() State {
	return m.state
}

// Leaves reports how many leaf animations a transition drives.
func (m *Machine) Leaves() int {
	return leafCount
}

// HandleGesture interprets a directional delta. It starts a transition and
// reports true, or is a no-op. Gestures arriving while a transition is in
// flight are dropped, not queued.
func (m *Machine) HandleGesture(delta float64) bool {
	if m.mode == OneShot && m.opened {
		return false
	}
	switch DirectionFor(delta) {
	case Forward:
		return m.Open()
	case Backward:
		return m.Close()
	}
	return false
}

// Open starts the closed→open transition. Calling it in any state other
// than Closed is a no-op.
func (m *Machine) Open() bool {
	if m.state != Closed {
		return false
	}
	m.state = Opening
	m.leavesLeft = leafCount
	return true
}

// Close starts the open→closed transition. Calling it in any state other
// than Open is a no-op.
func (m *Machine) Close() bool {
	if m.state != Open {
		return false
	}
	m.state = Closing
	m.leavesLeft = leafCount
	return true
}

// LeafDone records one leaf animation reaching its end pose. When the last
// leaf lands the machine advances to the stable state and reports true.
func (m *Machine) LeafDone() bool {
	if m.state != Opening && m.state != Closing {
		return false
	}
	if m.leavesLeft > 0 {
		m.leavesLeft--
	}
	if m.leavesLeft > 0 {
		return false
	}
	if m.state == Opening {
		m.state = Open
		m.opened = true
	} else {
		m.state = Closed
	}
	return true
}

// Transitioning reports whether an animation is currently in flight.
func (m *Machine) Transitioning() bool {
	return m.state == Opening || m.state == Closing
}
