package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Step is one stage of a Sequence. Offset delays the stage's start after
// the prior stage completes.
type Step struct {
	ID       string
	Offset   time.Duration
	Duration time.Duration
	Easing   Easing
}

// StageDoneMsg signals one stage of a sequence reaching its end pose.
type StageDoneMsg struct {
	SequenceID string
	StepID     string
	Index      int
}

type stageBeginMsg struct {
	sequenceID string
	index      int
}

// Sequence plays steps strictly one after another: each stage starts only
// on the prior stage's completion signal. The final stage's completion also
// emits DoneMsg for the sequence itself.
type Sequence struct {
	id      string
	steps   []Step
	index   int
	current Animation
	running bool
	done    bool
}

func NewSequence(id string, steps []Step) Sequence {
	return Sequence{id: id, steps: steps}
}

func (s Sequence) ID() string { return s.id }

func (s Sequence) Done() bool { return s.done }

func (s Sequence) Running() bool { return s.running }

// ActiveIndex is the index of the stage currently playing, or len(steps)
// once the sequence has finished.
func (s Sequence) ActiveIndex() int {
	if s.done {
		return len(s.steps)
	}
	return s.index
}

// StageProgress reports eased progress of the stage at index i: 1 for
// completed stages, 0 for stages not yet started.
func (s Sequence) StageProgress(i int) float64 {
	switch {
	case i < s.ActiveIndex():
		return 1
	case i == s.index && s.running:
		return s.current.Progress()
	default:
		return 0
	}
}

func (s Sequence) Start() (Sequence, tea.Cmd) {
	if len(s.steps) == 0 {
		s.done = true
		id := s.id
		return s, func() tea.Msg { return DoneMsg{ID: id} }
	}
	s.index = 0
	s.running = true
	s.done = false
	return s, s.beginStageCmd(0)
}

func (s Sequence) Update(msg tea.Msg) (Sequence, tea.Cmd) {
	if !s.running {
		return s, nil
	}
	switch msg := msg.(type) {
	case stageBeginMsg:
		if msg.sequenceID != s.id || msg.index != s.index {
			return s, nil
		}
		step := s.steps[s.index]
		var cmd tea.Cmd
		s.current, cmd = New(s.stepAnimationID(s.index), step.Duration, step.Easing).Start()
		return s, cmd
	case FrameMsg:
		var cmd tea.Cmd
		s.current, cmd = s.current.Update(msg)
		return s, cmd
	case DoneMsg:
		if msg.ID != s.stepAnimationID(s.index) {
			return s, nil
		}
		stageDone := StageDoneMsg{SequenceID: s.id, StepID: s.steps[s.index].ID, Index: s.index}
		s.index++
		if s.index >= len(s.steps) {
			s.running = false
			s.done = true
			id := s.id
			return s, tea.Batch(
				func() tea.Msg { return stageDone },
				func() tea.Msg { return DoneMsg{ID: id} },
			)
		}
		return s, tea.Batch(
			func() tea.Msg { return stageDone },
			s.beginStageCmd(s.index),
		)
	}
	return s, nil
}

func (s Sequence) beginStageCmd(index int) tea.Cmd {
	begin := stageBeginMsg{sequenceID: s.id, index: index}
	offset := s.steps[index].Offset
	if offset <= 0 {
		return func() tea.Msg { return begin }
	}
	return tea.Tick(offset, func(time.Time) tea.Msg { return begin })
}

func (s Sequence) stepAnimationID(index int) string {
	return s.id + "/" + s.steps[index].ID
}
