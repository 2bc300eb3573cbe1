package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoraes/dexbook/internal/app"
	"github.com/lmoraes/dexbook/internal/catalog"
	"github.com/lmoraes/dexbook/internal/tui/anim"
)

type overlayPhase int

const (
	overlayLoading overlayPhase = iota
	overlayReady
	overlayClosing
)

const (
	overlayRevealID  = "overlay/reveal"
	overlayCounterID = "overlay/counter"
	overlayCloseID   = "overlay/close"
)

// Reveal stage indices, in play order.
const (
	revealFrame = iota
	revealImage
	revealRule
	revealPanels
)

// overlayState is one overlay instance. Instances are never reused: each
// item gets a fresh one with a new generation, and fetch messages carrying
// an older generation are dropped.
type overlayState struct {
	gen  int
	item app.ItemSummary

	detail    catalog.Detail
	hasDetail bool
	detailErr string

	descText string
	hasDesc  bool
	descErr  string

	pending int
	phase   overlayPhase

	reveal    anim.Sequence
	counter   anim.Animation
	closeAnim anim.Animation

	// advancing marks an exit via "next" rather than a plain close.
	advancing bool
}

func newOverlay(gen int, item app.ItemSummary) *overlayState {
	return &overlayState{
		gen:     gen,
		item:    item,
		pending: 2,
		phase:   overlayLoading,
	}
}

// settleDetail records one of the two fan-out fetches. The overlay advances
// to ready only when both have settled; a failed section degrades to inline
// error text without blocking the other.
func (o *overlayState) settleDetail(detail catalog.Detail, err error) tea.Cmd {
	if err != nil {
		o.detailErr = err.Error()
	} else {
		o.detail = detail
		o.hasDetail = true
	}
	return o.fetchSettled()
}

func (o *overlayState) settleDescription(text string, err error) tea.Cmd {
	if err != nil {
		o.descErr = err.Error()
	} else {
		o.descText = text
		o.hasDesc = true
	}
	return o.fetchSettled()
}

func (o *overlayState) fetchSettled() tea.Cmd {
	if o.pending > 0 {
		o.pending--
	}
	if o.pending > 0 || o.phase != overlayLoading {
		return nil
	}
	o.phase = overlayReady
	return o.startReveal()
}

func (o *overlayState) startReveal() tea.Cmd {
	o.reveal = anim.NewSequence(overlayRevealID, []anim.Step{
		{ID: "frame", Duration: 220 * time.Millisecond, Easing: anim.EaseOutCubic},
		{ID: "image", Offset: 60 * time.Millisecond, Duration: 260 * time.Millisecond, Easing: anim.EaseOutCubic},
		{ID: "rule", Duration: 180 * time.Millisecond, Easing: anim.Linear},
		{ID: "panels", Offset: 40 * time.Millisecond, Duration: 300 * time.Millisecond, Easing: anim.EaseOutCubic},
	})
	o.counter = anim.New(overlayCounterID, 600*time.Millisecond, anim.EaseOutCubic)

	var revealCmd, counterCmd tea.Cmd
	o.reveal, revealCmd = o.reveal.Start()
	o.counter, counterCmd = o.counter.Start()
	return tea.Batch(revealCmd, counterCmd)
}

// beginClose plays the shrink-out animation. It is idempotent: repeated
// close or next requests inside the close window do not replay it.
func (o *overlayState) beginClose(advancing bool, duration time.Duration) tea.Cmd {
	if o.phase == overlayClosing {
		o.advancing = o.advancing || advancing
		return nil
	}
	o.phase = overlayClosing
	o.advancing = advancing
	var cmd tea.Cmd
	o.closeAnim, cmd = anim.New(overlayCloseID, duration, anim.EaseInCubic).Start()
	return cmd
}

// counterValue is the identifier shown by the counter animation, advancing
// from 0 to the item's id.
func (o *overlayState) counterValue() int {
	if !o.counter.Running() && !o.counter.Done() {
		return 0
	}
	return int(math.Round(o.counter.Progress() * float64(o.item.ID)))
}

// updateAnimations forwards animation traffic to whichever of the overlay's
// animations claims it.
func (o *overlayState) updateAnimations(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	o.reveal, cmd = o.reveal.Update(msg)
	cmds = append(cmds, cmd)
	o.counter, cmd = o.counter.Update(msg)
	cmds = append(cmds, cmd)
	o.closeAnim, cmd = o.closeAnim.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}
