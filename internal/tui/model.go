package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoraes/dexbook/internal/app"
	"github.com/lmoraes/dexbook/internal/tui/anim"
	"github.com/lmoraes/dexbook/internal/tui/panel"
	"github.com/lmoraes/dexbook/internal/tui/theme"
)

const (
	leafLeftID  = "leaf/left"
	leafRightID = "leaf/right"
)

// Options carries the non-normative timing and easing defaults plus the
// panel controller variant.
type Options struct {
	Mode                 panel.Mode
	OpenDuration         time.Duration
	CloseDuration        time.Duration
	OpenEasing           anim.Easing
	CloseEasing          anim.Easing
	OverlayCloseDuration time.Duration
	SettleDelay          time.Duration
}

func DefaultOptions() Options {
	return Options{
		Mode:                 panel.Reversible,
		OpenDuration:         900 * time.Millisecond,
		CloseDuration:        700 * time.Millisecond,
		OpenEasing:           anim.EaseOutCubic,
		CloseEasing:          anim.EaseInCubic,
		OverlayCloseDuration: 350 * time.Millisecond,
		SettleDelay:          450 * time.Millisecond,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.OpenDuration <= 0 {
		o.OpenDuration = def.OpenDuration
	}
	if o.CloseDuration <= 0 {
		o.CloseDuration = def.CloseDuration
	}
	if o.OpenEasing == nil {
		o.OpenEasing = def.OpenEasing
	}
	if o.CloseEasing == nil {
		o.CloseEasing = def.CloseEasing
	}
	if o.OverlayCloseDuration <= 0 {
		o.OverlayCloseDuration = def.OverlayCloseDuration
	}
	if o.SettleDelay <= 0 {
		o.SettleDelay = def.SettleDelay
	}
	return o
}

type Model struct {
	service Service
	opts    Options
	theme   theme.Theme
	keys    keyMap

	machine   *panel.Machine
	leftLeaf  anim.Animation
	rightLeaf anim.Animation

	selector selectorState
	slot     slotState
	overlay  *overlayState

	// pendingOverlayItem holds a refresh result that arrived while the
	// previous overlay was still closing; the new overlay opens from it
	// once the close animation settles.
	pendingOverlayItem *app.ItemSummary

	refreshToken int
	overlayGen   int

	spinner spinner.Model
	width   int
	height  int
}

func NewModel(service Service, opts Options) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	return Model{
		service: service,
		opts:    opts.withDefaults(),
		theme:   theme.Default(),
		keys:    defaultKeyMap,
		machine: panel.NewMachine(opts.Mode),
		spinner: spin,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		// Gesture channel one: the pointer wheel.
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			cmd := m.gesture(1)
			return m, cmd
		case tea.MouseButtonWheelDown:
			cmd := m.gesture(-1)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case categoriesSuccessMsg:
		m.selector.setCategories(msg.categories)
		return m, nil

	case categoriesErrorMsg:
		m.selector.loading = false
		m.selector.err = msg.err
		return m, nil

	case refreshSuccessMsg:
		if msg.token != m.refreshToken {
			return m, nil
		}
		m.slot.setItem(msg.item)
		return m, settleCmd(msg.token, m.opts.SettleDelay)

	case refreshErrorMsg:
		if msg.token != m.refreshToken {
			return m, nil
		}
		m.slot.setError(msg.err)
		return m, nil

	case settleMsg:
		if msg.token != m.refreshToken || !m.slot.hasItem || m.machine.State() != panel.Open {
			return m, nil
		}
		if m.overlay == nil {
			cmd := m.openOverlay(m.slot.item)
			return m, cmd
		}
		if m.overlay.phase == overlayClosing {
			item := m.slot.item
			m.pendingOverlayItem = &item
		}
		return m, nil

	case overlayDetailMsg:
		if m.overlay == nil || msg.gen != m.overlay.gen {
			return m, nil
		}
		return m, m.overlay.settleDetail(msg.detail, msg.err)

	case overlayDescriptionMsg:
		if m.overlay == nil || msg.gen != m.overlay.gen {
			return m, nil
		}
		return m, m.overlay.settleDescription(msg.text, msg.err)

	case anim.DoneMsg:
		return m.updateAnimationDone(msg)
	}

	cmd := m.forwardToAnimations(msg)
	return m, cmd
}

func (m Model) updateAnimationDone(msg anim.DoneMsg) (tea.Model, tea.Cmd) {
	switch msg.ID {
	case leafLeftID, leafRightID:
		if !m.machine.LeafDone() {
			return m, nil
		}
		switch m.machine.State() {
		case panel.Open:
			m.selector.loading = true
			return m, categoriesCmd(m.service)
		case panel.Closed:
			// Selector, slot, and overlay content live only while the
			// panel is open.
			m.selector.reset()
			m.slot.reset()
			m.overlay = nil
			m.pendingOverlayItem = nil
		}
		return m, nil

	case overlayCloseID:
		if m.overlay == nil {
			return m, nil
		}
		m.overlay = nil
		if m.pendingOverlayItem != nil {
			item := *m.pendingOverlayItem
			m.pendingOverlayItem = nil
			cmd := m.openOverlay(item)
			return m, cmd
		}
		return m, nil
	}

	cmd := m.forwardToAnimations(msg)
	return m, cmd
}

func (m *Model) forwardToAnimations(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.leftLeaf, cmd = m.leftLeaf.Update(msg)
	cmds = append(cmds, cmd)
	m.rightLeaf, cmd = m.rightLeaf.Update(msg)
	cmds = append(cmds, cmd)
	if m.overlay != nil {
		cmds = append(cmds, m.overlay.updateAnimations(msg))
	}
	return tea.Batch(cmds...)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		return m.updateOverlayKeys(msg)
	}
	if m.machine.State() == panel.Open && m.slot.active {
		return m.updateSlotKeys(msg)
	}
	if m.machine.State() == panel.Open {
		return m.updateSelectorKeys(msg)
	}

	switch {
	case msg.String() == "q":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Forward):
		cmd := m.gesture(1)
		return m, cmd
	case key.Matches(msg, m.keys.Backward):
		cmd := m.gesture(-1)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateOverlayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "q":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m, m.overlay.beginClose(false, m.opts.OverlayCloseDuration)
	case key.Matches(msg, m.keys.Next):
		return m.advanceOverlay()
	}
	return m, nil
}

// advanceOverlay exits the overlay through the close animation and issues a
// fresh refresh for the same category. Mashing next only re-issues the
// refresh with a newer token; the close animation is never replayed and
// exactly one new overlay opens, for the newest token's item.
func (m Model) advanceOverlay() (tea.Model, tea.Cmd) {
	o := m.overlay
	if o.phase == overlayLoading {
		return m, nil
	}
	if o.phase == overlayClosing && !o.advancing {
		return m, nil
	}
	closeCmd := o.beginClose(true, m.opts.OverlayCloseDuration)
	m.pendingOverlayItem = nil
	m.refreshToken++
	m.slot.beginRefresh()
	return m, tea.Batch(closeCmd, refreshCmd(m.service, o.item.Category, m.refreshToken), m.spinner.Tick)
}

func (m Model) updateSlotKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "q":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.refreshToken++ // in-flight refreshes are now superseded
		m.slot.reset()
		return m, nil
	case key.Matches(msg, m.keys.Backward):
		cmd := m.gesture(-1)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSelectorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selector.move(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.selector.move(1)
		return m, nil
	case key.Matches(msg, m.keys.Select):
		category, ok := m.selector.current()
		if !ok {
			return m, nil
		}
		m.refreshToken++
		m.slot.beginRefresh()
		return m, tea.Batch(refreshCmd(m.service, category.ID, m.refreshToken), m.spinner.Tick)
	case key.Matches(msg, m.keys.Retry) && m.selector.err != nil:
		m.selector.err = nil
		m.selector.loading = true
		return m, categoriesCmd(m.service)
	case key.Matches(msg, m.keys.Backward):
		cmd := m.gesture(-1)
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if m.selector.filter != "" {
			m.selector.setFilter(m.selector.filter[:len(m.selector.filter)-1])
		}
		return m, nil
	case tea.KeyRunes:
		m.selector.setFilter(m.selector.filter + string(msg.Runes))
		return m, nil
	}
	return m, nil
}

// gesture routes a normalized directional delta into the transition state
// machine; when a transition starts, both leaf animations are kicked off.
func (m *Model) gesture(delta float64) tea.Cmd {
	if !m.machine.HandleGesture(delta) {
		return nil
	}
	return m.startLeafAnimations()
}

func (m *Model) startLeafAnimations() tea.Cmd {
	duration := m.opts.OpenDuration
	easing := m.opts.OpenEasing
	if m.machine.State() == panel.Closing {
		duration = m.opts.CloseDuration
		easing = m.opts.CloseEasing
	}
	var leftCmd, rightCmd tea.Cmd
	m.leftLeaf, leftCmd = anim.New(leafLeftID, duration, easing).Start()
	m.rightLeaf, rightCmd = anim.New(leafRightID, duration, easing).Start()
	return tea.Batch(leftCmd, rightCmd)
}

func (m *Model) openOverlay(item app.ItemSummary) tea.Cmd {
	m.overlayGen++
	m.overlay = newOverlay(m.overlayGen, item)
	return tea.Batch(
		overlayDetailCmd(m.service, item.DetailRef, m.overlayGen),
		overlayDescriptionCmd(m.service, item.DetailRef, m.overlayGen),
		m.spinner.Tick,
	)
}
