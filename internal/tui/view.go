package tui

import (
	"fmt"
	"strings"

	"github.com/lmoraes/dexbook/internal/render/desc"
	"github.com/lmoraes/dexbook/internal/tui/panel"
)

const (
	coverHeight    = 7
	coverHalfWidth = 16
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("DEXBOOK"))
	b.WriteString("\n")
	b.WriteString(m.theme.HintBar.Render(m.hintLine()))
	b.WriteString("\n\n")

	switch m.machine.State() {
	case panel.Closed:
		b.WriteString(m.closedCoverView())
	case panel.Opening:
		b.WriteString(m.leavesView(m.leftLeaf.Progress()))
	case panel.Closing:
		b.WriteString(m.leavesView(1 - m.leftLeaf.Progress()))
	case panel.Open:
		b.WriteString(m.contentView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.HintBar.Render(m.footer()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) hintLine() string {
	if m.overlay != nil {
		return "n: next | esc: close | ctrl+c: quit"
	}
	switch m.machine.State() {
	case panel.Closed:
		return "wheel up / space: open the book | q: quit"
	case panel.Open:
		if m.slot.active {
			return "esc: back to categories | pgup: close the book | q: quit"
		}
		return "type to filter | ↑/↓: move | enter: pick | pgup: close | ctrl+c: quit"
	}
	return "ctrl+c: quit"
}

func (m Model) closedCoverView() string {
	label := m.theme.CoverText.Render("D E X B O O K")
	inner := strings.Repeat(" ", 6) + label
	rows := make([]string, 0, coverHeight)
	for i := 0; i < coverHeight; i++ {
		if i == coverHeight/2 {
			rows = append(rows, inner)
			continue
		}
		rows = append(rows, m.theme.Cover.Render(strings.Repeat("▒", coverHalfWidth*2)))
	}
	return m.theme.Frame.Render(strings.Join(rows, "\n"))
}

// leavesView draws the two cover halves mid-transition: both leaves shrink
// toward the spine as the book opens, mirrored left and right.
func (m Model) leavesView(openFraction float64) string {
	if openFraction < 0 {
		openFraction = 0
	}
	if openFraction > 1 {
		openFraction = 1
	}
	leafWidth := int((1 - openFraction) * coverHalfWidth)
	gap := coverHalfWidth*2 - leafWidth*2

	rows := make([]string, 0, coverHeight)
	for i := 0; i < coverHeight; i++ {
		left := m.theme.Cover.Render(strings.Repeat("▒", leafWidth))
		right := m.theme.Cover.Render(strings.Repeat("▒", leafWidth))
		rows = append(rows, left+strings.Repeat(" ", gap)+right)
	}
	return m.theme.Frame.Render(strings.Join(rows, "\n"))
}

func (m Model) contentView() string {
	if m.overlay != nil {
		return m.overlayView()
	}
	if m.slot.active {
		return m.slotView()
	}
	return m.selectorView()
}

func (m Model) selectorView() string {
	var b strings.Builder
	b.WriteString(m.theme.Section.Render("Categories"))
	b.WriteString("\n")

	if m.selector.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.StateLoad.Render(" loading categories..."))
		b.WriteString("\n")
		return b.String()
	}
	if m.selector.err != nil {
		b.WriteString(m.theme.ErrorText.Render("Could not load categories: " + m.selector.err.Error()))
		b.WriteString("\n")
		b.WriteString(m.theme.HintBar.Render("r: retry"))
		b.WriteString("\n")
		return b.String()
	}

	if m.selector.filter != "" {
		b.WriteString(m.theme.Filter.Render("filter: " + m.selector.filter))
		b.WriteString("\n")
	}
	if len(m.selector.visible) == 0 {
		b.WriteString(m.theme.MetaValue.Render("No matching categories."))
		b.WriteString("\n")
		return b.String()
	}
	for pos, idx := range m.selector.visible {
		marker := "  "
		if pos == m.selector.cursor {
			marker = "> "
		}
		b.WriteString(m.theme.RenderActiveLine(pos == m.selector.cursor, marker+capitalizeName(m.selector.categories[idx].Label)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) slotView() string {
	if m.slot.loading {
		return m.spinner.View() + m.theme.StateLoad.Render(" fetching from catalog...")
	}
	if m.slot.err != nil {
		return m.theme.ErrorText.Render(m.slot.err.Error()) + "\n" + m.theme.HintBar.Render("esc: back to categories")
	}
	if !m.slot.hasItem {
		return m.theme.MetaValue.Render("Nothing here yet.")
	}

	item := m.slot.item
	var b strings.Builder
	b.WriteString(m.theme.Number.Render(formatDexNumber(item.ID)))
	b.WriteString(" ")
	b.WriteString(m.theme.Name.Render(capitalizeName(item.Name)))
	b.WriteString("\n")
	b.WriteString(m.theme.MetaLabel.Render("category "))
	b.WriteString(m.theme.MetaValue.Render(item.Category))
	b.WriteString("\n")
	b.WriteString(m.theme.MetaLabel.Render("image "))
	b.WriteString(m.theme.MetaValue.Render(item.ImageURL))
	return m.theme.Frame.Render(b.String())
}

func (m Model) overlayView() string {
	o := m.overlay

	if o.phase == overlayClosing {
		width := int((1 - o.closeAnim.Progress()) * float64(m.overlayWidth()))
		if width < 4 {
			width = 4
		}
		return m.theme.Frame.Width(width).Render(m.theme.MetaValue.Render("···"))
	}

	var b strings.Builder
	b.WriteString(m.theme.Number.Render(formatDexNumber(o.counterValue())))
	b.WriteString(" ")
	b.WriteString(m.theme.Name.Render(capitalizeName(o.item.Name)))
	b.WriteString("\n")

	if o.phase == overlayLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.StateLoad.Render(" fetching details..."))
		return m.theme.Frame.Render(b.String())
	}

	if o.reveal.StageProgress(revealImage) > 0 {
		b.WriteString(m.theme.MetaLabel.Render("image "))
		b.WriteString(m.theme.MetaValue.Render(o.item.ImageURL))
		b.WriteString("\n")
	}
	if p := o.reveal.StageProgress(revealRule); p > 0 {
		ruleWidth := int(p * float64(m.overlayWidth()-4))
		if ruleWidth < 1 {
			ruleWidth = 1
		}
		b.WriteString(m.theme.Rule.Render(strings.Repeat("─", ruleWidth)))
		b.WriteString("\n")
	}
	if o.reveal.StageProgress(revealPanels) > 0 {
		b.WriteString(m.overlayInfoPanels())
	}
	return m.theme.Frame.Render(b.String())
}

func (m Model) overlayInfoPanels() string {
	o := m.overlay
	var b strings.Builder

	if o.detailErr != "" {
		b.WriteString(m.theme.ErrorText.Render("Details unavailable: " + o.detailErr))
		b.WriteString("\n")
	} else if o.hasDetail {
		b.WriteString(m.theme.MetaLabel.Render("type "))
		b.WriteString(m.theme.MetaValue.Render(strings.Join(o.detail.Types, ", ")))
		b.WriteString("\n")
		b.WriteString(m.theme.MetaLabel.Render("height "))
		b.WriteString(m.theme.MetaValue.Render(fmt.Sprintf("%.1f m", float64(o.detail.Height)/10)))
		b.WriteString("\n")
		b.WriteString(m.theme.MetaLabel.Render("weight "))
		b.WriteString(m.theme.MetaValue.Render(fmt.Sprintf("%.1f kg", float64(o.detail.Weight)/10)))
		b.WriteString("\n")
	}

	if o.descErr != "" {
		b.WriteString(m.theme.ErrorText.Render("Description unavailable: " + o.descErr))
		b.WriteString("\n")
	} else if o.hasDesc {
		for _, line := range desc.Lines(o.descText, m.overlayWidth()-6) {
			b.WriteString(m.theme.MetaValue.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) overlayWidth() int {
	if m.width > 10 && m.width < 72 {
		return m.width - 4
	}
	return 68
}

func (m Model) footer() string {
	mode := "reversible"
	if m.opts.Mode == panel.OneShot {
		mode = "one-shot"
	}
	region := "cover"
	if m.machine.State() == panel.Open {
		switch {
		case m.overlay != nil:
			region = "overlay"
		case m.slot.active:
			region = "display"
		default:
			region = "selector"
		}
	}
	category := "-"
	if m.slot.hasItem {
		category = m.slot.item.Category
	}
	return fmt.Sprintf("Panel: %s | Region: %s | Category: %s | Mode: %s", m.machine.State(), region, category, mode)
}
