package tui

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/lmoraes/dexbook/internal/app"
)

// slotState is the display slot: it owns the current ItemSummary, which is
// superseded wholesale on every refresh, never mutated.
type slotState struct {
	active  bool
	loading bool
	hasItem bool
	item    app.ItemSummary
	err     error
}

func (s *slotState) beginRefresh() {
	s.active = true
	s.loading = true
	s.err = nil
}

func (s *slotState) setItem(item app.ItemSummary) {
	s.loading = false
	s.err = nil
	s.item = item
	s.hasItem = true
}

func (s *slotState) setError(err error) {
	s.loading = false
	s.err = err
}

func (s *slotState) reset() {
	*s = slotState{}
}

// formatDexNumber renders the item identifier zero-padded to three digits;
// wider identifiers keep their natural width.
func formatDexNumber(id int) string {
	if id > 999 {
		return fmt.Sprintf("No.%d", id)
	}
	return fmt.Sprintf("No.%03d", id)
}

func capitalizeName(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
