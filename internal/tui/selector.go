package tui

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lmoraes/dexbook/internal/catalog"
)

// selectorState is the category picker shown while the panel is open and no
// item occupies the display slot. Categories are fetched once per open and
// discarded when the panel closes.
type selectorState struct {
	categories []catalog.Category
	loading    bool
	err        error
	cursor     int
	filter     string
	visible    []int
}

func (s *selectorState) setCategories(categories []catalog.Category) {
	s.categories = categories
	s.loading = false
	s.err = nil
	s.filter = ""
	s.cursor = 0
	s.applyFilter()
}

func (s *selectorState) reset() {
	*s = selectorState{}
}

func (s *selectorState) applyFilter() {
	query := strings.TrimSpace(s.filter)
	if query == "" {
		s.visible = make([]int, len(s.categories))
		for i := range s.categories {
			s.visible[i] = i
		}
	} else {
		labels := make([]string, len(s.categories))
		for i, c := range s.categories {
			labels[i] = c.Label
		}
		ranks := fuzzy.RankFindNormalizedFold(query, labels)
		sort.Sort(ranks)
		s.visible = make([]int, 0, len(ranks))
		for _, rank := range ranks {
			s.visible = append(s.visible, rank.OriginalIndex)
		}
	}
	if s.cursor >= len(s.visible) {
		s.cursor = len(s.visible) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *selectorState) setFilter(filter string) {
	s.filter = filter
	s.cursor = 0
	s.applyFilter()
}

func (s *selectorState) move(delta int) {
	if len(s.visible) == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.visible) {
		s.cursor = len(s.visible) - 1
	}
}

func (s *selectorState) current() (catalog.Category, bool) {
	if len(s.visible) == 0 {
		return catalog.Category{}, false
	}
	return s.categories[s.visible[s.cursor]], true
}
