// Package view holds the complete browsing state as a single value.
//
// Every transition returns a new State; nothing is mutated in place, so the
// filter and preview logic can be driven and checked without any rendering.
package view

import (
	"github.com/meur/blueprintlabs/internal/filter"
	"github.com/meur/blueprintlabs/internal/models"
	"github.com/meur/blueprintlabs/internal/preview"
)

// Panel is an overlay shown above the row list
type Panel int

const (
	PanelNone Panel = iota
	PanelCredits
	PanelGuide
	PanelUpdateLog
)

// State is the browsing state of one session
type State struct {
	// SearchInput is the raw text as typed. Criteria.Search only follows it
	// once the input settles.
	SearchInput string
	Criteria    models.Criteria

	Preview *preview.State // nil when no preview is open
	Panel   Panel
	Guide   GuideSection

	searchSeq uint64
}

// New returns the initial state: no search, every filter "All"
func New() State {
	return State{
		Criteria: models.DefaultCriteria(),
		Guide:    GuideIntro,
	}
}

// SetSearchInput records a keystroke. The returned sequence number must be
// passed to SettleSearch once the input has been stable for the delay.
func (s State) SetSearchInput(text string) (State, uint64) {
	s.SearchInput = text
	s.searchSeq++
	return s, s.searchSeq
}

// SettleSearch applies the raw input if no keystroke arrived after seq
func (s State) SettleSearch(seq uint64) State {
	if seq != s.searchSeq {
		return s
	}
	s.Criteria.Search = s.SearchInput
	return s
}

// FlushSearch applies the raw input immediately
func (s State) FlushSearch() State {
	s.Criteria.Search = s.SearchInput
	return s
}

// SearchPending reports whether typed input has not been applied yet
func (s State) SearchPending() bool {
	return s.SearchInput != s.Criteria.Search
}

func (s State) SetStatus(status string) State {
	s.Criteria.Status = status
	return s
}

func (s State) SetCategory(category string) State {
	s.Criteria.Category = category
	return s
}

func (s State) SetPool(pool string) State {
	s.Criteria.Pool = pool
	return s
}

// CycleStatus moves the status filter step places through options
func (s State) CycleStatus(options []string, step int) State {
	return s.SetStatus(cycle(options, s.Criteria.Status, step))
}

// CycleCategory moves the category filter step places through options
func (s State) CycleCategory(options []string, step int) State {
	return s.SetCategory(cycle(options, s.Criteria.Category, step))
}

// CyclePool moves the pool filter step places through options
func (s State) CyclePool(options []string, step int) State {
	return s.SetPool(cycle(options, s.Criteria.Pool, step))
}

// cycle treats options as prefixed by "All" when it is not already present
func cycle(options []string, current string, step int) string {
	all := options
	if len(all) == 0 || all[0] != models.FilterAll {
		all = append([]string{models.FilterAll}, options...)
	}

	idx := 0
	for i, opt := range all {
		if opt == current {
			idx = i
			break
		}
	}
	n := len(all)
	idx = ((idx+step)%n + n) % n
	return all[idx]
}

// OpenPreview starts resolving the preview of base from the first extension
func (s State) OpenPreview(r *preview.Resolver, base string) State {
	p := r.Open(base)
	s.Preview = &p
	return s
}

// PreviewLoaded records a successful image load for base
func (s State) PreviewLoaded(base string) State {
	if s.Preview == nil {
		return s
	}
	p := s.Preview.Loaded(base)
	s.Preview = &p
	return s
}

// PreviewFailed records a failed image load for base
func (s State) PreviewFailed(base string) State {
	if s.Preview == nil {
		return s
	}
	p := s.Preview.Failed(base)
	s.Preview = &p
	return s
}

// ClosePreview discards the preview; in-flight results become stale
func (s State) ClosePreview() State {
	s.Preview = nil
	return s
}

func (s State) OpenPanel(p Panel) State {
	s.Panel = p
	return s
}

func (s State) ClosePanel() State {
	s.Panel = PanelNone
	return s
}

func (s State) SetGuideSection(g GuideSection) State {
	s.Guide = g
	return s
}

// Visible returns the rows matching the effective criteria
func (s State) Visible(rows []models.Row) []models.Row {
	return filter.Apply(rows, s.Criteria)
}
