package view

import (
	"testing"

	"github.com/meur/blueprintlabs/internal/models"
	"github.com/meur/blueprintlabs/internal/preview"
)

var rows = []models.Row{
	{Weapon: "RAM-7", Category: "Assault Rifle", Blueprint: "Fire Tiger", Status: "RELEASED", Pool: "1", ImageBase: "/images/ram-7/Fire Tiger"},
	{Weapon: "Jackal PDW", Category: "SMG", Blueprint: "Night Shift", Status: "UNRELEASED", Pool: "2", ImageBase: "/images/jackal-pdw/Night Shift"},
}

func TestNewShowsEverything(t *testing.T) {
	s := New()
	if got := s.Visible(rows); len(got) != len(rows) {
		t.Errorf("Visible() = %d rows, want %d", len(got), len(rows))
	}
	if s.Guide != GuideIntro || s.Panel != PanelNone || s.Preview != nil {
		t.Errorf("unexpected initial state: %+v", s)
	}
}

func TestSearchSettles(t *testing.T) {
	s := New()
	s, _ = s.SetSearchInput("t")
	s, seq := s.SetSearchInput("tiger")

	if !s.SearchPending() {
		t.Fatal("typed input should be pending before it settles")
	}
	if got := s.Visible(rows); len(got) != 2 {
		t.Errorf("unsettled search filtered rows: %d", len(got))
	}

	s = s.SettleSearch(seq)
	if s.SearchPending() || s.Criteria.Search != "tiger" {
		t.Errorf("Criteria.Search = %q after settle", s.Criteria.Search)
	}
	if got := s.Visible(rows); len(got) != 1 || got[0].Blueprint != "Fire Tiger" {
		t.Errorf("Visible() = %+v", got)
	}
}

func TestStaleSettleIgnored(t *testing.T) {
	s := New()
	s, first := s.SetSearchInput("ti")
	s, _ = s.SetSearchInput("tig")

	s = s.SettleSearch(first)
	if s.Criteria.Search != "" {
		t.Errorf("stale settle applied %q", s.Criteria.Search)
	}

	s = s.FlushSearch()
	if s.Criteria.Search != "tig" {
		t.Errorf("FlushSearch() = %q, want tig", s.Criteria.Search)
	}
}

func TestDiscreteFiltersApplyImmediately(t *testing.T) {
	s := New().SetStatus("UNRELEASED")
	if got := s.Visible(rows); len(got) != 1 || got[0].Weapon != "Jackal PDW" {
		t.Errorf("Visible() = %+v", got)
	}

	s = s.SetStatus(models.FilterAll).SetCategory("Assault Rifle").SetPool("1")
	if got := s.Visible(rows); len(got) != 1 || got[0].Weapon != "RAM-7" {
		t.Errorf("Visible() = %+v", got)
	}
}

func TestTransitionsDoNotMutate(t *testing.T) {
	before := New()
	_ = before.SetStatus("RELEASED")
	_, _ = before.SetSearchInput("x")
	if before.Criteria.Status != models.FilterAll || before.SearchInput != "" {
		t.Errorf("transition mutated receiver: %+v", before)
	}
}

func TestCycle(t *testing.T) {
	pools := []string{"1", "2", "10"}
	s := New()

	want := []string{"1", "2", "10", "All", "1"}
	for _, w := range want {
		s = s.CyclePool(pools, 1)
		if s.Criteria.Pool != w {
			t.Fatalf("CyclePool() = %q, want %q", s.Criteria.Pool, w)
		}
	}

	s = New().CycleStatus([]string{"All", "RELEASED", "UNRELEASED", "NOTHING"}, -1)
	if s.Criteria.Status != "NOTHING" {
		t.Errorf("CycleStatus(-1) = %q, want NOTHING", s.Criteria.Status)
	}

	s = New().SetCategory("Gone").CycleCategory([]string{"SMG"}, 1)
	if s.Criteria.Category != "SMG" {
		t.Errorf("cycling from an unknown value = %q, want SMG", s.Criteria.Category)
	}
}

func TestPreviewLifecycle(t *testing.T) {
	r := preview.NewResolver(".jpg", ".jpeg", ".png")
	base := rows[0].ImageBase

	s := New().OpenPreview(r, base)
	if s.Preview == nil || s.Preview.Candidate() != base+".jpg" {
		t.Fatalf("OpenPreview() = %+v", s.Preview)
	}

	opened := s
	s = s.PreviewFailed(base)
	if opened.Preview.Index != 0 {
		t.Error("PreviewFailed mutated the previous state")
	}
	s = s.PreviewLoaded(base)
	if s.Preview.Phase != preview.Found || s.Preview.Candidate() != base+".jpeg" {
		t.Errorf("preview = %+v", s.Preview)
	}

	s = s.ClosePreview()
	if s.Preview != nil {
		t.Error("ClosePreview() left a preview open")
	}
	if got := s.PreviewFailed(base); got.Preview != nil {
		t.Error("late result reopened a closed preview")
	}
}

func TestLateFailureForOldBase(t *testing.T) {
	r := preview.NewResolver()
	old, current := rows[0].ImageBase, rows[1].ImageBase

	s := New().OpenPreview(r, old).OpenPreview(r, current)
	s = s.PreviewFailed(old)
	if s.Preview.Base != current || s.Preview.Index != 0 || s.Preview.Phase != preview.Pending {
		t.Errorf("late failure changed current preview: %+v", s.Preview)
	}
}

func TestPanels(t *testing.T) {
	s := New().OpenPanel(PanelGuide).SetGuideSection(GuideZombies)
	if s.Panel != PanelGuide || s.Guide != GuideZombies {
		t.Errorf("state = %+v", s)
	}
	s = s.ClosePanel().OpenPanel(PanelGuide)
	if s.Guide != GuideZombies {
		t.Error("guide section should survive closing the panel")
	}
	if GuideIntro.VideoURL() != "" || GuideMPWZ.VideoURL() == "" {
		t.Error("unexpected guide video links")
	}
}
