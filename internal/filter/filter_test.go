package filter

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/meur/blueprintlabs/internal/models"
)

func sampleRows() []models.Row {
	return []models.Row{
		{Weapon: "RAM-7", Category: "Assault Rifle", Blueprint: "Fire Tiger", Status: "RELEASED", Pool: "1"},
		{Weapon: "Jackal PDW", Category: "SMG", Blueprint: "Night Shift", Status: "UNRELEASED", Pool: "2"},
		{Weapon: "Marine SP", Category: "Shotgun", Blueprint: "Tiger Claw", Status: "RELEASED", Pool: "10"},
		{Weapon: "Tiger Lance", Category: "Melee", Blueprint: "Stripe", Status: "NOTHING", Pool: "2"},
	}
}

func blueprints(rows []models.Row) []string {
	names := []string{}
	for _, r := range rows {
		names = append(names, r.Blueprint)
	}
	return names
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		criteria models.Criteria
		want     []string
	}{
		{"all", models.DefaultCriteria(), []string{"Fire Tiger", "Night Shift", "Tiger Claw", "Stripe"}},
		{"zero value", models.Criteria{}, []string{"Fire Tiger", "Night Shift", "Tiger Claw", "Stripe"}},
		{"search blueprint case-insensitive", models.Criteria{Search: "tiger", Status: "All", Category: "All", Pool: "All"}, []string{"Fire Tiger", "Tiger Claw", "Stripe"}},
		{"search weapon", models.Criteria{Search: "PDW", Status: "All", Category: "All", Pool: "All"}, []string{"Night Shift"}},
		{"status", models.Criteria{Status: "RELEASED", Category: "All", Pool: "All"}, []string{"Fire Tiger", "Tiger Claw"}},
		{"category", models.Criteria{Status: "All", Category: "SMG", Pool: "All"}, []string{"Night Shift"}},
		{"pool exact", models.Criteria{Status: "All", Category: "All", Pool: "1"}, []string{"Fire Tiger"}},
		{"and", models.Criteria{Search: "tiger", Status: "RELEASED", Category: "Shotgun", Pool: "10"}, []string{"Tiger Claw"}},
		{"no match", models.Criteria{Search: "zzz", Status: "All", Category: "All", Pool: "All"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blueprints(Apply(sampleRows(), tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	c := models.Criteria{Search: "i", Status: "RELEASED", Category: "All", Pool: "All"}
	once := Apply(sampleRows(), c)
	twice := Apply(once, c)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Apply twice = %v, once = %v", twice, once)
	}
}

func TestApplyDoesNotMutate(t *testing.T) {
	rows := sampleRows()
	before := sampleRows()
	out := Apply(rows, models.Criteria{Search: "tiger"})
	if len(out) > 0 {
		out[0].Blueprint = "changed"
	}
	if !reflect.DeepEqual(rows, before) {
		t.Error("Apply modified its input")
	}
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, models.DefaultCriteria())
	if got == nil || len(got) != 0 {
		t.Errorf("Apply(nil) = %#v, want empty slice", got)
	}
}

func TestMatches(t *testing.T) {
	row := sampleRows()[0]
	if !Matches(row, models.Criteria{Search: "FIRE"}) {
		t.Error("Matches should ignore case")
	}
	if Matches(row, models.Criteria{Pool: "2"}) {
		t.Error("Matches should compare pools exactly")
	}
}

func TestDistinctPools(t *testing.T) {
	tests := []struct {
		pools []string
		want  []string
	}{
		{[]string{"1", "2", "10", "2"}, []string{"1", "2", "10"}},
		{[]string{"10", "9", "1"}, []string{"1", "9", "10"}},
		{[]string{"b", "3", "", "a", "1"}, []string{"1", "3", "", "a", "b"}},
		{[]string{"01", "1", "0.5"}, []string{"0.5", "01", "1"}},
		{[]string{"NaN", "2"}, []string{"2", "NaN"}},
		{nil, []string{}},
	}
	for _, tt := range tests {
		var rows []models.Row
		for _, p := range tt.pools {
			rows = append(rows, models.Row{Pool: p})
		}
		got := DistinctPools(rows)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DistinctPools(%q) = %q, want %q", tt.pools, got, tt.want)
		}
	}
}

func TestParseCriteria(t *testing.T) {
	q := url.Values{}
	q.Set("search", "tiger")
	q.Set("pool", "3")

	got := ParseCriteria(q)
	want := models.Criteria{Search: "tiger", Status: "All", Category: "All", Pool: "3"}
	if got != want {
		t.Errorf("ParseCriteria() = %+v, want %+v", got, want)
	}
}

func TestStatuses(t *testing.T) {
	want := []string{"All", "RELEASED", "UNRELEASED", "NOTHING"}
	if got := Statuses(); !reflect.DeepEqual(got, want) {
		t.Errorf("Statuses() = %v, want %v", got, want)
	}
}
