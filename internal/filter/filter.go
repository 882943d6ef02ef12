// Package filter selects the visible subset of catalog rows.
package filter

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/meur/blueprintlabs/internal/models"
)

// Statuses returns the closed set of status options, "All" first
func Statuses() []string {
	return []string{
		models.FilterAll,
		models.StatusReleased,
		models.StatusUnreleased,
		models.StatusNothing,
	}
}

// ParseCriteria reads search, status, category and pool from query values.
// Missing discrete values default to "All".
func ParseCriteria(q url.Values) models.Criteria {
	c := models.DefaultCriteria()
	c.Search = q.Get("search")
	if v := q.Get("status"); v != "" {
		c.Status = v
	}
	if v := q.Get("category"); v != "" {
		c.Category = v
	}
	if v := q.Get("pool"); v != "" {
		c.Pool = v
	}
	return c
}

// Apply returns the rows matching every criterion, in their original order.
// The input slice is never modified.
func Apply(rows []models.Row, c models.Criteria) []models.Row {
	search := strings.ToLower(c.Search)
	result := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		if matches(row, search, c) {
			result = append(result, row)
		}
	}
	return result
}

// Matches reports whether a single row passes the criteria
func Matches(row models.Row, c models.Criteria) bool {
	return matches(row, strings.ToLower(c.Search), c)
}

func matches(row models.Row, search string, c models.Criteria) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(row.Blueprint), search) &&
		!strings.Contains(strings.ToLower(row.Weapon), search) {
		return false
	}
	return exact(c.Status, row.Status) &&
		exact(c.Category, row.Category) &&
		exact(c.Pool, row.Pool)
}

func exact(want, got string) bool {
	return want == "" || want == models.FilterAll || want == got
}

// DistinctPools returns each pool value once, sorted ascending by number.
// Values that do not parse as numbers go last, in lexical order.
func DistinctPools(rows []models.Row) []string {
	seen := make(map[string]bool)
	pools := []string{}
	for _, row := range rows {
		if seen[row.Pool] {
			continue
		}
		seen[row.Pool] = true
		pools = append(pools, row.Pool)
	}

	sort.SliceStable(pools, func(i, j int) bool {
		return poolLess(pools[i], pools[j])
	})
	return pools
}

func poolLess(a, b string) bool {
	na, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	nb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	aNum := errA == nil && !math.IsNaN(na)
	bNum := errB == nil && !math.IsNaN(nb)

	switch {
	case aNum && bNum:
		if na != nb {
			return na < nb
		}
		return a < b
	case aNum:
		return true
	case bNum:
		return false
	default:
		return a < b
	}
}
