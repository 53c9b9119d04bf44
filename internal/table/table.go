// Package table implements the presentation-side filter and export engine
// shared by every data table of the dashboard.
//
// A Table owns its rows. Filtering never removes a row; it only flips the
// row's Visible flag, and exports read whatever is visible at that moment.
package table

import (
	"strings"
)

// AllStatus is the status selector sentinel that matches every row.
const AllStatus = "All Status"

type Row struct {
	Cells []string
	// Status is the text of the row's status badge; empty when the table has
	// no status column.
	Status  string
	Visible bool
}

// Text is the row's full rendered text used by free-text search.
func (r Row) Text() string {
	return strings.Join(r.Cells, " ")
}

type Table struct {
	Feature string
	Headers []string
	Rows    []Row
	// StatusOptions lists the selector values, AllStatus first. Empty when
	// the table offers no status filter.
	StatusOptions []string
}

// New builds a table with every row visible.
func New(feature string, headers []string, rows []Row) *Table {
	t := &Table{Feature: feature, Headers: headers, Rows: rows}
	for i := range t.Rows {
		t.Rows[i].Visible = true
	}
	return t
}

type Filter struct {
	Search string
	Status string
}

// Matches reports whether a row passes both predicates.
func (f Filter) Matches(r Row) bool {
	return f.matchesSearch(r) && f.matchesStatus(r)
}

func (f Filter) matchesSearch(r Row) bool {
	if f.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Text()), strings.ToLower(f.Search))
}

func (f Filter) matchesStatus(r Row) bool {
	want := strings.TrimSpace(f.Status)
	if want == "" || strings.EqualFold(want, AllStatus) {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Status), want)
}

// Apply recomputes row visibility and returns the number of visible rows.
func (t *Table) Apply(f Filter) int {
	if t == nil {
		return 0
	}
	n := 0
	for i := range t.Rows {
		t.Rows[i].Visible = f.Matches(t.Rows[i])
		if t.Rows[i].Visible {
			n++
		}
	}
	return n
}

func (t *Table) VisibleRows() []Row {
	if t == nil {
		return nil
	}
	out := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if r.Visible {
			out = append(out, r)
		}
	}
	return out
}

func (t *Table) VisibleCount() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, r := range t.Rows {
		if r.Visible {
			n++
		}
	}
	return n
}

// NextStatus cycles through StatusOptions starting after current.
func (t *Table) NextStatus(current string) string {
	if t == nil || len(t.StatusOptions) == 0 {
		return ""
	}
	for i, opt := range t.StatusOptions {
		if strings.EqualFold(opt, current) {
			return t.StatusOptions[(i+1)%len(t.StatusOptions)]
		}
	}
	return t.StatusOptions[0]
}

// Normalize collapses whitespace runs to one space and trims the ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
