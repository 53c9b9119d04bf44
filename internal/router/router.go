// Package router owns the page view-state of the dashboard: which page is
// visible, which sidebar item is active, the breadcrumb trail, and the
// activation events other controllers subscribe to.
package router

import (
	"strings"
)

type PageID string

const (
	PageDashboard   PageID = "dashboard"
	PageTransaction PageID = "transaction"
	PagePayout      PageID = "payout"
	PageSettlement  PageID = "settlement"
	PageReports     PageID = "reports"
	PagePaymentForm PageID = "payment-form"
	PageOnboarding  PageID = "onboarding"
)

// DefaultPages is the sidebar order of the dashboard shell.
var DefaultPages = []PageID{
	PageDashboard,
	PageTransaction,
	PagePayout,
	PageSettlement,
	PageReports,
	PagePaymentForm,
	PageOnboarding,
}

// DefaultCompactWidth is the terminal width at or below which the sidebar
// collapses after a navigation.
const DefaultCompactWidth = 100

type PageState int

const (
	Hidden PageState = iota
	Visible
)

func (s PageState) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

type Page struct {
	ID    PageID
	Label string
	State PageState
}

// ClassName projects the page state to the class list the shell renders with.
func (p Page) ClassName() string {
	if p.State == Visible {
		return "page"
	}
	return "page hidden"
}

type NavItem struct {
	Target PageID
	Label  string
	Active bool
}

func (n NavItem) ClassName() string {
	if n.Active {
		return "nav-item active"
	}
	return "nav-item"
}

// Listener is called with the id of a page that moved from hidden to visible.
type Listener func(PageID)

type Option func(*Router)

// WithNavItems overrides the sidebar entries. By default every page gets one.
func WithNavItems(targets ...PageID) Option {
	return func(r *Router) {
		r.nav = r.nav[:0]
		for _, t := range targets {
			r.nav = append(r.nav, NavItem{Target: t, Label: Label(t)})
		}
	}
}

// WithoutBreadcrumbs models a shell without a breadcrumb bar. Navigation
// still works; Trail stays empty.
func WithoutBreadcrumbs() Option {
	return func(r *Router) { r.breadcrumbs = false }
}

func WithCompactWidth(width int) Option {
	return func(r *Router) {
		if width > 0 {
			r.compactWidth = width
		}
	}
}

type Router struct {
	pages        []Page
	index        map[PageID]int
	nav          []NavItem
	cursor       int
	trail        Breadcrumbs
	breadcrumbs  bool
	listeners    []Listener
	width        int
	compactWidth int
	sidebarOpen  bool
}

// New builds a router over a fixed page set. The first page starts visible
// and its nav item active.
func New(pages []PageID, opts ...Option) *Router {
	r := &Router{
		index:        make(map[PageID]int, len(pages)),
		breadcrumbs:  true,
		compactWidth: DefaultCompactWidth,
		sidebarOpen:  true,
	}
	for _, id := range pages {
		if _, dup := r.index[id]; dup {
			continue
		}
		r.index[id] = len(r.pages)
		r.pages = append(r.pages, Page{ID: id, Label: Label(id)})
		r.nav = append(r.nav, NavItem{Target: id, Label: Label(id)})
	}
	for _, opt := range opts {
		opt(r)
	}
	if len(r.pages) > 0 {
		first := r.pages[0].ID
		r.pages[0].State = Visible
		r.setActive(first)
		r.refreshTrail(first)
	}
	return r
}

func (r *Router) Subscribe(l Listener) {
	if l == nil {
		return
	}
	r.listeners = append(r.listeners, l)
}

// Navigate applies a navigation selection. Unknown ids only move the nav
// highlight; the visible page is left as it was.
func (r *Router) Navigate(id PageID) Breadcrumbs {
	r.setActive(id)

	if idx, ok := r.index[id]; ok {
		wasHidden := r.pages[idx].State == Hidden
		for i := range r.pages {
			r.pages[i].State = Hidden
		}
		r.pages[idx].State = Visible
		if wasHidden {
			for _, l := range r.listeners {
				l(id)
			}
		}
	}

	if r.Compact() {
		r.sidebarOpen = false
	}
	r.refreshTrail(id)
	return r.trail
}

func (r *Router) setActive(id PageID) {
	for i := range r.nav {
		r.nav[i].Active = r.nav[i].Target == id
		if r.nav[i].Active {
			r.cursor = i
		}
	}
}

func (r *Router) refreshTrail(id PageID) {
	if !r.breadcrumbs {
		r.trail = nil
		return
	}
	r.trail = BuildBreadcrumbs(id)
}

// Current returns the visible page. ok is false only for an empty router.
func (r *Router) Current() (Page, bool) {
	for _, p := range r.pages {
		if p.State == Visible {
			return p, true
		}
	}
	return Page{}, false
}

func (r *Router) CurrentID() PageID {
	p, _ := r.Current()
	return p.ID
}

func (r *Router) Pages() []Page {
	out := make([]Page, len(r.pages))
	copy(out, r.pages)
	return out
}

func (r *Router) NavItems() []NavItem {
	out := make([]NavItem, len(r.nav))
	copy(out, r.nav)
	return out
}

func (r *Router) Page(id PageID) (Page, bool) {
	idx, ok := r.index[id]
	if !ok {
		return Page{}, false
	}
	return r.pages[idx], true
}

func (r *Router) Trail() Breadcrumbs {
	return r.trail
}

// Cursor is the sidebar row under the selection marker. It follows the
// active item on navigation and is moved by CursorUp/CursorDown.
func (r *Router) Cursor() int {
	return r.cursor
}

func (r *Router) CursorDown() {
	if len(r.nav) == 0 {
		return
	}
	r.cursor = (r.cursor + 1) % len(r.nav)
}

func (r *Router) CursorUp() {
	if len(r.nav) == 0 {
		return
	}
	r.cursor = (r.cursor - 1 + len(r.nav)) % len(r.nav)
}

// Select navigates to the nav item under the cursor.
func (r *Router) Select() Breadcrumbs {
	if r.cursor < 0 || r.cursor >= len(r.nav) {
		return r.trail
	}
	return r.Navigate(r.nav[r.cursor].Target)
}

func (r *Router) SetViewport(width int) {
	r.width = width
	if !r.Compact() {
		r.sidebarOpen = true
	}
}

func (r *Router) Compact() bool {
	return r.width > 0 && r.width <= r.compactWidth
}

func (r *Router) SidebarOpen() bool {
	return r.sidebarOpen
}

func (r *Router) ToggleSidebar() {
	r.sidebarOpen = !r.sidebarOpen
}

// Label maps a page id to its display label, falling back to the raw id.
func Label(id PageID) string {
	if l, ok := pageLabels[id]; ok {
		return l
	}
	return string(id)
}

var pageLabels = map[PageID]string{
	PageDashboard:   "Dashboard",
	PageTransaction: "Transaction",
	"customers":     "Customers",
	"accounts":      "Accounts",
	PagePayout:      "Payout",
	PageSettlement:  "Settlement",
	PageReports:     "Reports",
	PagePaymentForm: "Collection > Payment",
	PageOnboarding:  "Onboarding",
}

// ShortLabel is the last breadcrumb segment of a page label, used for
// sidebar entries.
func ShortLabel(id PageID) string {
	parts := strings.Split(Label(id), breadcrumbSeparator)
	return parts[len(parts)-1]
}
