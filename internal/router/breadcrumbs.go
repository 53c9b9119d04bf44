package router

import "strings"

const (
	breadcrumbSeparator = " > "
	HomeLabel           = "Home"
	HomeIcon            = "⌂"
)

type Crumb struct {
	Label  string
	Active bool
}

func (c Crumb) ClassName() string {
	if c.Active {
		return "breadcrumb-item active"
	}
	return "breadcrumb-item"
}

type Breadcrumbs []Crumb

// BuildBreadcrumbs renders the trail for a page: a Home root followed by one
// crumb per " > " segment of the page label. Only the last crumb is active.
func BuildBreadcrumbs(id PageID) Breadcrumbs {
	parts := strings.Split(Label(id), breadcrumbSeparator)
	out := make(Breadcrumbs, 0, len(parts)+1)
	out = append(out, Crumb{Label: HomeLabel})
	for i, part := range parts {
		out = append(out, Crumb{Label: part, Active: i == len(parts)-1})
	}
	return out
}

func (b Breadcrumbs) Labels() []string {
	out := make([]string, len(b))
	for i, c := range b {
		out[i] = c.Label
	}
	return out
}

// String renders the trail as plain text, e.g. "⌂ Home › Collection › Payment".
func (b Breadcrumbs) String() string {
	if len(b) == 0 {
		return ""
	}
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = c.Label
	}
	if parts[0] == HomeLabel {
		parts[0] = HomeIcon + " " + HomeLabel
	}
	return strings.Join(parts, " › ")
}
