// Package querystate mirrors the grid controls into the page query string.
package querystate

import (
	"net/url"
	"strings"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/filter"
)

// State is the persisted part of the grid controls.
type State struct {
	Query string
	Sort  filter.SortKey
}

// values parses leniently: malformed pairs are dropped and the rest kept.
func values(rawQuery string) url.Values {
	vals, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return vals
}

// Parse reads q and sort from a raw query string. An unknown or missing sort
// becomes relevance.
func Parse(rawQuery string) State {
	vals := values(rawQuery)
	return State{
		Query: vals.Get("q"),
		Sort:  filter.ParseSortKey(vals.Get("sort")),
	}
}

// Values omits an empty query and the default sort.
func (s State) Values() url.Values {
	vals := url.Values{}
	if q := strings.TrimSpace(s.Query); q != "" {
		vals.Set("q", q)
	}
	if s.Sort != "" && s.Sort != filter.SortRelevance {
		vals.Set("sort", string(s.Sort))
	}
	return vals
}

// Encode returns path with the state appended, or path alone when the state
// is the default.
func (s State) Encode(path string) string {
	enc := s.Values().Encode()
	if enc == "" {
		return path
	}
	return path + "?" + enc
}

// DetailID extracts the id parameter of the detail view. ok is false when the
// parameter is absent.
func DetailID(rawQuery string) (id string, ok bool) {
	vals := values(rawQuery)
	if _, present := vals["id"]; !present {
		return "", false
	}
	return vals.Get("id"), true
}
