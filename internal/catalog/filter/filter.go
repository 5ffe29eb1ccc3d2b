// Package filter derives the visible list from the canonical catalog.
package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
)

type SortKey string

const (
	SortRelevance    SortKey = "relevance"
	SortTitleAsc     SortKey = "title_asc"
	SortTitleDesc    SortKey = "title_desc"
	SortDurationAsc  SortKey = "duration_asc"
	SortDurationDesc SortKey = "duration_desc"
	SortSizeAsc      SortKey = "size_asc"
	SortSizeDesc     SortKey = "size_desc"
)

// SortKeys lists every key in the order the sort control offers them.
var SortKeys = []SortKey{
	SortRelevance,
	SortTitleAsc,
	SortTitleDesc,
	SortDurationDesc,
	SortDurationAsc,
	SortSizeDesc,
	SortSizeAsc,
}

// ParseSortKey maps unknown values to SortRelevance.
func ParseSortKey(s string) SortKey {
	k := SortKey(strings.TrimSpace(s))
	for _, known := range SortKeys {
		if k == known {
			return k
		}
	}
	return SortRelevance
}

// Engine filters and sorts with a fixed collation locale.
type Engine struct {
	tag language.Tag
}

func NewEngine(tag language.Tag) *Engine {
	return &Engine{tag: tag}
}

// NewEngineForLocale falls back to English when locale does not parse.
func NewEngineForLocale(locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return NewEngine(tag)
}

var defaultEngine = NewEngine(language.English)

// Apply runs the default English engine.
func Apply(catalog []models.Video, query string, key SortKey) []models.Video {
	return defaultEngine.Apply(catalog, query, key)
}

// Apply returns a newly allocated visible list: entries whose title contains the
// trimmed query case-insensitively, ordered by key. catalog is never modified.
// Unknown duration and size values sort as zero.
func (e *Engine) Apply(catalog []models.Video, query string, key SortKey) []models.Video {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Video, 0, len(catalog))
	for _, v := range catalog {
		if q == "" || strings.Contains(strings.ToLower(v.Title), q) {
			out = append(out, v)
		}
	}

	switch key {
	case SortTitleAsc, SortTitleDesc:
		// collate.Collator is not safe for concurrent use.
		c := collate.New(e.tag)
		sort.SliceStable(out, func(i, j int) bool {
			if key == SortTitleDesc {
				return c.CompareString(out[j].Title, out[i].Title) < 0
			}
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortDurationAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DurationOrZero() < out[j].DurationOrZero() })
	case SortDurationDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DurationOrZero() > out[j].DurationOrZero() })
	case SortSizeAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].SizeOrZero() < out[j].SizeOrZero() })
	case SortSizeDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].SizeOrZero() > out[j].SizeOrZero() })
	}
	return out
}
