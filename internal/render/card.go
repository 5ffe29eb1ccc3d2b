package render

import (
	"net/url"

	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
)

// Placeholder is shown for a missing length or size.
const Placeholder = "-"

// Card is everything a sink needs to materialize one grid entry. An empty badge
// means the badge node is left out entirely.
type Card struct {
	ID              string
	Href            string
	Title           string
	ImageAlt        string
	LazySrc         string
	DurationBadge   string
	ResolutionBadge string
	Length          string
	Size            string
}

// DetailHref links a video id to the detail view.
func DetailHref(detailPath, id string) string {
	return detailPath + "?" + url.Values{"id": {id}}.Encode()
}

func NewCard(v models.Video, detailPath string) Card {
	return Card{
		ID:              v.ID,
		Href:            DetailHref(detailPath, v.ID),
		Title:           v.Title,
		ImageAlt:        v.Title,
		LazySrc:         v.Thumbnail,
		DurationBadge:   v.DurationFormatted,
		ResolutionBadge: v.ResolutionLabel,
		Length:          orPlaceholder(v.DurationFormatted),
		Size:            orPlaceholder(v.SizeFormatted),
	}
}

// Cards builds cards for vs in order.
func Cards(vs []models.Video, detailPath string) []Card {
	out := make([]Card, len(vs))
	for i, v := range vs {
		out[i] = NewCard(v, detailPath)
	}
	return out
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
