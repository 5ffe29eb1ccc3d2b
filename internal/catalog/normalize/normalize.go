// Package normalize turns untrusted catalog JSON into canonical videos.
//
// Every entry point except Decode is total: malformed input degrades field by
// field to documented defaults and never produces an error or a panic.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/format"
)

// UntitledTitle replaces a missing title.
const UntitledTitle = "Untitled"

var ErrMalformedDocument = errors.New("malformed catalog document")

// Decode parses a catalog document. Only unparsable JSON is an error; a
// document without a usable "videos" array is an empty catalog.
func Decode(data []byte) ([]models.Video, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return Document(raw), nil
}

// Document normalizes the videos array of a decoded {"videos": [...]} envelope.
func Document(raw any) []models.Video {
	doc, ok := raw.(map[string]any)
	if !ok {
		return []models.Video{}
	}
	return Normalize(doc["videos"])
}

// Normalize maps a decoded JSON array to canonical videos. Anything that is not
// an array yields an empty, non-nil slice.
func Normalize(raw any) []models.Video {
	list, ok := raw.([]any)
	if !ok {
		return []models.Video{}
	}
	out := make([]models.Video, 0, len(list))
	for _, item := range list {
		out = append(out, Record(item))
	}
	return out
}

// Record normalizes a single raw record.
func Record(raw any) models.Video {
	rec, _ := raw.(map[string]any)
	info, _ := rec["video_info"].(map[string]any)

	v := models.Video{
		ID:        stringOr(rec["id"], ""),
		Title:     stringOr(rec["title"], UntitledTitle),
		URL:       trimURL(rec["url"]),
		Thumbnail: thumbnailPath(rec["thumbnail"]),
	}

	if d, ok := number(info["duration"]); ok {
		v.Duration = &d
	}
	v.DurationFormatted = nonEmptyString(info["duration_formatted"])
	if v.DurationFormatted == "" && v.Duration != nil && *v.Duration != 0 {
		v.DurationFormatted = format.Duration(*v.Duration)
	}

	if s, ok := number(info["file_size"]); ok {
		size := saturate(s, math.MinInt64, math.MaxInt64)
		v.Size = &size
	}
	v.SizeFormatted = nonEmptyString(info["file_size_formatted"])
	if v.SizeFormatted == "" && v.Size != nil && *v.Size != 0 {
		v.SizeFormatted = format.Bytes(*v.Size)
	}

	if w, ok := number(info["width"]); ok {
		width := int(saturate(w, math.MinInt, math.MaxInt))
		v.Width = &width
	}
	if h, ok := number(info["height"]); ok {
		height := int(saturate(h, math.MinInt, math.MaxInt))
		v.Height = &height
	}
	if v.Width != nil && v.Height != nil && *v.Width != 0 && *v.Height != 0 {
		v.ResolutionLabel = strconv.Itoa(*v.Height) + "p"
	}
	return v
}

// ThumbnailPath converts Windows separators and drops one leading "./".
func ThumbnailPath(p string) string {
	return strings.TrimPrefix(strings.ReplaceAll(p, `\`, "/"), "./")
}

func thumbnailPath(raw any) string {
	s, ok := scalar(raw)
	if !ok || !truthy(raw) {
		return ""
	}
	return ThumbnailPath(s)
}

func trimURL(raw any) string {
	s, ok := scalar(raw)
	if !ok || !truthy(raw) {
		return ""
	}
	return strings.TrimSpace(s)
}

func stringOr(raw any, def string) string {
	if s, ok := scalar(raw); ok {
		return s
	}
	return def
}

func nonEmptyString(raw any) string {
	s, _ := raw.(string)
	return s
}

// scalar stringifies JSON strings, numbers and booleans. Null, objects and
// arrays are treated as absent.
func scalar(raw any) (string, bool) {
	switch t := raw.(type) {
	case string:
		return t, true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String(), true
		}
		return formatNumber(f), true
	case float64:
		return formatNumber(t), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// formatNumber prints f the way JavaScript's String(number) does for the
// range ids use: shortest round-trip digits, exponent form from 1e21.
func formatNumber(f float64) string {
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// saturate converts f to an integer, clamping values outside [lo, hi].
func saturate(f float64, lo, hi int64) int64 {
	if f >= float64(hi) {
		return hi
	}
	if f <= float64(lo) {
		return lo
	}
	return int64(f)
}

func truthy(raw any) bool {
	switch t := raw.(type) {
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return raw != nil
	}
}

func number(raw any) (float64, bool) {
	var f float64
	switch t := raw.(type) {
	case json.Number:
		v, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = v
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
