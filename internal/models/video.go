package models

import "time"

// RawVideoInfo is the nested technical block of a catalog entry as it appears
// in video_info.json. Every field is optional.
type RawVideoInfo struct {
	Duration          *float64 `json:"duration,omitempty"`
	DurationFormatted string   `json:"duration_formatted,omitempty"`
	FileSize          *float64 `json:"file_size,omitempty"`
	FileSizeFormatted string   `json:"file_size_formatted,omitempty"`
	Width             *int     `json:"width,omitempty"`
	Height            *int     `json:"height,omitempty"`
}

// RawVideoRecord documents the external record shape. The normalizer does not
// decode into it because real documents do not respect these types.
type RawVideoRecord struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	URL       string        `json:"url"`
	Thumbnail string        `json:"thumbnail"`
	VideoInfo *RawVideoInfo `json:"video_info,omitempty"`
}

// RawDocument is the envelope served at /video_info.json.
type RawDocument struct {
	Videos []RawVideoRecord `json:"videos"`
}

// Video is a canonical catalog entry. Two videos are the same entry iff their
// IDs are equal.
type Video struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	URL               string   `json:"url"`
	Thumbnail         string   `json:"thumbnail"`
	Duration          *float64 `json:"duration"`
	DurationFormatted string   `json:"duration_formatted"`
	Size              *int64   `json:"size"`
	SizeFormatted     string   `json:"size_formatted"`
	Width             *int     `json:"width"`
	Height            *int     `json:"height"`
	ResolutionLabel   string   `json:"resolution_label"`
}

// DurationOrZero is the sort value of the duration: unknown sorts as zero.
func (v Video) DurationOrZero() float64 {
	if v.Duration == nil {
		return 0
	}
	return *v.Duration
}

// SizeOrZero is the sort value of the size: unknown sorts as zero.
func (v Video) SizeOrZero() int64 {
	if v.Size == nil {
		return 0
	}
	return *v.Size
}

// VideoPage is one batch of the visible list served by the catalog API.
type VideoPage struct {
	Videos     []Video `json:"videos"`
	TotalCount int     `json:"total_count"`
	Offset     int     `json:"offset"`
	Limit      int     `json:"limit"`
	HasMore    bool    `json:"has_more"`
	NextOffset int     `json:"next_offset,omitempty"`
}

// CachedDocument is the last catalog body fetched from a remote source
// together with the validators needed to revalidate it.
type CachedDocument struct {
	ETag         string    `json:"etag"`
	LastModified string    `json:"last_modified"`
	Body         []byte    `json:"body"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// CatalogStats is reported by the health endpoint.
type CatalogStats struct {
	Status     string  `json:"status"`
	Videos     int     `json:"videos"`
	Source     string  `json:"source"`
	CPUPercent float64 `json:"cpu_percent"`
}
