package model

import (
	"fmt"
	"time"
)

// VideoEntry is one uploaded video's metadata as tracked by the dashboard.
// ID identifies the entry; Filename is the key used by the stream, download
// and delete endpoints. The two must stay consistent or those actions target
// the wrong resource.
type VideoEntry struct {
	ID         string    `json:"_id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	MimeType   string    `json:"mime_type"`
	SizeMb     float64   `json:"size_mb"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// GetDisplayTitle returns the filename, or the storage path as a fallback
func (ve *VideoEntry) GetDisplayTitle() string {
	if ve.Filename != "" {
		return ve.Filename
	}
	return ve.FilePath
}

// GetSizeString returns the entry size formatted for display
func (ve *VideoEntry) GetSizeString() string {
	return FormatSizeMb(ve.SizeMb)
}

// FormatSizeMb formats a size given in megabytes as "x.xx MB" or "x.xx KB"
func FormatSizeMb(sizeMb float64) string {
	if sizeMb > 1 {
		return fmt.Sprintf("%.2f MB", sizeMb)
	}
	return fmt.Sprintf("%.2f KB", sizeMb*1024)
}
