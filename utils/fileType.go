package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// extension groups checked in priority order; first match wins. The groups
// are disjoint, so the order only matters for the default fallback.
var typeGroups = []struct {
	tag  string
	exts []string
}{
	{"document", []string{".doc", ".docx"}},
	{"spreadsheet", []string{".xls", ".xlsx", ".csv"}},
	{"presentation", []string{".ppt", ".pptx"}},
	{"pdf", []string{".pdf"}},
	{"image", []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg"}},
	{"video", []string{".mp4", ".avi", ".mov", ".wmv", ".flv", ".mkv", ".webm"}},
	{"audio", []string{".mp3", ".wav", ".ogg", ".flac"}},
	{"webpage", []string{".htm", ".html"}},
	{"text", []string{".txt"}},
}

// ClassifyPath maps a path-or-URL string to a content-type tag. Matching is
// case-insensitive on the suffix; no match (including an empty string or a
// path with no extension) yields "file".
func ClassifyPath(filePath string) string {
	lower := strings.ToLower(filePath)
	for _, group := range typeGroups {
		for _, ext := range group.exts {
			if strings.HasSuffix(lower, ext) {
				return group.tag
			}
		}
	}
	return "file"
}

// IsValidPath reports whether a content location is usable. URLs are trusted
// without a reachability check; anything else must name an existing regular
// file visible to this process (a mounted network share counts the same as
// local disk). Stat errors are treated as not valid.
func IsValidPath(filePath string) bool {
	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		return true
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// upload buckets are intentionally coarser than ClassifyPath: uploads only
// need a storage/display bucket, not a precise viewer hint.
var uploadBuckets = map[string]string{
	".jpg": "image", ".jpeg": "image", ".png": "image", ".gif": "image", ".webp": "image",
	".mp4": "video", ".avi": "video", ".mov": "video", ".wmv": "video",
}

// UploadBucket maps an uploaded filename to one of image, video or document
// (the default, covering pdf/doc/txt and anything unrecognized).
func UploadBucket(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if bucket, ok := uploadBuckets[ext]; ok {
		return bucket
	}
	return "document"
}

// videoMIMETypes is the explicit fallback table for serving video formats
// that generic MIME lookup tends to miss.
var videoMIMETypes = map[string]string{
	".mp4":  "video/mp4",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
}

// VideoMIME returns the MIME type for a known video extension, or "" when
// the file is not one of the tabled formats.
func VideoMIME(filename string) string {
	return videoMIMETypes[strings.ToLower(filepath.Ext(filename))]
}
