package notes

import (
	"path/filepath"
	"strings"
)

const fallbackContentType = "application/octet-stream"

// Fixed extension table. Deliberately not mime.TypeByExtension: that lookup
// is platform-dependent, and the resolved type is part of the upload
// contract.
var contentTypeByExt = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".csv":  "text/csv",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".mp4":  "video/mp4",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".zip":  "application/zip",
}

// ResolveContentType picks the MIME type for an upload. A caller-declared
// type wins when it is non-blank and more specific than the generic
// application/octet-stream; otherwise the filename extension decides, with
// octet-stream as the fallback for unknown extensions.
func ResolveContentType(filename, provided string) string {
	p := strings.TrimSpace(provided)
	if p != "" && !strings.EqualFold(p, fallbackContentType) {
		return p
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := contentTypeByExt[ext]; ok {
		return ct
	}
	return fallbackContentType
}
