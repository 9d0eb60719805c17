package transcriber

import (
	"path/filepath"
	"slices"
	"strings"
)

// FileType classifies media by extension.
type FileType string

const (
	FileTypeAudio FileType = "audio"
	FileTypeVideo FileType = "video"
)

var (
	audioExts = []string{".mp3", ".wav", ".m4a", ".ogg"}
	videoExts = []string{".mp4", ".mov", ".mkv", ".webm"}
)

// DetectFileType reports whether path looks like supported audio or video.
func DetectFileType(path string) (FileType, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case slices.Contains(audioExts, ext):
		return FileTypeAudio, true
	case slices.Contains(videoExts, ext):
		return FileTypeVideo, true
	default:
		return "", false
	}
}
