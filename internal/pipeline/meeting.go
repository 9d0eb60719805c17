package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nguyentantai21042004/meeting-flow/internal/tasks"
	"github.com/nguyentantai21042004/meeting-flow/internal/transcriber"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

const defaultTitle = "Meeting Recording"

// Meeting is the result record written for every processed recording.
type Meeting struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	AudioFileName string               `json:"audioFileName"`
	FileType      transcriber.FileType `json:"fileType"`
	Transcript    string               `json:"transcript"`
	Summary       string               `json:"summary"`
	Tasks         []tasks.Task         `json:"tasks"`
	Status        Status               `json:"status"`
	Error         string               `json:"error,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// titleFromPath turns "weekly_sync-2026.mp4" into "Weekly Sync 2026".
func titleFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(stem))
	if len(words) == 0 {
		return defaultTitle
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
