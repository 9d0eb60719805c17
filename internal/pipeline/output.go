package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-flow/internal/report"
)

// writeRecord writes <output>/<stem>.meeting.json and returns its path.
func (p *implPipeline) writeRecord(m *Meeting, mediaPath string) (string, error) {
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode meeting: %w", err)
	}

	path := filepath.Join(p.outputDir, stem(mediaPath)+".meeting.json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// writeReport writes <output>/<stem>.docx.
func (p *implPipeline) writeReport(m *Meeting, mediaPath string) (string, error) {
	path := filepath.Join(p.outputDir, stem(mediaPath)+".docx")
	err := report.WriteDocx(report.Content{
		Title:   m.Title,
		Date:    m.CreatedAt.Format("2006-01-02 15:04"),
		Summary: m.Summary,
		Tasks:   m.Tasks,
	}, path)
	if err != nil {
		return "", err
	}
	return path, nil
}
