package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/tasks"
	"github.com/nguyentantai21042004/meeting-flow/internal/transcriber"
)

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, mediaPath string) (string, error) {
	return f.text, f.err
}

type fakeSummarizer struct {
	calls int
	err   error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "The team discussed the report.", nil
}

func newTestPipeline(t *testing.T, tr transcriber.Transcriber, sum *fakeSummarizer, docx bool) (*implPipeline, string) {
	t.Helper()
	out := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Output = out
	cfg.Report.Docx = docx

	p := New(cfg, tr, sum, logger.Discard()).(*implPipeline)
	fixed := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }
	return p, out
}

func readRecord(t *testing.T, path string) Meeting {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m Meeting
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestProcess(t *testing.T) {
	tr := &fakeTranscriber{text: "We should finish the report by Friday. John, please review it urgently."}
	sum := &fakeSummarizer{}
	p, out := newTestPipeline(t, tr, sum, false)

	m, err := p.Process(context.Background(), "/recordings/weekly_sync.mp4")
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, "Weekly Sync", m.Title)
	assert.Equal(t, "weekly_sync.mp4", m.AudioFileName)
	assert.Equal(t, transcriber.FileTypeVideo, m.FileType)
	assert.Equal(t, "The team discussed the report.", m.Summary)
	assert.NotEmpty(t, m.ID)
	require.Len(t, m.Tasks, 2)
	assert.Equal(t, tasks.PriorityHigh, m.Tasks[1].Priority)

	record := readRecord(t, filepath.Join(out, "weekly_sync.meeting.json"))
	assert.Equal(t, m.ID, record.ID)
	assert.Equal(t, StatusCompleted, record.Status)
	assert.Equal(t, m.Tasks, record.Tasks)
	assert.NoFileExists(t, filepath.Join(out, "weekly_sync.docx"))
}

func TestProcessWritesDocx(t *testing.T) {
	tr := &fakeTranscriber{text: "Alice will send the slides by Monday."}
	p, out := newTestPipeline(t, tr, &fakeSummarizer{}, true)

	_, err := p.Process(context.Background(), "standup.wav")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "standup.docx"))
}

func TestProcessRejectsShortTranscript(t *testing.T) {
	sum := &fakeSummarizer{}
	p, out := newTestPipeline(t, &fakeTranscriber{text: "  uh hm  "}, sum, false)

	m, err := p.Process(context.Background(), "silence.m4a")
	require.ErrorIs(t, err, ErrEmptyTranscript)
	assert.Equal(t, StatusFailed, m.Status)
	assert.Zero(t, sum.calls)

	record := readRecord(t, filepath.Join(out, "silence.meeting.json"))
	assert.Equal(t, StatusFailed, record.Status)
	assert.Equal(t, ErrEmptyTranscript.Error(), record.Error)
}

func TestProcessStepFailures(t *testing.T) {
	tests := []struct {
		name    string
		tr      *fakeTranscriber
		sum     *fakeSummarizer
		wantErr string
	}{
		{
			name:    "transcription fails",
			tr:      &fakeTranscriber{err: errors.New("audio file not found: x.mp3")},
			sum:     &fakeSummarizer{},
			wantErr: "transcribe: audio file not found",
		},
		{
			name:    "summarization fails",
			tr:      &fakeTranscriber{text: "We must ship the release this week."},
			sum:     &fakeSummarizer{err: errors.New("backend down")},
			wantErr: "summarize: backend down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPipeline(t, tt.tr, tt.sum, false)

			m, err := p.Process(context.Background(), "x.mp3")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, StatusFailed, m.Status)
			assert.Empty(t, m.Tasks)
		})
	}
}

func TestProcessUnsupportedFile(t *testing.T) {
	p, _ := newTestPipeline(t, &fakeTranscriber{}, &fakeSummarizer{}, false)

	m, err := p.Process(context.Background(), "agenda.pdf")
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestTitleFromPath(t *testing.T) {
	tests := map[string]string{
		"weekly_sync-2026.mp4":   "Weekly Sync 2026",
		"/a/b/board meeting.mp3": "Board Meeting",
		"___.wav":                defaultTitle,
	}
	for in, want := range tests {
		assert.Equal(t, want, titleFromPath(in), in)
	}
}
