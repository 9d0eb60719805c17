package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meeting-flow/internal/tasks"
)

func TestWriteDocx(t *testing.T) {
	out := filepath.Join(t.TempDir(), "standup.docx")

	err := WriteDocx(Content{
		Title:   "Standup",
		Date:    "2026-10-17 09:30",
		Summary: "The team agreed to ship on Friday.",
		Tasks:   tasks.Extract("We should finish the report by Friday. John, please review it urgently."),
	}, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteDocxWithoutTasks(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.docx")
	require.NoError(t, WriteDocx(Content{Title: "Empty"}, out))
	assert.FileExists(t, out)
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, "C00000", priorityColor(tasks.PriorityHigh))
	assert.Equal(t, "000000", priorityColor(tasks.PriorityMedium))
	assert.Equal(t, "2E7D32", priorityColor(tasks.PriorityLow))
}
