package infra

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailArchiveSaveAndList(t *testing.T) {
	archive := NewEmailArchive(t.TempDir())

	older := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)

	_, err := archive.Save("a@example.com", "First", "<p>one</p>", older)
	require.NoError(t, err)
	path, err := archive.Save("b@example.com", "Second", "<p>two</p>", newer)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "b@example.com")
	assert.Contains(t, string(content), "Second")
	assert.Contains(t, string(content), "<p>two</p>")

	emails, err := archive.List()
	require.NoError(t, err)
	require.Len(t, emails, 2)
	// Newest first.
	assert.Contains(t, emails[0].Name, "2026-02-02")
	assert.Contains(t, emails[1].Name, "2026-02-01")
}

func TestEmailArchiveListMissingDir(t *testing.T) {
	archive := NewEmailArchive("/nonexistent/archive/dir")

	emails, err := archive.List()
	require.NoError(t, err)
	assert.Empty(t, emails)
}
