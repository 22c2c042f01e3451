package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// EmailArchive writes a copy of every sent email as a standalone HTML file so
// the operator can review outgoing correspondence without mailbox access.
type EmailArchive struct {
	basePath string
}

func NewEmailArchive(basePath string) *EmailArchive {
	return &EmailArchive{basePath: basePath}
}

// Save writes the sent email to disk and returns the file path.
func (a *EmailArchive) Save(to, subject, htmlBody string, sentAt time.Time) (string, error) {
	if err := os.MkdirAll(a.basePath, 0755); err != nil {
		return "", fmt.Errorf("email archive: create dir: %w", err)
	}

	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(sentAt.UTC().Format(time.RFC3339))
	path := filepath.Join(a.basePath, "email-"+stamp+".html")

	content := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>%s</title></head>
<body>
<div style="padding: 20px; font-family: Arial, sans-serif;">
    <p><strong>To:</strong> %s</p>
    <p><strong>Subject:</strong> %s</p>
    <p><strong>Date:</strong> %s</p>
    <hr>
    %s
</div>
</body>
</html>
`, subject, to, subject, sentAt.Format("02 Jan 2006 15:04"), htmlBody)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("email archive: write file: %w", err)
	}
	return path, nil
}

// SentEmail is an archived outgoing message.
type SentEmail struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// List returns archived emails newest first. A missing archive directory
// yields an empty slice.
func (a *EmailArchive) List() ([]SentEmail, error) {
	entries, err := os.ReadDir(a.basePath)
	if os.IsNotExist(err) {
		return []SentEmail{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("email archive: read dir: %w", err)
	}

	emails := make([]SentEmail, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		emails = append(emails, SentEmail{
			Name: e.Name(),
			Path: filepath.Join(a.basePath, e.Name()),
		})
	}
	// Filenames embed the timestamp, so reverse-lexical is newest first.
	sort.Slice(emails, func(i, j int) bool { return emails[i].Name > emails[j].Name })
	return emails, nil
}
