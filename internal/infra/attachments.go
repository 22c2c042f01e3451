package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// AttachmentStore keeps one directory per deal under a base path. Path checks
// are deliberately tolerant: a missing directory lists as empty and removals
// of absent entries are no-ops, matching the idempotent delete semantics of
// the deal engine.
type AttachmentStore struct {
	basePath string
}

func NewAttachmentStore(basePath string) *AttachmentStore {
	return &AttachmentStore{basePath: basePath}
}

func (s *AttachmentStore) dealDir(dealID uint) string {
	return filepath.Join(s.basePath, strconv.FormatUint(uint64(dealID), 10))
}

// Provision creates the deal's attachment directory. Called on deal creation.
func (s *AttachmentStore) Provision(dealID uint) error {
	return os.MkdirAll(s.dealDir(dealID), 0755)
}

// Attachment is a stored file reference.
type Attachment struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// List returns the deal's attachments sorted by name; an unprovisioned deal
// yields an empty slice, not an error.
func (s *AttachmentStore) List(dealID uint) ([]Attachment, error) {
	dir := s.dealDir(dealID)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []Attachment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("attachments: read dir: %w", err)
	}

	attachments := make([]Attachment, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		attachments = append(attachments, Attachment{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(attachments, func(i, j int) bool { return attachments[i].Name < attachments[j].Name })
	return attachments, nil
}

// Add streams content into the deal's directory under name. The directory is
// created on demand so attachments survive deals provisioned before the store
// existed.
func (s *AttachmentStore) Add(dealID uint, name string, src io.Reader) (*Attachment, error) {
	dir := s.dealDir(dealID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("attachments: create dir: %w", err)
	}

	// filepath.Base strips any path components a client may smuggle in.
	name = filepath.Base(name)
	dest := filepath.Join(dir, name)

	f, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("attachments: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, src); err != nil {
		os.Remove(dest)
		return nil, fmt.Errorf("attachments: write file: %w", err)
	}
	return &Attachment{Name: name, Path: dest}, nil
}

// Remove deletes a single attachment; removing a missing file is a no-op.
func (s *AttachmentStore) Remove(dealID uint, name string) error {
	path := filepath.Join(s.dealDir(dealID), filepath.Base(name))
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// RemoveAll deletes the deal's whole directory; called by the cascade delete.
// Removing an absent directory is a no-op.
func (s *AttachmentStore) RemoveAll(dealID uint) error {
	return os.RemoveAll(s.dealDir(dealID))
}
