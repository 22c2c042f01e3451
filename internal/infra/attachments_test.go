package infra

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentStoreAddAndList(t *testing.T) {
	store := NewAttachmentStore(t.TempDir())

	_, err := store.Add(1, "contract.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	_, err = store.Add(1, "invoice.pdf", strings.NewReader("more bytes"))
	require.NoError(t, err)

	attachments, err := store.List(1)
	require.NoError(t, err)
	require.Len(t, attachments, 2)
	assert.Equal(t, "contract.pdf", attachments[0].Name)
	assert.Equal(t, "invoice.pdf", attachments[1].Name)
}

func TestAttachmentStoreListUnprovisioned(t *testing.T) {
	store := NewAttachmentStore(t.TempDir())

	attachments, err := store.List(42)
	require.NoError(t, err)
	assert.Empty(t, attachments)
}

func TestAttachmentStoreStripsClientPaths(t *testing.T) {
	store := NewAttachmentStore(t.TempDir())

	att, err := store.Add(1, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd", att.Name)

	attachments, err := store.List(1)
	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, "passwd", attachments[0].Name)
}

func TestAttachmentStoreRemoveMissingIsNoOp(t *testing.T) {
	store := NewAttachmentStore(t.TempDir())

	assert.NoError(t, store.Remove(1, "ghost.pdf"))
	assert.NoError(t, store.RemoveAll(1))
}

func TestAttachmentStoreRemoveAll(t *testing.T) {
	store := NewAttachmentStore(t.TempDir())

	_, err := store.Add(3, "a.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.RemoveAll(3))

	attachments, err := store.List(3)
	require.NoError(t, err)
	assert.Empty(t, attachments)
}
