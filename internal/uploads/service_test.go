package uploads

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(dir)
	require.NoError(t, err)

	_, err = svc.Store([]byte("hello"), "text/plain", "notes.txt")
	assert.ErrorIs(t, err, ErrNotAnImage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written for a rejected upload")
}

func TestStore_RejectsOversize(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(dir)
	require.NoError(t, err)

	big := make([]byte, MaxFileSize+1)
	_, err = svc.Store(big, "image/png", "big.png")
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_WritesBytesVerbatim(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(dir)
	require.NoError(t, err)

	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	url, err := svc.Store(payload, "image/png", "avatar.png")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, "/uploads/")
	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, stored))
}

func TestStore_DefaultsExtensionToJPG(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(dir)
	require.NoError(t, err)

	url, err := svc.Store([]byte{0xff, 0xd8}, "image/jpeg", "no-extension")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestStore_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(dir)
	require.NoError(t, err)

	first, err := svc.Store([]byte{0xff, 0xd8}, "image/jpeg", "same.jpg")
	require.NoError(t, err)
	second, err := svc.Store([]byte{0xff, 0xd8}, "image/jpeg", "same.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
