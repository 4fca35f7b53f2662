package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	base := t.TempDir()
	store, err := NewFileStore(filepath.Join(base, "pics"), filepath.Join(base, "rings"))
	require.NoError(t, err)
	return store
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"firering-1.0.0.ring":    "firering-1.0.0.ring",
		"../../etc/passwd":       "passwd",
		"..\\..\\windows\\cmd":   "cmd",
		"weird name!?.tar.gz":    "weird_name_.tar.gz",
		"...":                    "file",
		"":                       "file",
		"/absolute/path/to.ring": "to.ring",
	}
	for input, want := range cases {
		assert.Equalf(t, want, SanitizeFilename(input), "input %q", input)
	}
}

func TestSaveComputesChecksumOfWrittenBytes(t *testing.T) {
	store := newTestStore(t)

	content := []byte("ring artifact contents")
	stored, sha, err := store.Save("firering-1.0.0.ring", strings.NewReader(string(content)))
	require.NoError(t, err)
	assert.Equal(t, "firering-1.0.0.ring", stored)

	sum := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(sum[:]), sha)

	path, err := store.RingPath(stored)
	require.NoError(t, err)
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)
}

func TestSaveSanitizesTraversal(t *testing.T) {
	store := newTestStore(t)

	stored, _, err := store.Save("../../escape.ring", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "escape.ring", stored)

	// the file landed inside the rings dir
	_, err = store.RingPath(stored)
	assert.NoError(t, err)
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)

	stored, _, err := store.Save("a.ring", strings.NewReader("data"))
	require.NoError(t, err)
	require.NoError(t, store.Remove(stored))

	_, err = store.RingPath(stored)
	assert.Error(t, err)
}

func TestRingPathRejectsMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RingPath("never-uploaded.ring")
	assert.Error(t, err)
}

func TestSaveAvatarNamedByUsername(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.SaveAvatar("alice", "photo.png", strings.NewReader("first"))
	require.NoError(t, err)
	assert.Equal(t, "alice.png", stored)

	// second upload with the same extension overwrites silently
	again, err := store.SaveAvatar("alice", "other.png", strings.NewReader("second"))
	require.NoError(t, err)
	assert.Equal(t, stored, again)

	path, err := store.AvatarPath(stored)
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestAvatarPathConfined(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AvatarPath("../rings/secret.ring")
	assert.Error(t, err)
}
