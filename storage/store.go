package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips directory components and anything outside
// [A-Za-z0-9._-] from a client-supplied filename, so the result can never
// escape the storage directory. Sanitizing does not prevent two clients
// from picking the same name; last writer wins on collision.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}

// FileStore owns the on-disk layout: one directory for profile pictures,
// one for ring artifacts.
type FileStore struct {
	picsDir  string
	ringsDir string
}

func NewFileStore(picsDir, ringsDir string) (*FileStore, error) {
	for _, dir := range []string{picsDir, ringsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	return &FileStore{picsDir: picsDir, ringsDir: ringsDir}, nil
}

// Save writes a ring artifact and returns the stored filename and the
// SHA-256 of the bytes actually written.
func (s *FileStore) Save(filename string, r io.Reader) (string, string, error) {
	stored := SanitizeFilename(filename)
	path := filepath.Join(s.ringsDir, stored)

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create ring file: %w", err)
	}

	hasher := sha256.New()
	_, err = io.Copy(f, io.TeeReader(r, hasher))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", "", fmt.Errorf("write ring file: %w", err)
	}

	return stored, hex.EncodeToString(hasher.Sum(nil)), nil
}

// Remove deletes a stored ring artifact.
func (s *FileStore) Remove(stored string) error {
	path, err := confine(s.ringsDir, stored)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// RingPath resolves a stored ring filename to an absolute path inside the
// rings directory, verifying the file exists.
func (s *FileStore) RingPath(stored string) (string, error) {
	return resolve(s.ringsDir, stored)
}

// SaveAvatar stores an avatar as <username><original extension> in the
// picture directory, silently overwriting any previous upload for the same
// username.
func (s *FileStore) SaveAvatar(username, originalName string, r io.Reader) (string, error) {
	ext := filepath.Ext(SanitizeFilename(originalName))
	stored := username + ext
	path := filepath.Join(s.picsDir, stored)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	_, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write avatar file: %w", err)
	}
	return stored, nil
}

// AvatarPath resolves a stored avatar filename inside the picture directory.
func (s *FileStore) AvatarPath(stored string) (string, error) {
	return resolve(s.picsDir, stored)
}

func confine(dir, name string) (string, error) {
	path := filepath.Join(dir, filepath.Base(name))
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(abs, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes storage directory", name)
	}
	return abs, nil
}

func resolve(dir, name string) (string, error) {
	path, err := confine(dir, name)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", name)
	}
	return path, nil
}
