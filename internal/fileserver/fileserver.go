// Package fileserver stores uploaded files on the local disk.
package fileserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	directoryPerms = 0o755
)

const (
	RecipesDir = "recipes"
	AvatarsDir = "avatars"
)

// topLevelDirectories are the only directories files may be written to or
// deleted from. They are never pruned.
var topLevelDirectories = []string{RecipesDir, AvatarsDir}

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrNotExist    = errors.New("file does not exist")
)

type FileServer struct {
	baseDir string
}

func New(baseDir string) *FileServer {
	return &FileServer{
		baseDir: baseDir,
	}
}

func (f *FileServer) BaseDirectory() string {
	if f == nil {
		return ""
	}
	return f.baseDir
}

// Write stores data at path, relative to the base directory, replacing any
// existing file.
func (f *FileServer) Write(path string, data []byte) (n int, err error) {
	if f == nil {
		return 0, nil
	}

	fullpath, err := f.resolve(path)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(fullpath), directoryPerms); err != nil {
		return 0, fmt.Errorf("creating parent directories: %w", err)
	}

	file, err := os.Create(fullpath)
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = file.Close() }()

	n, err = file.Write(data)
	if err != nil {
		return 0, fmt.Errorf("writing file: %w", err)
	}

	return n, nil
}

// Delete removes the file at path and prunes the directories left empty,
// stopping at the top-level directory.
func (f *FileServer) Delete(path string) error {
	if f == nil {
		return nil
	}

	fullpath, err := f.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(fullpath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", path, ErrNotExist)
	} else if err != nil {
		return fmt.Errorf("removing %q: %w", path, err)
	}

	base, err := filepath.Abs(f.baseDir)
	if err != nil {
		return fmt.Errorf("resolving base directory: %w", err)
	}
	top := filepath.Join(base, topLevelDirectory(path))

	for dir := filepath.Dir(fullpath); dir != top && dir != base; dir = filepath.Dir(dir) {
		empty, err := isEmptyDirectory(dir)
		if err != nil {
			return fmt.Errorf("checking directory %q: %w", dir, err)
		}
		if !empty {
			break
		}
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("pruning directory %q: %w", dir, err)
		}
	}

	return nil
}

// Handler serves the stored files. Directory listings are not served.
func (f *FileServer) Handler() http.Handler {
	files := http.FileServer(http.Dir(f.baseDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func (f *FileServer) resolve(path string) (string, error) {
	if !slices.Contains(topLevelDirectories, topLevelDirectory(path)) {
		return "", fmt.Errorf("%q is outside the allowed directories: %w", path, ErrInvalidPath)
	}
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return "", err
	}
	return fullpath, nil
}

// cleanPath joins path onto baseDir and returns the absolute result, failing
// with ErrInvalidPath when path is absolute or escapes baseDir.
func cleanPath(baseDir, path string) (string, error) {
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("absolute path %q: %w", path, ErrInvalidPath)
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}

	full := filepath.Join(base, path)
	rel, err := filepath.Rel(base, full)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes base directory: %w", path, ErrInvalidPath)
	}

	return full, nil
}

func topLevelDirectory(path string) string {
	cleaned := strings.TrimPrefix(filepath.Clean(path), string(filepath.Separator))
	top, _, _ := strings.Cut(cleaned, string(filepath.Separator))
	return top
}

func isEmptyDirectory(dir string) (bool, error) {
	d, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer func() { _ = d.Close() }()

	_, err = d.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
