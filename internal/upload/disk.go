package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
)

// URLPrefix is the public path under which stored images are served.
const URLPrefix = "/uploads/"

// Disk stores processed images as files in Dir.
type Disk struct {
	Dir string
}

// NewDisk returns a Disk rooted at dir, creating the directory if needed.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Disk{Dir: dir}, nil
}

// Save processes an uploaded image and writes it under a random name.
// It returns the public reference path, e.g. /uploads/<uuid>.jpg.
func (d *Disk) Save(r io.Reader) (string, error) {
	data, err := Process(r)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ".jpg"
	if err := atomic.WriteFile(filepath.Join(d.Dir, name), bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}
	return URLPrefix + name, nil
}

// Remove deletes a file previously returned by Save. Removing a file that
// no longer exists is not an error.
func (d *Disk) Remove(ref string) error {
	name, ok := strings.CutPrefix(ref, URLPrefix)
	if !ok || name == "" || name != path.Base(name) || name == ".." {
		return fmt.Errorf("not an upload reference: %q", ref)
	}

	err := os.Remove(filepath.Join(d.Dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing image: %w", err)
	}
	return nil
}
