package output

import (
	"errors"
	"os"
	"path/filepath"
)

// ImageStore persists linked package images under a single directory. Init
// clears the directory once per run; file names include the owning package's
// unique id, so later saves never overwrite earlier ones.
type ImageStore struct {
	dir string
}

// NewImageStore returns a store rooted at dir. Call Init before saving.
func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// Dir returns the store's directory.
func (s *ImageStore) Dir() string { return s.dir }

// Init creates the directory if needed and removes regular files left from a
// previous run. Run once, before any document is processed.
func (s *ImageStore) Init() error {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return os.MkdirAll(s.dir, 0o755)
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Save writes data under "<id>.<ext>", with the extension sniffed from the
// content, and returns the file name.
func (s *ImageStore) Save(id string, data []byte) (string, error) {
	name := id + "." + DetectImageExt(data)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// Read returns the bytes of a previously saved image.
func (s *ImageStore) Read(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, name))
}
