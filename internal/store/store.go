package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type FS struct{ Root string }

func New(root string) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{Root: root}, nil
}

func (s *FS) JobDir(id string) string     { return filepath.Join(s.Root, id) }
func (s *FS) UploadsDir(id string) string { return filepath.Join(s.JobDir(id), "uploads") }

func (s *FS) MkJob(id string) (string, error) {
	j := s.JobDir(id)
	return j, os.MkdirAll(filepath.Join(j, "uploads"), 0o755)
}

// WriteJSON persists v as <jobdir>/<name>.
func (s *FS) WriteJSON(id, name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.JobDir(id), name), b, 0o644)
}

func (s *FS) ReadJSON(id, name string, v any) error {
	b, err := os.ReadFile(filepath.Join(s.JobDir(id), name))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
