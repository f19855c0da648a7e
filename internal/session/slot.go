package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Slot is the durable key-value slot holding the bearer token between runs.
type Slot interface {
	// Read returns the stored credential, or "" when none is stored.
	Read() (string, error)
	Write(credential string) error
	Clear() error
}

// FileSlot stores the credential in a single file (default ~/.rollcall/token).
// The ROLLCALL_TOKEN environment variable, when set, takes precedence over
// the file on read.
type FileSlot struct {
	path string
}

// NewFileSlot creates a slot backed by the given file path.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Read() (string, error) {
	if tok := os.Getenv("ROLLCALL_TOKEN"); tok != "" {
		return tok, nil
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileSlot) Write(credential string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(credential), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *FileSlot) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
