package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Extension is the fixed transcript file extension.
const Extension = ".json"

// Store manages the directory holding saved transcripts. Each file is
// addressed by one session at a time by convention; no locking is applied.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) a transcript directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create transcript directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the managed directory.
func (s *Store) Dir() string { return s.dir }

// Save writes the transcript under filename, synthesizing a timestamp-based
// name when filename is empty and appending the fixed extension when it is
// missing. It returns the full path written.
func (s *Store) Save(t *Transcript, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("conversation_%s%s", time.Now().Format("20060102_150405"), Extension)
	}
	if !strings.HasSuffix(filename, Extension) {
		filename += Extension
	}
	path := filepath.Join(s.dir, filename)
	if err := t.Write(path); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads a transcript by file name within the store, or by path when
// name contains a path separator.
func (s *Store) Load(name string) (*Transcript, error) {
	return Read(s.Path(name))
}

// Path resolves a store-relative file name to a full path. Absolute paths
// and paths outside the store are passed through untouched.
func (s *Store) Path(name string) string {
	if strings.ContainsRune(name, os.PathSeparator) || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// List returns the transcript file names in the store, newest first.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), Extension) {
			files = append(files, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}

// Summary describes a stored transcript without loading it into a session.
type Summary struct {
	File        string
	Timestamp   string
	Model       string
	Provider    string
	Messages    int
	TotalTokens int
}

// Info reads a transcript file and returns its display metadata. The
// timestamp is reformatted for display when it parses as RFC 3339.
func (s *Store) Info(name string) (*Summary, error) {
	t, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	timestamp := t.Timestamp
	if parsed, err := time.Parse(time.RFC3339, timestamp); err == nil {
		timestamp = parsed.Format("2006-01-02 15:04:05")
	}
	return &Summary{
		File:        filepath.Base(s.Path(name)),
		Timestamp:   timestamp,
		Model:       t.Model,
		Provider:    t.Provider,
		Messages:    len(t.Conversation),
		TotalTokens: t.TokenUsage.TotalTokens,
	}, nil
}
