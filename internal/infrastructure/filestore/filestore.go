package filestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukrserhiy/litios/internal/domain/document"
	"github.com/ukrserhiy/litios/internal/domain/prompts"
	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

// Legacy file names inside the data directory
const (
	PromptsFileName = "prompts.json"
	HistoryFileName = "history.json"
)

// promptsFile is the on-disk shape of prompts.json.
type promptsFile struct {
	SystemPrompt string              `json:"systemPrompt"`
	Scales       []document.Document `json:"scales"`
	Models       []document.Document `json:"models"`
}

// FileStore reads and writes the legacy files of one data directory.
type FileStore struct {
	dir    string
	logger logger.Logger
}

// NewFileStore creates a FileStore rooted at dir
func NewFileStore(dir string, logger logger.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory must not be empty")
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// PromptsPath returns the path of prompts.json
func (s *FileStore) PromptsPath() string {
	return filepath.Join(s.dir, PromptsFileName)
}

// HistoryPath returns the path of history.json
func (s *FileStore) HistoryPath() string {
	return filepath.Join(s.dir, HistoryFileName)
}

// LoadPrompts reads prompts.json. A missing or unreadable file yields the empty configuration.
func (s *FileStore) LoadPrompts() *prompts.PromptSet {
	set, _, err := s.ReadPrompts()
	if err != nil {
		s.logger.Warn("Ignoring unreadable prompts file: ", err)
		return prompts.NewPromptSet()
	}
	return set
}

// ReadPrompts reads prompts.json strictly. found is false when the file does not exist,
// in which case the empty configuration is returned. A corrupt file is an error.
func (s *FileStore) ReadPrompts() (set *prompts.PromptSet, found bool, err error) {
	var file promptsFile
	found, err = s.read(s.PromptsPath(), &file)
	if err != nil || !found {
		return prompts.NewPromptSet(), found, err
	}

	set = prompts.NewPromptSet()
	set.SystemPrompt = file.SystemPrompt
	if file.Scales != nil {
		set.Scales = file.Scales
	}
	if file.Models != nil {
		set.Models = file.Models
	}
	return set, true, nil
}

// LoadHistory reads history.json. A missing or unreadable file yields an empty history.
func (s *FileStore) LoadHistory() []document.Document {
	entries, _, err := s.ReadHistory()
	if err != nil {
		s.logger.Warn("Ignoring unreadable history file: ", err)
		return []document.Document{}
	}
	return entries
}

// ReadHistory reads history.json strictly, with the same found semantics as ReadPrompts.
func (s *FileStore) ReadHistory() (entries []document.Document, found bool, err error) {
	found, err = s.read(s.HistoryPath(), &entries)
	if err != nil || !found {
		return []document.Document{}, found, err
	}
	return nonNil(entries), true, nil
}

// Exists reports whether the data directory exists.
func (s *FileStore) Exists() (bool, error) {
	info, err := os.Stat(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", s.dir, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", s.dir)
	}
	return true, nil
}

// SavePrompts writes prompts.json
func (s *FileStore) SavePrompts(set *prompts.PromptSet) error {
	return s.save(s.PromptsPath(), promptsFile{
		SystemPrompt: set.SystemPrompt,
		Scales:       nonNil(set.Scales),
		Models:       nonNil(set.Models),
	})
}

// SaveHistory writes history.json
func (s *FileStore) SaveHistory(entries []document.Document) error {
	return s.save(s.HistoryPath(), nonNil(entries))
}

// read decodes the JSON file at path into v. A missing file reports found=false without error.
func (s *FileStore) read(path string, v interface{}) (bool, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("corrupt file %s: %w", path, err)
	}
	return true, nil
}

// save writes v as 2-space indented JSON without escaping non-ASCII or HTML characters.
// The file is replaced atomically.
func (s *FileStore) save(path string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	s.logger.Info("Wrote ", path)
	return nil
}

func nonNil(docs []document.Document) []document.Document {
	if docs == nil {
		return []document.Document{}
	}
	return docs
}
