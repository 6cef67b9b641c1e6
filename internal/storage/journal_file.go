package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"asha_sphere/internal/logger"
	"asha_sphere/internal/models"
)

// FileJournalStorage keeps every entry in one indented JSON array. Each save
// rewrites the whole file.
//
// The mutex only serializes callers inside this process; two processes
// sharing the file still race and the last writer wins.
type FileJournalStorage struct {
	path   string
	mu     sync.RWMutex
	logger logger.Logger
}

func NewFileJournalStorage(path string, log logger.Logger) *FileJournalStorage {
	return &FileJournalStorage{path: path, logger: log}
}

// ListEntries returns the stored entries as they are on disk. A missing file,
// or one that is not a JSON array, counts as an empty journal. Elements that
// do not decode as an entry are skipped but stay in the file.
func (fs *FileJournalStorage) ListEntries(ctx context.Context) ([]models.JournalEntry, error) {
	op := "internal/storage/journal_file.go ListEntries"

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	raw, err := fs.load()
	if err != nil {
		return nil, err
	}

	entries := make([]models.JournalEntry, 0, len(raw))
	for i, msg := range raw {
		var entry models.JournalEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			fs.logger.Warnf("%s: skipping element %d of %s: %v", op, i, fs.path, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// SaveEntry puts entry in front of the existing ones. Ids are not checked for
// uniqueness. Stored elements are written back untouched, including ones that
// ListEntries cannot decode.
func (fs *FileJournalStorage) SaveEntry(ctx context.Context, entry *models.JournalEntry) error {
	op := "internal/storage/journal_file.go SaveEntry"

	if entry == nil {
		return fmt.Errorf("%s: nil entry", op)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%s: failed to marshal entry: %w", op, err)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	raw, err := fs.load()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	raw = append([]json.RawMessage{encoded}, raw...)

	if err := atomicWriteFileJSON(fs.path, raw); err != nil {
		return fmt.Errorf("Failure to write journal in %s: %w", op, err)
	}
	return nil
}

// load returns the elements of the stored array without decoding them.
func (fs *FileJournalStorage) load() ([]json.RawMessage, error) {
	op := "internal/storage/journal_file.go load"

	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		fs.logger.Warnf("%s: journal file %s is not a JSON array, treating as empty: %v", op, fs.path, err)
		return []json.RawMessage{}, nil
	}
	if raw == nil {
		raw = []json.RawMessage{}
	}
	return raw, nil
}

// atomicWriteFileJSON writes data next to filePath and renames it into place
// so readers never see a half-written file.
func atomicWriteFileJSON(filePath string, data interface{}) error {
	dir := filepath.Dir(filePath)
	f, err := os.CreateTemp(dir, filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return err
	}
	tempFile := f.Name()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}
