package storage

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// FileStore keeps the address book in a single file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the address book. A missing file or a file with a foreign
// structure yields an empty book and no error; only I/O failures are returned.
func (s *FileStore) Load() (*book.AddressBook, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
	)
	if s.Path == "" {
		return nil, errors.New(config.ErrBookPathEmpty)
	}

	//nolint:gosec // G304: the path is the user's own address book.
	f, err := os.Open(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info(config.MsgBookMissing)
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrOpenBook, err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(f)
	if errors.Is(err, ErrForeignFormat) {
		log.Warn(config.MsgBookForeign, config.LogKeyError, err)
		return book.New(), nil
	}
	if err != nil {
		return nil, err
	}

	log.Info(config.MsgBookLoaded, config.LogKeyCount, b.Len())
	return b, nil
}

// Save replaces the file with the current content of b. The data is written
// to a temporary file in the same directory and renamed over the target, so
// an interrupted save leaves the previous file intact.
func (s *FileStore) Save(b *book.AddressBook) error {
	if s.Path == "" {
		return errors.New(config.ErrBookPathEmpty)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), config.TempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteBook, err)
	}
	// Best effort cleanup; after a successful rename the temp name no longer exists.
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrWriteBook, err)
	}
	if err := tmp.Chmod(config.FilePermUserRW); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrWriteBook, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteBook, err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteBook, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyCount, b.Len(),
	)
	return nil
}
