package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cantonlabs/ledgerview/internal/errors"
	"github.com/cantonlabs/ledgerview/internal/security"
)

// DocStore is a directory of named text documents. It owns the backing
// files exclusively and never caches content: every call re-reads the
// directory, so files dropped in externally become visible without a
// restart.
type DocStore struct {
	dir string
}

// NewDocStore creates a document store rooted at dir, creating the
// directory if needed.
func NewDocStore(dir string) (*DocStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create docs directory: %w", err)
	}
	return &DocStore{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *DocStore) Dir() string {
	return s.dir
}

// DocFilename returns the backing filename for a canonical document id.
func DocFilename(id string) string {
	return id + security.DocExtension
}

// DocID returns the canonical document id for a backing filename.
func DocID(filename string) string {
	return strings.TrimSuffix(filename, security.DocExtension)
}

// Read returns the full text of the document with the given id.
// A missing document is a normal outcome and yields DOC_NOT_FOUND,
// never a fault.
func (s *DocStore) Read(id string) (string, error) {
	filename, err := security.SanitizeDocName(id)
	if err != nil {
		return "", errors.DocNotFound(id)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.DocNotFound(DocID(filename))
		}
		return "", errors.Internal(fmt.Sprintf("failed to read documentation %q", id), err)
	}
	return string(data), nil
}

// List returns the canonical ids of all documents currently present,
// sorted lexicographically. The listing is recomputed on every call.
func (s *DocStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Internal("failed to list documentation", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), security.DocExtension) {
			continue
		}
		ids = append(ids, DocID(entry.Name()))
	}
	sort.Strings(ids)
	return ids, nil
}

// Create writes a new document under the canonical name derived from
// requestedName and returns its canonical id. Creation is write-once:
// if the canonical name already exists the call fails with DOC_EXISTS
// and the existing content is untouched. The O_EXCL open closes the
// race window between concurrent creators.
func (s *DocStore) Create(requestedName, content string) (string, error) {
	filename, err := security.SanitizeDocName(requestedName)
	if err != nil {
		return "", errors.DocNameInvalid(requestedName, err.Error())
	}
	id := DocID(filename)

	f, err := os.OpenFile(filepath.Join(s.dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return "", errors.DocExists(id)
		}
		return "", errors.Internal(fmt.Sprintf("failed to create documentation %q", id), err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", errors.Internal(fmt.Sprintf("failed to write documentation %q", id), err)
	}
	// Flush to durable storage before reporting success.
	if err := f.Sync(); err != nil {
		f.Close()
		return "", errors.Internal(fmt.Sprintf("failed to sync documentation %q", id), err)
	}
	if err := f.Close(); err != nil {
		return "", errors.Internal(fmt.Sprintf("failed to close documentation %q", id), err)
	}

	return id, nil
}

// Seed creates a document if absent, leaving any existing content
// (including externally edited files) untouched.
func (s *DocStore) Seed(name, content string) error {
	_, err := s.Create(name, content)
	if errors.Is(err, errors.CodeDocExists) {
		return nil
	}
	return err
}
