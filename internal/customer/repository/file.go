package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plancare/customer-service/internal/customer"
	"github.com/plancare/customer-service/pkg/logger"
)

const (
	dataFileMode    = 0o644
	dataDirMode     = 0o755
	tempFilePattern = ".customers-*.json.tmp"
)

// FileStore keeps the collection in a single JSON file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore prepares path for use, creating the parent directory and an
// empty document when the file does not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("customers data path is empty")
	}
	fs := &FileStore{path: filepath.Clean(path)}
	if _, err := os.Stat(fs.path); err == nil {
		return fs, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat customers file: %w", err)
	}
	logger.Infof("customers file %s does not exist, starting with an empty document", fs.path)
	if err := fs.write([]byte("[]")); err != nil {
		return nil, err
	}
	return fs, nil
}

// Path is the location of the document.
func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Load(ctx context.Context) ([]customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, customer.NewStoreError("load", err)
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, customer.NewStoreError("load", err)
	}
	out, err := Decode(data)
	if err != nil {
		return nil, customer.NewStoreError("load", err)
	}
	return out, nil
}

func (f *FileStore) Save(ctx context.Context, customers []customer.Customer) error {
	if err := ctx.Err(); err != nil {
		return customer.NewStoreError("save", err)
	}
	data, err := Encode(customers)
	if err != nil {
		return customer.NewStoreError("save", err)
	}
	return customer.NewStoreError("save", f.write(data))
}

// write replaces the document through a temp file and rename, so readers
// see either the old or the new document.
func (f *FileStore) write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, dataDirMode); err != nil {
		return fmt.Errorf("create customers directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp customers file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp customers file: %w", err)
	}
	if err := tmp.Chmod(dataFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp customers file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp customers file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace customers file: %w", err)
	}
	cleanup = false
	return nil
}
