package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/plancare/customer-service/internal/customer"
	"github.com/plancare/customer-service/pkg/logger"
	"github.com/plancare/customer-service/pkg/metrics"
)

const DefaultSnapshotPrefix = "snapshots/"

// Uploader stores an object under key. *storage.MinIOStorage satisfies it.
type Uploader interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}

// BackupStore copies every successfully saved document to object storage.
// Upload failures are logged and counted but never fail the Save.
type BackupStore struct {
	Store
	uploader Uploader
	prefix   string
	now      func() time.Time
}

func NewBackupStore(inner Store, uploader Uploader, prefix string) *BackupStore {
	if prefix == "" {
		prefix = DefaultSnapshotPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &BackupStore{Store: inner, uploader: uploader, prefix: prefix, now: time.Now}
}

func (b *BackupStore) Save(ctx context.Context, customers []customer.Customer) error {
	if err := b.Store.Save(ctx, customers); err != nil {
		return err
	}
	data, err := Encode(customers)
	if err != nil {
		logger.Warnf("snapshot encode failed: %v", err)
		metrics.BackupFailures.Inc()
		return nil
	}
	key := fmt.Sprintf("%scustomers-%d.json", b.prefix, b.now().UnixMilli())
	if err := b.uploader.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
		logger.Warnf("snapshot upload %s failed: %v", key, err)
		metrics.BackupFailures.Inc()
		return nil
	}
	logger.Debugf("snapshot %s uploaded (%d customers)", key, len(customers))
	return nil
}
