// Package storage is the upload boundary: handlers hand over a stream and
// get back the URL that is persisted on the record. Raw bytes never reach
// the database.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"trek-booking/pkg/utils"

	"github.com/google/uuid"
)

type Storage interface {
	// Save writes the file under a generated unique key and returns the
	// public URL to store on the record.
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// ObjectKey builds a date-partitioned unique key keeping the original
// extension.
func ObjectKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("%d/%02d/%s%s", d.Year(), int(d.Month()), uuid.New(), filepath.Ext(filename))
}

// New picks the configured driver.
func New(config utils.StorageConfig, baseURL string) (Storage, error) {
	switch config.Driver {
	case "s3":
		return NewS3(config)
	case "local", "":
		return NewLocal(config.LocalDir, baseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Driver)
	}
}
