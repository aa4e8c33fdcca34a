package document

import (
	"context"
	"io"
	"time"
)

// ObjectStore is where version files live. Keys follow StorageKey; the
// relational store never holds file bytes.
type ObjectStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, key string) error
}
