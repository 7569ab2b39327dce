package storage

import (
	"fmt"
	"io"

	cfg "github.com/dropkit/dropkit/internal/config"
)

// Storage defines the interface for blob storage operations. Blobs are
// addressed by their generated filename only.
type Storage interface {
	// Save stores a blob under the given name
	Save(name string, file io.Reader) error

	// Open returns a reader for the blob with the given name
	Open(name string) (io.ReadCloser, error)

	// Delete removes the blob with the given name
	Delete(name string) error
}

// New creates the storage backend selected by config.
// "local" writes to a directory on disk, "s3" targets any S3-compatible
// service (AWS S3, MinIO, Cloudflare R2, DigitalOcean Spaces, etc.)
func New(c *cfg.Config) (Storage, error) {
	switch c.StorageDriver {
	case "local":
		return NewLocalStorage(c.UploadDir)
	case "s3":
		return NewS3Storage(S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", c.StorageDriver)
	}
}
