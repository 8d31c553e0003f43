package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded files (profile pictures) live.
type FileStorage interface {
	// Upload writes a file and returns the stored path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored path
	URL(path string) string
}
