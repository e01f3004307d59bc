// Package photostore stores proof-of-delivery photos on the local filesystem.
// Photos are write-once artifacts: the delivery flow saves the file first and
// removes it again only when the surrounding transaction fails to commit.
package photostore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"paquexpress/internal/pkg/errs"
)

// FilesystemPhotoStore saves photos under a single root directory.
// Stored paths are returned relative to the process working directory so they
// can double as public URLs when the root is served statically.
type FilesystemPhotoStore struct {
	root string
}

// NewFilesystemPhotoStore creates a store rooted at the given directory,
// creating it if needed.
func NewFilesystemPhotoStore(root string) (*FilesystemPhotoStore, error) {
	if root == "" {
		return nil, errs.NewValueIsRequiredError("root")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create photo store root %q: %w", root, err)
	}

	return &FilesystemPhotoStore{root: root}, nil
}

// Save writes the photo content to disk and returns the stored path.
// The file name is prefixed with the tracking id and a timestamp so retries
// and re-deliveries never overwrite an earlier artifact.
func (s *FilesystemPhotoStore) Save(
	ctx context.Context,
	trackingID string,
	fileName string,
	content io.Reader,
) (string, error) {
	if trackingID == "" {
		return "", errs.NewValueIsRequiredError("trackingID")
	}
	if fileName == "" {
		return "", errs.NewValueIsRequiredError("fileName")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Nanoseconds keep retries within the same second from colliding.
	now := time.Now().UTC()
	storedName := fmt.Sprintf(
		"%s_%s%09d_%s",
		sanitize(trackingID),
		now.Format("20060102150405"),
		now.Nanosecond(),
		sanitize(filepath.Base(fileName)),
	)
	storedPath := filepath.Join(s.root, storedName)

	file, err := os.OpenFile(storedPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create photo file %q: %w", storedPath, err)
	}

	if _, err = io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(storedPath)
		return "", fmt.Errorf("write photo file %q: %w", storedPath, err)
	}

	if err = file.Close(); err != nil {
		_ = os.Remove(storedPath)
		return "", fmt.Errorf("close photo file %q: %w", storedPath, err)
	}

	return filepath.ToSlash(storedPath), nil
}

// Remove deletes a previously stored photo. Missing files are not an error:
// the compensation path may run after a partial save.
func (s *FilesystemPhotoStore) Remove(_ context.Context, path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("path")
	}

	if err := os.Remove(filepath.FromSlash(path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove photo file %q: %w", path, err)
	}

	return nil
}

// sanitize keeps stored names portable across filesystems.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}
