package ports

import (
	"context"
	"io"
)

// PhotoStore defines the contract for persisting proof of delivery photos.
// Implementations return a stable relative path that is recorded on the proof.
type PhotoStore interface {
	// Save stores the photo content under a name derived from the tracking id
	// and the uploaded file name, and returns the relative path of the artifact.
	Save(ctx context.Context, trackingID string, fileName string, content io.Reader) (string, error)

	// Remove deletes a previously saved photo. Used to compensate when the
	// delivery registration fails after the photo was written.
	Remove(ctx context.Context, path string) error
}
