// Package files abstracts the file-storage service used for uploaded
// submission and artifact documents.
package files

import "context"

// Ref identifies a stored file and its public link.
type Ref struct {
	ID   string
	Link string
	MIME string
}

// Store is the file-storage contract consumed by the wizard engine.
type Store interface {
	Upload(ctx context.Context, data []byte, name, mime, dir string) (Ref, error)
	Download(ctx context.Context, id string) ([]byte, error)
}
