package adapter

import (
	"context"
	"time"
)

// MaxListSize is the page size requested from the storage provider. Only the
// first page is fetched; further pagination is a declared limitation of this
// application.
const MaxListSize = 50

// FileRecord is a read-only projection of a provider-side file. Records are
// created fresh on every listing request and never mutated.
type FileRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MIMEType     string    `json:"mimeType,omitempty"`
	ModifiedTime time.Time `json:"modifiedTime"`
	WebViewLink  string    `json:"webViewLink,omitempty"`
}

// Lister lists file metadata from a cloud storage service on behalf of a
// single authenticated user. This abstraction allows switching between
// different providers (e.g. Google Drive, an in-memory fake) without
// changing the handlers.
type Lister interface {
	// ListFiles returns up to MaxListSize records, ordered by most recently
	// modified first.
	ListFiles(ctx context.Context) ([]FileRecord, error)
}
