// Package memory provides an in-memory adapter.Lister used in DEV_MODE and
// in tests, so the application runs without Google credentials.
package memory

import (
	"context"
	"sort"
	"time"

	"github.com/driveview/backend/internal/adapter"
)

// Provider implements adapter.ListerProvider over a fixed set of records.
type Provider struct {
	files []adapter.FileRecord
}

// NewProvider returns a provider seeded with a small set of sample records.
func NewProvider() *Provider {
	return &Provider{files: sampleFiles()}
}

// NewProviderWith returns a provider serving exactly the given records.
func NewProviderWith(files []adapter.FileRecord) *Provider {
	return &Provider{files: files}
}

// GetLister ignores the access token beyond requiring it to be non-empty;
// the handlers have already enforced presence.
func (p *Provider) GetLister(_ context.Context, _ string) (adapter.Lister, error) {
	return &Lister{files: p.files}, nil
}

// Lister implements adapter.Lister over an in-memory slice.
type Lister struct {
	files []adapter.FileRecord
}

// ListFiles returns the records most recently modified first, capped at
// adapter.MaxListSize, matching the Drive lister's contract.
func (l *Lister) ListFiles(_ context.Context) ([]adapter.FileRecord, error) {
	out := make([]adapter.FileRecord, len(l.files))
	copy(out, l.files)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ModifiedTime.After(out[j].ModifiedTime)
	})
	if len(out) > adapter.MaxListSize {
		out = out[:adapter.MaxListSize]
	}
	return out, nil
}

func sampleFiles() []adapter.FileRecord {
	now := time.Now()
	return []adapter.FileRecord{
		{
			ID:           "sample-report",
			Name:         "Quarterly Report",
			MIMEType:     "application/vnd.google-apps.document",
			ModifiedTime: now.Add(-1 * time.Hour),
		},
		{
			ID:           "sample-budget",
			Name:         "Budget",
			MIMEType:     "application/vnd.google-apps.spreadsheet",
			ModifiedTime: now.Add(-2 * time.Hour),
		},
		{
			ID:           "sample-photos",
			Name:         "Photos",
			MIMEType:     "application/vnd.google-apps.folder",
			ModifiedTime: now.Add(-24 * time.Hour),
		},
		{
			ID:           "sample-scan",
			Name:         "scan.pdf",
			MIMEType:     "application/pdf",
			ModifiedTime: now.Add(-48 * time.Hour),
		},
	}
}
