package googledrive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/driveview/backend/internal/adapter"
)

// listFields limits the response to what the UI renders.
const listFields = "files(id, name, mimeType, modifiedTime, webViewLink)"

// DriveLister implements adapter.Lister for Google Drive.
type DriveLister struct {
	service *drive.Service
}

// NewDriveLister creates a Lister over Drive v3. The token source carried in
// opts (or an explicit option.WithHTTPClient) must already be authorized for
// drive.readonly.
func NewDriveLister(ctx context.Context, opts ...option.ClientOption) (*DriveLister, error) {
	srv, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Drive client: %v", err)
	}
	return &DriveLister{service: srv}, nil
}

// ListFiles fetches the first page of the user's files, most recently
// modified first.
func (d *DriveLister) ListFiles(ctx context.Context) ([]adapter.FileRecord, error) {
	r, err := d.service.Files.List().
		PageSize(adapter.MaxListSize).
		OrderBy("modifiedTime desc").
		Fields(googleapi.Field(listFields)).
		Context(ctx).
		Do()
	if err != nil {
		if isUnauthorized(err) {
			return nil, adapter.ErrUnauthorized
		}
		return nil, fmt.Errorf("unable to list files: %v", err)
	}

	files := []adapter.FileRecord{}
	for _, f := range r.Files {
		modTime, _ := time.Parse(time.RFC3339, f.ModifiedTime)
		files = append(files, adapter.FileRecord{
			ID:           f.Id,
			Name:         f.Name,
			MIMEType:     f.MimeType,
			ModifiedTime: modTime,
			WebViewLink:  f.WebViewLink,
		})
	}
	return files, nil
}

func isUnauthorized(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code == 401
	}
	return false
}
