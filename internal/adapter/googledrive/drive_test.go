package googledrive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"google.golang.org/api/option"

	"github.com/driveview/backend/internal/adapter"
)

func newTestLister(t *testing.T, handler http.Handler) *DriveLister {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	l, err := NewDriveLister(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("NewDriveLister failed: %v", err)
	}
	return l
}

func TestListFiles_QueryContract(t *testing.T) {
	var gotQuery map[string]string
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"pageSize": r.URL.Query().Get("pageSize"),
			"orderBy":  r.URL.Query().Get("orderBy"),
			"fields":   r.URL.Query().Get("fields"),
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"files":[]}`)
	}))

	if _, err := l.ListFiles(context.Background()); err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}

	if gotQuery["pageSize"] != "50" {
		t.Errorf("pageSize = %q, want 50", gotQuery["pageSize"])
	}
	if gotQuery["orderBy"] != "modifiedTime desc" {
		t.Errorf("orderBy = %q, want 'modifiedTime desc'", gotQuery["orderBy"])
	}
	if gotQuery["fields"] != listFields {
		t.Errorf("fields = %q, want %q", gotQuery["fields"], listFields)
	}
}

func TestListFiles_MapsRecords(t *testing.T) {
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"files":[
			{"id":"f1","name":"Notes","mimeType":"application/vnd.google-apps.document","modifiedTime":"2026-08-01T12:00:00Z","webViewLink":"https://docs.google.com/d/f1"},
			{"id":"f2","name":"Photos","mimeType":"application/vnd.google-apps.folder","modifiedTime":"2026-07-31T08:30:00Z"}
		]}`)
	}))

	files, err := l.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d records, want 2", len(files))
	}

	want := adapter.FileRecord{
		ID:           "f1",
		Name:         "Notes",
		MIMEType:     "application/vnd.google-apps.document",
		ModifiedTime: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		WebViewLink:  "https://docs.google.com/d/f1",
	}
	if files[0] != want {
		t.Errorf("first record = %+v, want %+v", files[0], want)
	}
	if files[1].WebViewLink != "" {
		t.Errorf("second record webViewLink = %q, want empty", files[1].WebViewLink)
	}
}

func TestListFiles_EmptyDrive(t *testing.T) {
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"files":[]}`)
	}))

	files, err := l.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if files == nil || len(files) != 0 {
		t.Errorf("empty drive should yield an empty non-nil slice, got %#v", files)
	}
}

func TestListFiles_UnauthorizedMapsToSentinel(t *testing.T) {
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"code":401,"message":"Invalid Credentials"}}`)
	}))

	_, err := l.ListFiles(context.Background())
	if !errors.Is(err, adapter.ErrUnauthorized) {
		t.Fatalf("err = %v, want adapter.ErrUnauthorized", err)
	}
}

func TestListFiles_ServerFault(t *testing.T) {
	l := newTestLister(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := l.ListFiles(context.Background())
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if errors.Is(err, adapter.ErrUnauthorized) {
		t.Error("a 500 must not be reported as a credential problem")
	}
}

func TestProvider_RequiresToken(t *testing.T) {
	p := NewProvider()
	if _, err := p.GetLister(context.Background(), ""); err == nil {
		t.Fatal("empty access token should be rejected")
	}
}
