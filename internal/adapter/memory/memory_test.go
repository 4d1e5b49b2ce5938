package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/driveview/backend/internal/adapter"
)

func TestListFiles_NewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p := NewProviderWith([]adapter.FileRecord{
		{ID: "old", ModifiedTime: base.Add(-2 * time.Hour)},
		{ID: "new", ModifiedTime: base},
		{ID: "mid", ModifiedTime: base.Add(-time.Hour)},
	})

	l, err := p.GetLister(context.Background(), "token")
	if err != nil {
		t.Fatalf("GetLister failed: %v", err)
	}
	files, err := l.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}

	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if files[i].ID != id {
			t.Errorf("files[%d].ID = %q, want %q", i, files[i].ID, id)
		}
	}
}

func TestListFiles_CapsAtMaxListSize(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var records []adapter.FileRecord
	for i := 0; i < adapter.MaxListSize+10; i++ {
		records = append(records, adapter.FileRecord{
			ID:           fmt.Sprintf("f%03d", i),
			ModifiedTime: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	p := NewProviderWith(records)

	l, _ := p.GetLister(context.Background(), "token")
	files, err := l.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(files) != adapter.MaxListSize {
		t.Fatalf("got %d files, want %d", len(files), adapter.MaxListSize)
	}
	// The cap keeps the newest records.
	if files[0].ID != "f000" {
		t.Errorf("first record = %q, want f000", files[0].ID)
	}
}

func TestListFiles_DoesNotMutateSeed(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seed := []adapter.FileRecord{
		{ID: "a", ModifiedTime: base.Add(-time.Hour)},
		{ID: "b", ModifiedTime: base},
	}
	p := NewProviderWith(seed)

	l, _ := p.GetLister(context.Background(), "token")
	if _, err := l.ListFiles(context.Background()); err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if seed[0].ID != "a" || seed[1].ID != "b" {
		t.Error("listing reordered the seed slice")
	}
}

func TestNewProvider_SeededSamples(t *testing.T) {
	p := NewProvider()
	l, _ := p.GetLister(context.Background(), "token")
	files, err := l.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("dev provider should serve sample records")
	}
	for i := 1; i < len(files); i++ {
		if files[i].ModifiedTime.After(files[i-1].ModifiedTime) {
			t.Errorf("records out of order at %d: %v after %v", i, files[i].ModifiedTime, files[i-1].ModifiedTime)
		}
	}
}
