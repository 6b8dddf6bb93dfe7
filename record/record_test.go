package record

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppendKeepsMostRecent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "records.txt"), 10)
	for i := 0; i < 12; i++ {
		if err := s.Append(Summary{BlueLost: i, RedLost: 12 - i}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 records, got %d", len(got))
	}
	if got[0].BlueLost != 2 || got[9].BlueLost != 11 {
		t.Fatalf("expected records 2..11, got %v .. %v", got[0], got[9])
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "none.txt"), 0)
	got, err := s.Load()
	if err != nil || got != nil {
		t.Fatalf("expected empty, got %v %v", got, err)
	}
	if s.Keep != DefaultKeep {
		t.Fatalf("expected default keep, got %d", s.Keep)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	if err := os.WriteFile(path, []byte("1 2\ngarbage\n\n3 x\n4 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := NewStore(path, 10).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != (Summary{BlueLost: 4, RedLost: 0}) {
		t.Fatalf("unexpected records %v", got)
	}
}

func TestFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	if err := NewStore(path, 10).Append(Summary{BlueLost: 3, RedLost: 5}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "3 5\n" {
		t.Fatalf("unexpected file contents %q", data)
	}
}
