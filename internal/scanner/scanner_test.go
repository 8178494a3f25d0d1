package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	testFiles := []struct {
		name    string
		content string
	}{
		{"photo1.jpg", "fake jpg"},
		{"photo2.JPEG", "fake jpeg"},
		{"video1.mp4", "fake mp4"},
		{"document.pdf", "still scanned"},
		{"subdir/photo3.heic", "nested photo"},
	}

	for _, tf := range testFiles {
		path := filepath.Join(tmpDir, tf.name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(tf.content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	s := New(nil, true)
	entries, err := s.Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(entries) != 5 {
		t.Errorf("expected 5 files, got %d", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if entries[i-1].Path >= entries[i].Path {
			t.Errorf("entries not sorted: %s before %s", entries[i-1].Path, entries[i].Path)
		}
	}
}

func TestScanner_Scan_ExtensionFilter(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"a.jpg", "b.mp4", "c.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	s := New([]string{"jpg", "mp4"}, true)
	entries, err := s.Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(entries) != 2 {
		t.Errorf("expected 2 files, got %d", len(entries))
	}
}

func TestScanner_Scan_NonRecursive(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmpDir, "top.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "sub", "nested.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(nil, false)
	entries, err := s.Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 top-level file, got %d", len(entries))
	}
	if entries[0].Name != "top.jpg" {
		t.Errorf("unexpected entry: %s", entries[0].Name)
	}
}

func TestScanner_Scan_MissingRoot(t *testing.T) {
	s := New(nil, true)
	if _, err := s.Scan(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("expected error for missing root")
	}
}
