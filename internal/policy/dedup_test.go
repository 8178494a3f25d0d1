package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

func TestDedupChecker_Disabled(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.jpg")
	dest := filepath.Join(tmpDir, "dest.jpg")
	os.WriteFile(src, []byte("same"), 0644)
	os.WriteFile(dest, []byte("same"), 0644)

	d := NewDedupChecker(false)
	isDup, err := d.IsDuplicate(types.FileEntry{Path: src, Size: 4}, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isDup {
		t.Error("disabled checker must never report duplicates")
	}
}

func TestDedupChecker_IdenticalContent(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.jpg")
	dest := filepath.Join(tmpDir, "dest.jpg")
	os.WriteFile(src, []byte("identical bytes"), 0644)
	os.WriteFile(dest, []byte("identical bytes"), 0644)

	d := NewDedupChecker(true)
	isDup, err := d.IsDuplicate(types.FileEntry{Path: src, Size: 15}, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isDup {
		t.Error("expected identical files to be duplicates")
	}
}

func TestDedupChecker_SameSizeDifferentContent(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.jpg")
	dest := filepath.Join(tmpDir, "dest.jpg")
	os.WriteFile(src, []byte("aaaa"), 0644)
	os.WriteFile(dest, []byte("bbbb"), 0644)

	d := NewDedupChecker(true)
	isDup, err := d.IsDuplicate(types.FileEntry{Path: src, Size: 4}, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isDup {
		t.Error("same size with different bytes is not a duplicate")
	}
}

func TestDedupChecker_MissingDestination(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.jpg")
	os.WriteFile(src, []byte("x"), 0644)

	d := NewDedupChecker(true)
	isDup, err := d.IsDuplicate(types.FileEntry{Path: src, Size: 1}, filepath.Join(tmpDir, "nope.jpg"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isDup {
		t.Error("missing destination cannot be a duplicate")
	}
}
