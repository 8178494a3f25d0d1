package policy

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

// DedupChecker detects whether a colliding destination already holds
// the same bytes as the source, so the copy can be skipped entirely.
type DedupChecker struct {
	enabled bool
}

func NewDedupChecker(enabled bool) *DedupChecker {
	return &DedupChecker{enabled: enabled}
}

func (d *DedupChecker) IsDuplicate(src types.FileEntry, destPath string) (bool, error) {
	if !d.enabled {
		return false, nil
	}

	destInfo, err := os.Stat(destPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// Size mismatch rules out identity without hashing.
	if destInfo.Size() != src.Size {
		return false, nil
	}

	srcHash, err := hashFile(src.Path)
	if err != nil {
		return false, err
	}

	destHash, err := hashFile(destPath)
	if err != nil {
		return false, err
	}

	return srcHash == destHash, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
