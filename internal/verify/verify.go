// Package verify checks placed files against their source.
package verify

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

type Verifier struct {
	hashVerify bool
}

func New(hashVerify bool) *Verifier {
	return &Verifier{hashVerify: hashVerify}
}

// Verify confirms the destination exists with the source's size; with
// hash verification enabled it also compares sha256 digests. After a
// move the source is gone, so only the size check applies.
func (v *Verifier) Verify(task *types.PlaceTask, mode types.TransferMode) error {
	destInfo, err := os.Stat(task.DestPath)
	if err != nil {
		return fmt.Errorf("destination file not found: %w", err)
	}

	if destInfo.Size() != task.Source.Size {
		return fmt.Errorf("size mismatch: expected %d, got %d", task.Source.Size, destInfo.Size())
	}

	if !v.hashVerify || mode == types.TransferMove {
		return nil
	}

	srcHash, err := hashFile(task.Source.Path)
	if err != nil {
		return fmt.Errorf("failed to hash source: %w", err)
	}

	destHash, err := hashFile(task.DestPath)
	if err != nil {
		return fmt.Errorf("failed to hash destination: %w", err)
	}

	if srcHash != destHash {
		return fmt.Errorf("hash mismatch: src=%s, dest=%s", srcHash, destHash)
	}

	return nil
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
