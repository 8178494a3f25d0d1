package copier

import (
	"io"
	"os"
	"path/filepath"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

// Copier places one file at a time. Filesystem errors are returned to
// the caller untouched; the batch driver treats them as fatal.
type Copier struct {
	mode   types.TransferMode
	dryRun bool
}

func New(mode types.TransferMode, dryRun bool) *Copier {
	return &Copier{mode: mode, dryRun: dryRun}
}

// Place copies or moves the task's source to its resolved destination,
// creating the destination directory tree on demand.
func (c *Copier) Place(task *types.PlaceTask) error {
	if c.dryRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(task.DestPath), 0755); err != nil {
		return err
	}

	if c.mode == types.TransferMove {
		return c.move(task.Source.Path, task.DestPath)
	}
	return c.copy(task.Source.Path, task.DestPath)
}

func (c *Copier) move(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	// Rename fails across devices; fall back to copy and remove.
	if err := c.copy(src, dest); err != nil {
		return err
	}
	return os.Remove(src)
}

func (c *Copier) copy(src, dest string) error {
	partPath := dest + ".part"
	if err := c.atomicCopy(src, partPath, dest); err != nil {
		os.Remove(partPath)
		return err
	}
	return nil
}

func (c *Copier) atomicCopy(src, partDest, finalDest string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(partDest)
	if err != nil {
		return err
	}

	_, err = io.Copy(dstFile, srcFile)
	if closeErr := dstFile.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	// Preserve modification time
	info, err := srcFile.Stat()
	if err == nil {
		os.Chtimes(partDest, info.ModTime(), info.ModTime())
	}

	return os.Rename(partDest, finalDest)
}
