package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

// ExceptionLog collects classification and metadata probe failures in a
// run-stamped plaintext file under the destination root. The file is
// created lazily: a clean run leaves nothing behind.
type ExceptionLog struct {
	mu    sync.Mutex
	path  string
	file  *os.File
	count int
}

func NewExceptionLog(destRoot string, start time.Time) *ExceptionLog {
	name := fmt.Sprintf("exception_log %s.txt", start.Format(types.ExceptionStampLayout))
	return &ExceptionLog{path: filepath.Join(destRoot, name)}
}

// Log appends one record for the given file. Write failures are
// swallowed: the exception log must never take the batch down.
func (e *ExceptionLog) Log(filePath string, cause error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.count++

	if e.file == nil {
		f, err := os.OpenFile(e.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return
		}
		e.file = f
	}

	fmt.Fprintf(e.file, "\nFilename: %s\n%v\n\n", filePath, cause)
}

// Count reports how many exceptions were logged this run.
func (e *ExceptionLog) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.count
}

// Path returns the log file location, whether or not it exists yet.
func (e *ExceptionLog) Path() string {
	return e.path
}

func (e *ExceptionLog) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.file != nil {
		return e.file.Close()
	}
	return nil
}
