package policy

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

// counterPattern matches a trailing "(n)" marker on a filename stem.
var counterPattern = regexp.MustCompile(`\((\d+)\)$`)

// ConflictResolver appends a numeric counter when the planned
// destination already exists. Existing content is never overwritten.
type ConflictResolver struct{}

func NewConflictResolver() *ConflictResolver {
	return &ConflictResolver{}
}

type Resolution struct {
	Action   types.PlaceAction
	DestPath string
}

// Resolve rescans the target month directory on every collision rather
// than keeping an in-memory counter. Processing is sequential, so the
// rescan cannot race; a concurrent caller would have to replace this
// with a per-directory counter cache.
func (c *ConflictResolver) Resolve(task *types.PlaceTask) (Resolution, error) {
	if _, err := os.Stat(task.DestPath); os.IsNotExist(err) {
		return Resolution{Action: types.ActionPlaced, DestPath: task.DestPath}, nil
	}

	counter, err := nextCounter(task.DestDir)
	if err != nil {
		return Resolution{}, err
	}

	ext := filepath.Ext(task.DestPath)
	stem := strings.TrimSuffix(filepath.Base(task.DestPath), ext)
	renamed := filepath.Join(task.DestDir, fmt.Sprintf("%s(%d)%s", stem, counter, ext))

	return Resolution{Action: types.ActionRenamed, DestPath: renamed}, nil
}

// nextCounter walks the directory listing in reverse lexicographic
// order and returns the highest trailing counter found plus one, or 1
// when no name carries a counter. Gaps are never filled: (1) and (3)
// yield (4).
func nextCounter(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	highest := 0
	for _, name := range names {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		m := counterPattern.FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return highest + 1, nil
}
