package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

type Scanner struct {
	includeExt map[string]bool
	recursive  bool
}

// New creates a scanner. An empty extension list admits every file.
func New(extensions []string, recursive bool) *Scanner {
	var extMap map[string]bool
	if len(extensions) > 0 {
		extMap = make(map[string]bool)
		for _, ext := range extensions {
			extMap[strings.TrimPrefix(strings.ToLower(ext), ".")] = true
		}
	}
	return &Scanner{includeExt: extMap, recursive: recursive}
}

// Scan enumerates regular files under root, sorted by path so a run
// processes files in a deterministic order.
func (s *Scanner) Scan(root string) ([]types.FileEntry, error) {
	var entries []types.FileEntry

	add := func(path string, info os.FileInfo) {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if s.includeExt != nil && !s.includeExt[ext] {
			return
		}
		entries = append(entries, types.FileEntry{
			Path:      path,
			Name:      info.Name(),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
			Extension: ext,
		})
	}

	if !s.recursive {
		dirEntries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, d := range dirEntries {
			if !d.Type().IsRegular() {
				continue
			}
			info, err := d.Info()
			if err != nil {
				continue
			}
			add(filepath.Join(root, d.Name()), info)
		}
		sortEntries(entries)
		return entries, nil
	}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		add(path, info)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortEntries(entries)
	return entries, nil
}

func sortEntries(entries []types.FileEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
}
