// Package types defines core data structures used across MediaSort modules.
package types

import (
	"time"
)

// MediaKind is the classified type of a scanned file.
type MediaKind string

const (
	KindImage   MediaKind = "image"
	KindVideo   MediaKind = "video"
	KindUnknown MediaKind = "unknown"
)

// ParseMode selects how files are classified.
type ParseMode string

const (
	// ParseFast guesses from the file extension only. No content is read.
	ParseFast ParseMode = "fast"
	// ParseDeep probes file content and container structure.
	ParseDeep ParseMode = "deep"
)

// TransferMode selects how files are placed into the destination tree.
type TransferMode string

const (
	TransferCopy TransferMode = "copy"
	TransferMove TransferMode = "move"
)

// TimestampLayout is the canonical filename timestamp format,
// e.g. "10-01-2013 [09.17.50]".
const TimestampLayout = "01-02-2006 [15.04.05]"

// ExceptionStampLayout names the run exception log,
// e.g. "exception_log Oct-01-2013 [09.17.50].txt".
const ExceptionStampLayout = "Jan-02-2006 [15.04.05]"

// FileEntry represents a scanned file.
type FileEntry struct {
	// Path is the absolute path to the source file.
	Path string
	// Name is the base filename.
	Name string
	// Size is the file size in bytes.
	Size int64
	// ModTime is the file modification time.
	ModTime time.Time
	// Extension is the lowercase file extension without dot (e.g., "jpg", "mp4").
	Extension string
}

// ResolvedTime is a capture/modification timestamp with its origin.
type ResolvedTime struct {
	// Time is truncated to whole seconds.
	Time time.Time
	// Source indicates where the timestamp came from
	// (e.g., "EXIF:DateTimeOriginal", "XML:CreationDate", "ModTime").
	Source string
}

// Stamp renders the timestamp in the canonical filename format.
func (r ResolvedTime) Stamp() string {
	return r.Time.Format(TimestampLayout)
}

// PlaceTask represents a planned file placement.
type PlaceTask struct {
	// Source is the source FileEntry.
	Source FileEntry
	// Kind is the classified media kind.
	Kind MediaKind
	// Time is the resolved timestamp driving the destination layout.
	Time ResolvedTime
	// DestDir is the destination month directory
	// (e.g., "DEST/images/2013/october").
	DestDir string
	// DestPath is the full destination file path.
	DestPath string
	// Action indicates what happened to the file.
	Action PlaceAction
	// Error contains an error message if placement failed.
	Error string
}

// PlaceAction represents the action taken for a file.
type PlaceAction string

const (
	ActionPlaced  PlaceAction = "placed"
	ActionRenamed PlaceAction = "renamed"
	ActionSkipped PlaceAction = "skipped"
	ActionFailed  PlaceAction = "failed"
)

// RunSummary contains statistics for a completed run.
type RunSummary struct {
	TotalFiles   int           `json:"total_files"`
	TotalImages  int           `json:"total_images"`
	TotalVideos  int           `json:"total_videos"`
	TotalUnknown int           `json:"total_unknown"`
	Renamed      int           `json:"renamed"`
	Skipped      int           `json:"skipped"`
	Exceptions   int           `json:"exceptions"`
	BytesPlaced  int64         `json:"bytes_placed"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Duration     time.Duration `json:"duration"`
}

// ConfigPreset represents a saved configuration preset.
type ConfigPreset struct {
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Source            string       `json:"source,omitempty"`
	Dest              string       `json:"dest,omitempty"`
	ImageDirName      string       `json:"image_dir_name"`
	VideoDirName      string       `json:"video_dir_name"`
	UnknownDirName    string       `json:"unknown_dir_name"`
	ParseMode         ParseMode    `json:"parse_mode"`
	TransferMode      TransferMode `json:"transfer_mode"`
	Recursive         bool         `json:"recursive"`
	IncludeExtensions []string     `json:"include_extensions,omitempty"`
	SkipIdentical     bool         `json:"skip_identical"`
	HashVerify        bool         `json:"hash_verify"`
	CreatedAt         time.Time    `json:"created_at"`
}
