package organizer

import "github.com/On-Jun9/MediaSort/pkg/types"

// ProgressCallback receives one update per processed file and a final
// summary update when the run completes. Invocation is synchronous: a
// slow callback slows the batch.
type ProgressCallback func(update ProgressUpdate)

type ProgressUpdate struct {
	Type     string            `json:"type"`
	Message  string            `json:"message,omitempty"`
	Percent  string            `json:"percent,omitempty"`
	Current  int               `json:"current,omitempty"`
	Total    int               `json:"total,omitempty"`
	Filename string            `json:"filename,omitempty"`
	Kind     types.MediaKind   `json:"kind,omitempty"`
	Action   types.PlaceAction `json:"action,omitempty"`
	Summary  *types.RunSummary `json:"summary,omitempty"`
	Error    string            `json:"error,omitempty"`
}
