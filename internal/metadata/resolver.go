// Package metadata resolves the canonical timestamp of a media file:
// embedded capture metadata when present, filesystem modification time
// otherwise.
package metadata

import (
	"time"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

type Resolver struct {
	exif *EXIFExtractor
	xml  *XMLExtractor
}

func NewResolver() *Resolver {
	return &Resolver{
		exif: NewEXIFExtractor(),
		xml:  NewXMLExtractor(),
	}
}

// Resolve returns the timestamp that drives placement. Metadata read or
// parse failures fall through silently to the modification time; Resolve
// itself never fails.
func (r *Resolver) Resolve(entry types.FileEntry, kind types.MediaKind) types.ResolvedTime {
	if kind == types.KindVideo {
		if t, source, err := r.xml.Extract(entry.Path); err == nil {
			return types.ResolvedTime{Time: t.Truncate(time.Second), Source: source}
		}
	}

	if t, source, err := r.exif.Extract(entry.Path); err == nil {
		return types.ResolvedTime{Time: t.Truncate(time.Second), Source: source}
	}

	return types.ResolvedTime{
		Time:   entry.ModTime.Truncate(time.Second),
		Source: "ModTime",
	}
}
