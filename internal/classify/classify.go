// Package classify infers the media kind of a file, either from its
// extension (fast) or from its content (deep).
package classify

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"os"
	"strings"

	mp4 "github.com/abema/go-mp4"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

// extMIME supplements the stdlib MIME table with camera and video
// formats it does not know about.
var extMIME = map[string]string{
	"heic": "image/heic",
	"heif": "image/heif",
	"tiff": "image/tiff",
	"tif":  "image/tiff",
	"bmp":  "image/bmp",
	"arw":  "image/x-sony-arw",
	"cr2":  "image/x-canon-cr2",
	"nef":  "image/x-nikon-nef",
	"dng":  "image/x-adobe-dng",
	"mp4":  "video/mp4",
	"m4v":  "video/mp4",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",
	"mts":  "video/mp2t",
	"m2ts": "video/mp2t",
	"3gp":  "video/3gpp",
	"wmv":  "video/x-ms-wmv",
	"flv":  "video/x-flv",
	"mxf":  "video/mxf",
}

// ISO-BMFF major brands that carry still images rather than movies.
var imageBrands = map[string]bool{
	"heic": true,
	"heix": true,
	"mif1": true,
	"avif": true,
}

type Classifier struct {
	mode types.ParseMode
}

func New(mode types.ParseMode) *Classifier {
	return &Classifier{mode: mode}
}

// Classify returns the media kind of the file. In deep mode a non-nil
// error reports a probe failure that the caller should log; the kind is
// still KindUnknown in that case and the batch continues.
func (c *Classifier) Classify(entry types.FileEntry) (types.MediaKind, error) {
	if c.mode == types.ParseDeep {
		return c.probe(entry)
	}
	return classifyByExtension(entry.Extension), nil
}

// classifyByExtension mirrors a MIME-type guess: the extension is mapped
// to a type string and matched on the "image"/"video" substring.
func classifyByExtension(ext string) types.MediaKind {
	mt := extMIME[ext]
	if mt == "" {
		mt = mime.TypeByExtension("." + ext)
	}
	switch {
	case strings.Contains(mt, "image"):
		return types.KindImage
	case strings.Contains(mt, "video"):
		return types.KindVideo
	default:
		return types.KindUnknown
	}
}

func (c *Classifier) probe(entry types.FileEntry) (types.MediaKind, error) {
	f, err := os.Open(entry.Path)
	if err != nil {
		return types.KindUnknown, err
	}
	defer f.Close()

	// Raster images first: jpeg/png/gif headers are cheap to check.
	if _, _, err := image.DecodeConfig(f); err == nil {
		return types.KindImage, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return types.KindUnknown, err
	}

	// Magic bytes must be checked before the BMFF probe: go-mp4 skips
	// boxes it does not recognize and reports a clean parse for
	// arbitrary non-BMFF input, so probing first would swallow every
	// AVI/Matroska/TIFF file as a trackless container.
	header := make([]byte, 12)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return types.KindUnknown, err
	}
	if kind, ok := sniffMagic(header[:n]); ok {
		return kind, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return types.KindUnknown, err
	}

	if info, err := mp4.Probe(f); err == nil {
		if imageBrands[strings.TrimSpace(string(info.MajorBrand[:]))] {
			return types.KindImage, nil
		}
		// A container with no identifiable track is not media.
		if len(info.Tracks) == 0 {
			return types.KindUnknown, nil
		}
		return types.KindVideo, nil
	}

	return types.KindUnknown, nil
}

// sniffMagic identifies the container formats neither the stdlib image
// decoders nor go-mp4 cover. The second return reports whether the
// header matched at all.
func sniffMagic(header []byte) (types.MediaKind, bool) {
	switch {
	case len(header) >= 12 && bytes.HasPrefix(header, []byte("RIFF")):
		switch string(header[8:12]) {
		case "AVI ":
			return types.KindVideo, true
		case "WEBP":
			return types.KindImage, true
		}
	case bytes.HasPrefix(header, []byte{0x1A, 0x45, 0xDF, 0xA3}):
		// Matroska/WebM EBML header.
		return types.KindVideo, true
	case bytes.HasPrefix(header, []byte("FLV\x01")):
		return types.KindVideo, true
	case bytes.HasPrefix(header, []byte("II\x2A\x00")),
		bytes.HasPrefix(header, []byte("MM\x00\x2A")):
		// TIFF, either byte order; also the envelope of the RAW
		// formats (ARW, CR2, NEF, DNG).
		return types.KindImage, true
	}

	return types.KindUnknown, false
}
