package metadata

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifLayout is the native EXIF datetime representation.
const exifLayout = "2006:01:02 15:04:05"

var errNoCaptureTime = errors.New("no capture time found in EXIF")

type EXIFExtractor struct{}

func NewEXIFExtractor() *EXIFExtractor {
	return &EXIFExtractor{}
}

// Extract reads the original capture time from the file's EXIF
// container. An all-zero date is a writer sentinel for "unset" and is
// treated as absent.
func (e *EXIFExtractor) Extract(path string) (time.Time, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, "", err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, "", errors.New("no EXIF data: " + err.Error())
	}

	if t, ok := dateTag(x, exif.DateTimeOriginal); ok {
		return t, "EXIF:DateTimeOriginal", nil
	}
	if t, ok := dateTag(x, exif.DateTimeDigitized); ok {
		return t, "EXIF:DateTimeDigitized", nil
	}

	return time.Time{}, "", errNoCaptureTime
}

func dateTag(x *exif.Exif, name exif.FieldName) (time.Time, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return time.Time{}, false
	}

	val, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false
	}

	val = strings.TrimSpace(strings.Trim(val, "\x00"))
	if val == "" || strings.HasPrefix(val, "0000") {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation(exifLayout, val, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
