package metadata

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// XMLExtractor reads Sony-style sidecar metadata (<base>M01.XML) that
// camcorders write next to their clips.
type XMLExtractor struct{}

func NewXMLExtractor() *XMLExtractor {
	return &XMLExtractor{}
}

type nonRealTimeMeta struct {
	XMLName      xml.Name `xml:"NonRealTimeMeta"`
	CreationDate struct {
		Value string `xml:"value,attr"`
	} `xml:"CreationDate"`
}

func (e *XMLExtractor) Extract(videoPath string) (time.Time, string, error) {
	xmlPath := e.findXMLPath(videoPath)
	if xmlPath == "" {
		return time.Time{}, "", errors.New("XML metadata file not found")
	}

	data, err := os.ReadFile(xmlPath)
	if err != nil {
		return time.Time{}, "", errors.New("failed to read XML: " + err.Error())
	}

	var meta nonRealTimeMeta
	if err := xml.Unmarshal(data, &meta); err != nil {
		return time.Time{}, "", errors.New("failed to parse XML: " + err.Error())
	}

	if meta.CreationDate.Value == "" {
		return time.Time{}, "", errors.New("CreationDate not found in XML")
	}

	t, err := time.Parse(time.RFC3339, meta.CreationDate.Value)
	if err != nil {
		return time.Time{}, "", errors.New("invalid date format: " + err.Error())
	}

	return t, "XML:CreationDate", nil
}

func (e *XMLExtractor) findXMLPath(videoPath string) string {
	dir := filepath.Dir(videoPath)
	basename := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	for _, suffix := range []string{"M01.XML", "M01.xml"} {
		xmlPath := filepath.Join(dir, basename+suffix)
		if _, err := os.Stat(xmlPath); err == nil {
			return xmlPath
		}
	}

	return ""
}
