// Package filex reads local files for upload and sniffs their MIME type.
package filex

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// File is a fully loaded local file ready to be validated and uploaded.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// Read loads the file at path into memory and determines its content type.
//
// Detection first sniffs the leading bytes (http.DetectContentType) and falls
// back to the file extension for formats the sniffer reports as generic
// containers (docx is a zip archive, doc is octet-stream).
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ct := http.DetectContentType(data)
	if ct == "application/zip" || ct == "application/octet-stream" || strings.HasPrefix(ct, "text/plain") {
		if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
			ct = byExt
		}
	}
	// strip optional parameters like "; charset=utf-8"
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	return &File{
		Name:        filepath.Base(path),
		Size:        int64(len(data)),
		ContentType: ct,
		Data:        data,
	}, nil
}
