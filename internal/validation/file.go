package validation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// ValidateUpload checks an upload against the configured size cap.
// Type restrictions are deliberately absent: this service accepts arbitrary
// binary payloads.
func ValidateUpload(header *multipart.FileHeader, maxSize int64) error {
	if maxSize > 0 && header.Size > maxSize {
		return fmt.Errorf("file too large: maximum size is %d MB", maxSize>>20)
	}
	return nil
}

// SanitizeFilename strips any path components from a client-supplied filename
// so it is safe to use as a blob name.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	return name
}
