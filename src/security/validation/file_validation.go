package validation

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/username/punchlog/backend/src/logger"
	"github.com/username/punchlog/backend/src/utils"
)

// AllowedLogExtensions lists the attendance log file extensions, matched case-insensitively.
var AllowedLogExtensions = []string{".csv", ".log"}

// ErrBinaryContent is returned when a log file does not look like text.
var ErrBinaryContent = errors.New("file content is not plain text")

// IsAttendanceLogFile checks the file name against AllowedLogExtensions.
func IsAttendanceLogFile(name string) bool {
	return utils.HasExtension(name, AllowedLogExtensions...)
}

// ValidateFileContentByMagicBytes checks the actual file content signature (magic bytes).
// It returns the detected content type and an error if validation fails.
// The read position is reset to the start so parsers can read the whole file.
func ValidateFileContentByMagicBytes(file io.ReadSeeker) (string, error) {
	if file == nil {
		return "", fmt.Errorf("file is nil")
	}

	buffer := make([]byte, 512) // Read first 512 bytes for MIME detection
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("failed to read file for content type checking: %w", err)
	}

	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return "", fmt.Errorf("failed to reset file read pointer: %w", seekErr)
	}

	if n == 0 {
		// Empty files are left to the parsers, which report them as empty input.
		return "text/plain", nil
	}

	detectedContentType := http.DetectContentType(buffer[:n])
	detectedContentType = strings.ToLower(strings.Split(detectedContentType, ";")[0])

	allowedDetectedTypes := map[string]bool{
		"text/plain":      true,
		"text/csv":        true,
		"application/csv": true,
	}

	if !allowedDetectedTypes[detectedContentType] {
		logger.L.Warn("Disallowed detected file content type (magic bytes)", "detectedContentType", detectedContentType)
		return detectedContentType, fmt.Errorf("%w: detected '%s'", ErrBinaryContent, detectedContentType)
	}

	logger.L.Debug("File content type (magic bytes) validated", "detectedContentType", detectedContentType)
	return detectedContentType, nil
}
