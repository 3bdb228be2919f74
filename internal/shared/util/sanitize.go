package util

import (
	"errors"
	"strings"
)

var errInvalidFileName = errors.New("invalid file name")

var pathSeparators = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFileName flattens path separators and rejects traversal patterns
// so uploaded names are safe to use as storage keys.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errInvalidFileName
	}
	s := pathSeparators.Replace(strings.TrimSpace(name))
	if s == "" {
		return "", errInvalidFileName
	}
	return s, nil
}
