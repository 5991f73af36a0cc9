package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

func EnsureDirectory(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path cannot be empty")
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path for %s: %w", dirPath, err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", absPath, err)
	}

	return nil
}

// TruncateString shortens s to at most maxLength runes, marking the cut with "...".
func TruncateString(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	if maxLength <= 3 {
		return string(runes[:maxLength])
	}

	return string(runes[:maxLength-3]) + "..."
}
