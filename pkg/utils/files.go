package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions is the set of file extensions treated as Java sources.
var DefaultExtensions = []string{".java"}

// HasAnyExtension checks if a file has one of the given extensions.
// Comparison is case-insensitive, so Foo.JAVA matches ".java".
func HasAnyExtension(filename string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, candidate := range extensions {
		if ext == strings.ToLower(candidate) {
			return true
		}
	}
	return false
}

// FindSourceFiles recursively finds all files with the given extensions in a directory
func FindSourceFiles(root string, extensions []string) ([]string, error) {
	var sourceFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip build output and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "target" || name == "build" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && HasAnyExtension(filepath.Base(path), extensions) {
			sourceFiles = append(sourceFiles, path)
		}

		return nil
	})

	return sourceFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
