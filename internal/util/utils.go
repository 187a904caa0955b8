package util

import (
	"path/filepath"
	"strings"
)

// languageExtensions maps a language name to the file extensions the
// analyzer accepts for it.
var languageExtensions = map[string][]string{
	"go":         {".go"},
	"python":     {".py", ".pyw"},
	"javascript": {".js", ".jsx", ".mjs"},
	"typescript": {".ts", ".tsx"},
	"java":       {".java"},
}

// IsLanguageMatch reports whether the file belongs to the given language.
func IsLanguageMatch(filePath string, language string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, candidate := range languageExtensions[strings.ToLower(language)] {
		if ext == candidate {
			return true
		}
	}
	return false
}

// ShouldSkipDirectory checks if a directory should be skipped during traversal
func ShouldSkipDirectory(path string) bool {
	skipDirs := []string{
		".git", "node_modules", ".vscode", ".idea", "vendor", "target",
		"build", "dist", "__pycache__", ".pytest_cache", "coverage",
		"site-packages", ".next", ".cache", "tmp", "temp",
	}

	baseName := filepath.Base(path)
	for _, skipDir := range skipDirs {
		if baseName == skipDir {
			return true
		}
	}

	// Skip hidden directories (starting with .)
	if len(baseName) > 0 && baseName[0] == '.' && baseName != "." && baseName != ".." {
		return true
	}

	return false
}

// ShouldSkipFile checks if a file should be skipped when scanning a target
// directory: generated, minified and test-fixture style artifacts.
func ShouldSkipFile(filePath string) bool {
	baseName := strings.ToLower(filepath.Base(filePath))

	skipSuffixes := []string{
		".min.js",
		".pb.go",
		"_generated.go",
		".d.ts",
	}
	for _, suffix := range skipSuffixes {
		if strings.HasSuffix(baseName, suffix) {
			return true
		}
	}

	skipPathPatterns := []string{
		"/node_modules/", "/vendor/", "/target/", "/build/", "/dist/",
		"/__pycache__/", "/.git/",
	}
	normalizedPath := filepath.ToSlash(filepath.Clean(filePath))
	for _, pattern := range skipPathPatterns {
		if strings.Contains(normalizedPath, pattern) {
			return true
		}
	}

	return false
}
