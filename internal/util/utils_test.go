package util

import "testing"

func TestIsLanguageMatch(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		language string
		expected bool
	}{
		// Go
		{"Go file", "/path/to/file.go", "go", true},
		{"Go file uppercase", "/path/to/file.GO", "go", true},

		// Python
		{"Python file", "/path/to/file.py", "python", true},
		{"Python windows file", "/path/to/file.pyw", "python", true},

		// JavaScript variants
		{"JavaScript file", "/path/to/file.js", "javascript", true},
		{"JSX file", "/path/to/component.jsx", "javascript", true},
		{"MJS file", "/path/to/module.mjs", "javascript", true},

		// TypeScript variants
		{"TypeScript file", "/path/to/file.ts", "typescript", true},
		{"TSX file", "/path/to/component.tsx", "typescript", true},

		// Java
		{"Java file", "/path/to/Main.java", "java", true},

		// Negative cases
		{"Wrong language", "/path/to/file.py", "go", false},
		{"No extension", "/path/to/README", "go", false},
		{"Different extension", "/path/to/file.txt", "go", false},
		{"Unknown language", "/path/to/file.go", "cobol", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsLanguageMatch(tt.filePath, tt.language)
			if result != tt.expected {
				t.Errorf("IsLanguageMatch(%q, %q) = %v, want %v",
					tt.filePath, tt.language, result, tt.expected)
			}
		})
	}
}

func TestShouldSkipDirectory(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/repo/node_modules", true},
		{"/repo/.git", true},
		{"/repo/__pycache__", true},
		{"/repo/.hidden", true},
		{"/repo/src", false},
		{"/repo/internal", false},
	}

	for _, tt := range tests {
		if got := ShouldSkipDirectory(tt.path); got != tt.expected {
			t.Errorf("ShouldSkipDirectory(%q) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/repo/dist/app.min.js", true},
		{"/repo/api/service.pb.go", true},
		{"/repo/types_generated.go", true},
		{"/repo/node_modules/lib/index.js", true},
		{"/repo/src/main.go", false},
		{"/repo/app.js", false},
	}

	for _, tt := range tests {
		if got := ShouldSkipFile(tt.path); got != tt.expected {
			t.Errorf("ShouldSkipFile(%q) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}
