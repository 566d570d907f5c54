package language

import (
	"path/filepath"
	"strings"
)

var extLanguage = map[string]string{
	".c":    "c",
	".h":    "c",
	".cc":   "cpp",
	".cpp":  "cpp",
	".cxx":  "cpp",
	".hh":   "cpp",
	".hpp":  "cpp",
	".cs":   "csharp",
	".go":   "go",
	".java": "java",
	".js":   "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".jsx":  "javascriptreact",
	".py":   "python",
	".rb":   "ruby",
	".rs":   "rust",
	".ts":   "typescript",
	".tsx":  "typescriptreact",
}

// Detect returns the language id for a file path, or "" when the extension
// is not recognized.
func Detect(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	return extLanguage[ext]
}
