package ioutils

import (
	"bytes"
	"os"
	"regexp"
	"strings"

	"github.com/natefinch/atomic"
)

// WriteFileAtomic writes data to path via a temp file and rename.
//
// The overlay catalog is rewritten whole at the end of every enrichment
// run; writing it atomically guarantees a crash mid-write never corrupts
// the previously persisted entries.
func WriteFileAtomic(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	multiWhitespace  = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in
// file names, so record IDs and titles can be used as thumbnail names.
//
//	SanitizeFileName("Trane: Live/1961") // "Trane_ Live_1961"
func SanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = multiWhitespace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
