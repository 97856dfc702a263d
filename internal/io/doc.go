// Package ioutils provides file system helpers for the catalog tools.
//
// This package contains:
//   - Atomic file writing for the overlay catalog
//   - Filename sanitization for thumbnail names
//   - Cover thumbnail generation
package ioutils
