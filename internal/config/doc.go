// Package config provides configuration management for recordroom.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads records.json / record_details.json from the working dir
//	// 2 second delay between Discogs calls
//
// # Loading from File
//
//	settings, err := config.Load("recordroom.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// The Discogs token has no default; it must come from the config file or
// a command line flag.
package config
