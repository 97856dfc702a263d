package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Settings holds all configuration options.
type Settings struct {
	// Catalog files. Each accepts a local path or an http(s) URL.
	BaseCatalogPath    string `json:"base_catalog_path"`
	OverlayCatalogPath string `json:"overlay_catalog_path"`

	// Discogs API access
	DiscogsToken string `json:"discogs_token"`
	UserAgent    string `json:"user_agent"`

	// RequestDelaySeconds is the fixed wait between successive Discogs
	// calls. Discogs allows 60 requests per minute for authenticated
	// clients; the default stays well under that.
	RequestDelaySeconds float64 `json:"request_delay_seconds"`

	// Cover thumbnail settings
	SaveCoverThumbnails bool   `json:"save_cover_thumbnails"`
	ThumbnailDir        string `json:"thumbnail_dir"`
	ThumbnailMaxSize    int    `json:"thumbnail_max_size"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseCatalogPath:    "records.json",
		OverlayCatalogPath: "record_details.json",

		UserAgent:           "RecordRoom/1.0 +https://github.com/jennahya/recordroom",
		RequestDelaySeconds: 2.0,

		SaveCoverThumbnails: false,
		ThumbnailDir:        filepath.Join("album covers", "thumbs"),
		ThumbnailMaxSize:    500,
	}
}

// Load reads settings from a JSON file. A missing file is not an error;
// defaults are returned so first runs work without any setup.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RequestDelay returns the inter-call delay as a duration.
func (s *Settings) RequestDelay() time.Duration {
	return time.Duration(s.RequestDelaySeconds * float64(time.Second))
}
