package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.BaseCatalogPath != "records.json" {
		t.Errorf("BaseCatalogPath = %q", settings.BaseCatalogPath)
	}
	if settings.RequestDelay() != 2*time.Second {
		t.Errorf("RequestDelay() = %v, want 2s", settings.RequestDelay())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "recordroom.json")

	settings := DefaultSettings()
	settings.DiscogsToken = "abc123"
	settings.RequestDelaySeconds = 0.5
	settings.SaveCoverThumbnails = true

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DiscogsToken != "abc123" {
		t.Errorf("DiscogsToken = %q", loaded.DiscogsToken)
	}
	if loaded.RequestDelay() != 500*time.Millisecond {
		t.Errorf("RequestDelay() = %v", loaded.RequestDelay())
	}
	if !loaded.SaveCoverThumbnails {
		t.Error("SaveCoverThumbnails not persisted")
	}
}
