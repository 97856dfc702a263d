package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	recordhttp "github.com/jennahya/recordroom/internal/http"
	"github.com/jennahya/recordroom/internal/model"
)

// ErrBaseCatalog is returned when the base catalog cannot be loaded or
// parsed. This is the fatal load error: without the base list there is
// nothing to render. Overlay problems never produce it.
var ErrBaseCatalog = errors.New("base catalog unavailable")

// Loader reads the base and overlay catalogs from files or URLs.
//
// Both references accept either a local path or an http(s) URL, so the
// same loader serves the offline enrichment job and a catalog published
// on a static host.
//
// Example:
//
//	loader := catalog.NewLoader(client, "records.json", "record_details.json")
//	store, err := loader.Load(ctx)
//	if err != nil {
//	    // base catalog failure, show the error state
//	}
type Loader struct {
	client  *recordhttp.Client
	base    string
	overlay string
}

// NewLoader creates a Loader for the given catalog references.
// The overlay reference may be empty, meaning base-only.
func NewLoader(client *recordhttp.Client, base, overlay string) *Loader {
	return &Loader{client: client, base: base, overlay: overlay}
}

// Load fetches both catalogs concurrently and joins them into a Store.
//
// The two fetches are independent: a base failure is fatal and returns
// ErrBaseCatalog wrapping the cause; an overlay failure (missing file,
// unreachable URL, malformed JSON) degrades to an empty overlay and is
// not reported.
func (l *Loader) Load(ctx context.Context) (*Store, error) {
	var (
		records []model.Record
		details []model.RecordDetail
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := l.read(ctx, l.base)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBaseCatalog, err)
		}
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("%w: %v", ErrBaseCatalog, err)
		}
		return nil
	})

	g.Go(func() error {
		details = l.loadOverlay(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewStore(records, details), nil
}

// loadOverlay returns the overlay entries, or nil when the overlay is
// absent, unreachable or malformed.
func (l *Loader) loadOverlay(ctx context.Context) []model.RecordDetail {
	if l.overlay == "" {
		return nil
	}
	data, err := l.read(ctx, l.overlay)
	if err != nil {
		return nil
	}
	var details []model.RecordDetail
	if err := json.Unmarshal(data, &details); err != nil {
		return nil
	}
	return details
}

func (l *Loader) read(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return l.client.Get(ctx, ref)
	}
	return os.ReadFile(ref)
}
