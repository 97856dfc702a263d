package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jennahya/recordroom/internal/catalog"
	"github.com/jennahya/recordroom/internal/config"
	"github.com/jennahya/recordroom/internal/discogs"
	"github.com/jennahya/recordroom/internal/discogs/dto"
	recordhttp "github.com/jennahya/recordroom/internal/http"
	ioutils "github.com/jennahya/recordroom/internal/io"
	"github.com/jennahya/recordroom/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update from the job.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Fetcher is the slice of the Discogs client the job consumes.
type Fetcher interface {
	SearchRelease(ctx context.Context, artist, title string) (int64, error)
	GetRelease(ctx context.Context, id int64) (*dto.Release, error)
}

// Result summarizes one enrichment run.
type Result struct {
	// Added is the number of overlay entries written this run.
	Added int
	// Skipped counts records that already had an overlay entry.
	Skipped int
	// Unmatched counts records where the Discogs search found nothing.
	// They stay eligible for the next run.
	Unmatched int
	// Failed counts per-record fetch errors (logged, not fatal).
	Failed int
	// Aborted is set when Discogs rate-limited the client and the
	// remaining queue was dropped. Accumulated entries are still
	// persisted.
	Aborted bool
}

// Job enriches the base catalog with Discogs data, one record at a time.
//
// A Job is resumable: records whose IDs already appear in the overlay are
// skipped unconditionally, so re-running on an unchanged catalog adds
// zero entries. The overlay is written once at the end of the run, via an
// atomic replace, so earlier runs are never corrupted by a crash.
type Job struct {
	settings   *config.Settings
	fetcher    Fetcher
	httpClient *recordhttp.Client
	images     *ioutils.ImageService
	pace       *pacer
	onProgress func(ProgressEvent)
}

// NewJob creates an enrichment Job.
//
// The httpClient is used for catalog loading and cover thumbnail
// downloads; the fetcher handles the Discogs API itself.
func NewJob(settings *config.Settings, fetcher Fetcher, httpClient *recordhttp.Client, onProgress func(ProgressEvent)) *Job {
	return &Job{
		settings:   settings,
		fetcher:    fetcher,
		httpClient: httpClient,
		images:     ioutils.NewImageService(),
		pace:       newPacer(settings.RequestDelay()),
		onProgress: onProgress,
	}
}

// Run processes every base record lacking an overlay entry and persists
// the grown overlay.
//
// Error policy per record: a rate-limit error aborts the remaining queue;
// any other fetch error is logged and the run continues. The overlay file
// is written in both cases. Only a base catalog load failure or a
// persistence failure makes Run itself return an error.
func (j *Job) Run(ctx context.Context) (Result, error) {
	var result Result

	loader := catalog.NewLoader(j.httpClient, j.settings.BaseCatalogPath, j.settings.OverlayCatalogPath)
	store, err := loader.Load(ctx)
	if err != nil {
		return result, err
	}

	j.progress(ProgressEvent{
		Message: fmt.Sprintf("Loaded %d records, %d existing detail entries", store.Len(), len(store.Details())),
		Level:   LevelInfo,
	})

	updated := append([]model.RecordDetail{}, store.Details()...)

	for _, rec := range store.Records() {
		if rec.ID == "" || rec.Artist == "" || rec.Title == "" {
			j.progress(ProgressEvent{Message: "Skipping a record with missing id/artist/title", Level: LevelWarning})
			continue
		}

		if _, ok := store.DetailFor(rec.ID); ok {
			result.Skipped++
			j.progress(ProgressEvent{
				Message: fmt.Sprintf("Already have details for %s - %s, skipping", rec.Artist, rec.Title),
				Level:   LevelVerbose,
			})
			continue
		}

		detail, err := j.enrichOne(ctx, rec)
		switch {
		case errors.Is(err, discogs.ErrRateLimited):
			result.Aborted = true
			j.progress(ProgressEvent{
				Message: "Hit Discogs rate limit, stopping this run. Try again later.",
				Level:   LevelError,
			})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			result.Aborted = true
		case err != nil:
			result.Failed++
			j.progress(ProgressEvent{
				Message: fmt.Sprintf("Error for %s - %s: %v", rec.Artist, rec.Title, err),
				Level:   LevelError,
			})
			continue
		case detail == nil:
			result.Unmatched++
			j.progress(ProgressEvent{
				Message: fmt.Sprintf("No match found for %s - %s, skipping for now", rec.Artist, rec.Title),
				Level:   LevelWarning,
			})
			continue
		default:
			updated = append(updated, *detail)
			result.Added++
			j.progress(ProgressEvent{
				Message: fmt.Sprintf("Enriched %s - %s (release %d)", rec.Artist, rec.Title, detail.DiscogsID),
				Level:   LevelSuccess,
			})
			j.saveThumbnail(ctx, rec.ID, detail)
		}

		if result.Aborted {
			break
		}
	}

	if err := j.persist(updated); err != nil {
		return result, err
	}

	j.progress(ProgressEvent{
		Message: fmt.Sprintf("Wrote %s (%d entries)", j.settings.OverlayCatalogPath, len(updated)),
		Level:   LevelInfo,
	})

	return result, nil
}

// enrichOne resolves one record to an overlay entry.
//
// A manually assigned Discogs ID short-circuits the search. Returns
// (nil, nil) when the search finds no match.
func (j *Job) enrichOne(ctx context.Context, rec model.Record) (*model.RecordDetail, error) {
	releaseID := rec.DiscogsID

	if releaseID != 0 {
		j.progress(ProgressEvent{
			Message: fmt.Sprintf("Using manual Discogs ID %d for %s - %s", releaseID, rec.Artist, rec.Title),
			Level:   LevelInfo,
		})
	} else {
		j.progress(ProgressEvent{
			Message: fmt.Sprintf("Searching Discogs for %s - %s", rec.Artist, rec.Title),
			Level:   LevelVerbose,
		})
		if err := j.pace.Wait(ctx); err != nil {
			return nil, err
		}
		id, err := j.fetcher.SearchRelease(ctx, rec.Artist, rec.Title)
		if err != nil {
			return nil, err
		}
		if id == 0 {
			return nil, nil
		}
		releaseID = id
	}

	if err := j.pace.Wait(ctx); err != nil {
		return nil, err
	}
	release, err := j.fetcher.GetRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}

	detail := release.ToDetail(rec.ID)
	return &detail, nil
}

// saveThumbnail downloads the entry's primary image and writes a resized
// local thumbnail. Failures are logged and never fail the record.
func (j *Job) saveThumbnail(ctx context.Context, recordID string, detail *model.RecordDetail) {
	if !j.settings.SaveCoverThumbnails {
		return
	}
	uri := detail.PrimaryImage()
	if uri == "" {
		return
	}

	raw, err := j.httpClient.DownloadBytes(ctx, uri)
	if err != nil {
		j.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading cover for %s: %v", recordID, err), Level: LevelWarning})
		return
	}

	thumb, err := j.images.Thumbnail(raw, j.settings.ThumbnailMaxSize)
	if err != nil {
		j.progress(ProgressEvent{Message: fmt.Sprintf("Error resizing cover for %s: %v", recordID, err), Level: LevelWarning})
		return
	}

	if err := ioutils.EnsureDir(j.settings.ThumbnailDir); err != nil {
		j.progress(ProgressEvent{Message: fmt.Sprintf("Error creating thumbnail dir: %v", err), Level: LevelWarning})
		return
	}

	path := filepath.Join(j.settings.ThumbnailDir, ioutils.SanitizeFileName(recordID)+".jpg")
	if err := ioutils.WriteFileAtomic(path, thumb); err != nil {
		j.progress(ProgressEvent{Message: fmt.Sprintf("Error saving thumbnail for %s: %v", recordID, err), Level: LevelWarning})
		return
	}

	j.progress(ProgressEvent{Message: fmt.Sprintf("Saved thumbnail %s", path), Level: LevelVerbose})
}

// persist writes the grown overlay in one atomic replace.
func (j *Job) persist(details []model.RecordDetail) error {
	data, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding overlay: %w", err)
	}
	if err := ioutils.WriteFileAtomic(j.settings.OverlayCatalogPath, data); err != nil {
		return fmt.Errorf("writing %s: %w", j.settings.OverlayCatalogPath, err)
	}
	return nil
}

func (j *Job) progress(event ProgressEvent) {
	if j.onProgress != nil {
		j.onProgress(event)
	}
}
