package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jennahya/recordroom/internal/config"
	"github.com/jennahya/recordroom/internal/discogs"
	"github.com/jennahya/recordroom/internal/discogs/dto"
	recordhttp "github.com/jennahya/recordroom/internal/http"
	"github.com/jennahya/recordroom/internal/model"
)

// fakeFetcher scripts Discogs responses per artist/title and release ID.
type fakeFetcher struct {
	searchIDs  map[string]int64 // "artist|title" -> release ID, 0 = no match
	releases   map[int64]*dto.Release
	searchErr  error
	releaseErr map[int64]error
	calls      []string
}

func (f *fakeFetcher) SearchRelease(_ context.Context, artist, title string) (int64, error) {
	f.calls = append(f.calls, "search:"+artist+"|"+title)
	if f.searchErr != nil {
		return 0, f.searchErr
	}
	return f.searchIDs[artist+"|"+title], nil
}

func (f *fakeFetcher) GetRelease(_ context.Context, id int64) (*dto.Release, error) {
	f.calls = append(f.calls, fmt.Sprintf("release:%d", id))
	if err := f.releaseErr[id]; err != nil {
		return nil, err
	}
	release, ok := f.releases[id]
	if !ok {
		return nil, fmt.Errorf("HTTP 404: no such release %d", id)
	}
	return release, nil
}

func testSettings(t *testing.T, records []model.Record, details []model.RecordDetail) *config.Settings {
	t.Helper()
	dir := t.TempDir()

	settings := config.DefaultSettings()
	settings.BaseCatalogPath = filepath.Join(dir, "records.json")
	settings.OverlayCatalogPath = filepath.Join(dir, "record_details.json")
	settings.RequestDelaySeconds = 0 // no pacing in tests

	base, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settings.BaseCatalogPath, base, 0644); err != nil {
		t.Fatal(err)
	}

	if details != nil {
		overlay, err := json.Marshal(details)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(settings.OverlayCatalogPath, overlay, 0644); err != nil {
			t.Fatal(err)
		}
	}

	return settings
}

func runJob(t *testing.T, settings *config.Settings, fetcher Fetcher) Result {
	t.Helper()
	job := NewJob(settings, fetcher, recordhttp.NewClient("recordroom-test"), nil)
	result, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return result
}

func readOverlay(t *testing.T, path string) []model.RecordDetail {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var details []model.RecordDetail
	if err := json.Unmarshal(data, &details); err != nil {
		t.Fatal(err)
	}
	return details
}

func TestRun_EnrichesViaSearch(t *testing.T) {
	settings := testSettings(t, []model.Record{
		{ID: "blue-train", Title: "Blue Train", Artist: "John Coltrane"},
	}, nil)

	fetcher := &fakeFetcher{
		searchIDs: map[string]int64{"John Coltrane|Blue Train": 3721},
		releases: map[int64]*dto.Release{
			3721: {ID: 3721, Title: "Blue Train", Year: 1957, Genres: []string{"Jazz"}},
		},
	}

	result := runJob(t, settings, fetcher)

	if result.Added != 1 || result.Failed != 0 {
		t.Fatalf("result = %+v", result)
	}

	overlay := readOverlay(t, settings.OverlayCatalogPath)
	if len(overlay) != 1 {
		t.Fatalf("overlay has %d entries, want 1", len(overlay))
	}
	entry := overlay[0]
	if entry.ID != "blue-train" || entry.DiscogsID != 3721 || entry.Year != 1957 {
		t.Errorf("entry = %+v", entry)
	}
	// empty collections serialized, not dropped
	if entry.Tracklist == nil || entry.Images == nil {
		t.Errorf("collection fields absent in overlay: %+v", entry)
	}
}

func TestRun_ManualIDSkipsSearch(t *testing.T) {
	settings := testSettings(t, []model.Record{
		{ID: "rare", Title: "Rare Press", Artist: "Someone", DiscogsID: 555},
	}, nil)

	fetcher := &fakeFetcher{
		releases: map[int64]*dto.Release{555: {ID: 555, Title: "Rare Press"}},
	}

	result := runJob(t, settings, fetcher)

	if result.Added != 1 {
		t.Fatalf("result = %+v", result)
	}
	for _, call := range fetcher.calls {
		if call == "search:Someone|Rare Press" {
			t.Error("manual ID should bypass the search")
		}
	}
}

func TestRun_SecondRunAddsNothing(t *testing.T) {
	settings := testSettings(t, []model.Record{
		{ID: "a", Title: "A", Artist: "X"},
		{ID: "b", Title: "B", Artist: "Y"},
	}, nil)

	fetcher := &fakeFetcher{
		searchIDs: map[string]int64{"X|A": 1, "Y|B": 2},
		releases: map[int64]*dto.Release{
			1: {ID: 1, Title: "A"},
			2: {ID: 2, Title: "B"},
		},
	}

	first := runJob(t, settings, fetcher)
	if first.Added != 2 {
		t.Fatalf("first run: %+v", first)
	}

	second := runJob(t, settings, fetcher)
	if second.Added != 0 || second.Skipped != 2 {
		t.Fatalf("second run: %+v", second)
	}
	if len(readOverlay(t, settings.OverlayCatalogPath)) != 2 {
		t.Error("overlay grew on the second run")
	}
}

func TestRun_NoMatchIsRetryableNextRun(t *testing.T) {
	settings := testSettings(t, []model.Record{
		{ID: "obscure", Title: "Obscure", Artist: "Nobody"},
	}, nil)

	fetcher := &fakeFetcher{searchIDs: map[string]int64{}}

	result := runJob(t, settings, fetcher)
	if result.Unmatched != 1 || result.Added != 0 {
		t.Fatalf("result = %+v", result)
	}
	if len(readOverlay(t, settings.OverlayCatalogPath)) != 0 {
		t.Error("unmatched record must not be persisted")
	}

	// the record shows up again once Discogs knows it
	fetcher.searchIDs["Nobody|Obscure"] = 7
	fetcher.releases = map[int64]*dto.Release{7: {ID: 7, Title: "Obscure"}}

	retry := runJob(t, settings, fetcher)
	if retry.Added != 1 {
		t.Fatalf("retry = %+v", retry)
	}
}

func TestRun_RateLimitAbortsAndPersistsPartial(t *testing.T) {
	settings := testSettings(t, []model.Record{
		{ID: "a", Title: "A", Artist: "X"},
		{ID: "b", Title: "B", Artist: "Y"},
		{ID: "c", Title: "C", Artist: "Z"},
	}, nil)

	fetcher := &fakeFetcher{
		searchIDs: map[string]int64{"X|A": 1, "Y|B": 2, "Z|C": 3},
		releases:  map[int64]*dto.Release{1: {ID: 1, Title: "A"}},
		releaseErr: map[int64]error{
			2: discogs.ErrRateLimited,
		},
	}

	result := runJob(t, settings, fetcher)

	if !result.Aborted {
		t.Fatal("expected aborted run")
	}
	if result.Added != 1 {
		t.Errorf("Added = %d, want 1", result.Added)
	}
	// record c never reached
	for _, call := range fetcher.calls {
		if call == "search:Z|C" {
			t.Error("queue should stop at the rate limit")
		}
	}
	if got := readOverlay(t, settings.OverlayCatalogPath); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("persisted overlay = %+v", got)
	}
}

func TestRun_PerRecordErrorContinues(t *testing.T) {
	settings := testSettings(t, []model.Record{
		{ID: "bad", Title: "Bad", Artist: "X", DiscogsID: 404},
		{ID: "good", Title: "Good", Artist: "Y", DiscogsID: 200},
	}, nil)

	fetcher := &fakeFetcher{
		releases: map[int64]*dto.Release{200: {ID: 200, Title: "Good"}},
	}

	result := runJob(t, settings, fetcher)

	if result.Failed != 1 || result.Added != 1 {
		t.Fatalf("result = %+v", result)
	}
	if got := readOverlay(t, settings.OverlayCatalogPath); len(got) != 1 || got[0].ID != "good" {
		t.Errorf("overlay = %+v", got)
	}
}

func TestRun_ExistingOverlayPreserved(t *testing.T) {
	settings := testSettings(t,
		[]model.Record{
			{ID: "old", Title: "Old", Artist: "X"},
			{ID: "new", Title: "New", Artist: "Y"},
		},
		[]model.RecordDetail{{ID: "old", DiscogsID: 1, Title: "Old"}},
	)

	fetcher := &fakeFetcher{
		searchIDs: map[string]int64{"Y|New": 2},
		releases:  map[int64]*dto.Release{2: {ID: 2, Title: "New"}},
	}

	result := runJob(t, settings, fetcher)
	if result.Added != 1 || result.Skipped != 1 {
		t.Fatalf("result = %+v", result)
	}

	overlay := readOverlay(t, settings.OverlayCatalogPath)
	if len(overlay) != 2 || overlay[0].ID != "old" || overlay[1].ID != "new" {
		t.Errorf("overlay = %+v", overlay)
	}
}

func TestPacer_EnforcesMinimumInterval(t *testing.T) {
	var slept []time.Duration
	current := time.Unix(1000, 0)

	p := newPacer(2 * time.Second)
	p.now = func() time.Time { return current }
	p.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		current = current.Add(d)
		return nil
	}

	ctx := context.Background()

	// first call goes straight through
	if err := p.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if len(slept) != 0 {
		t.Fatalf("first Wait slept %v", slept)
	}

	// immediate second call waits the full interval
	if err := p.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if len(slept) != 1 || slept[0] != 2*time.Second {
		t.Fatalf("slept = %v, want [2s]", slept)
	}

	// a slow caller doesn't wait again
	current = current.Add(3 * time.Second)
	if err := p.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if len(slept) != 1 {
		t.Fatalf("slept = %v, want no extra sleep", slept)
	}
}

func TestPacer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newPacer(time.Hour)
	if err := p.Wait(ctx); err == nil {
		t.Fatal("Wait should fail on a cancelled context")
	}
}
