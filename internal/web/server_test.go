package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jennahya/recordroom/internal/catalog"
	"github.com/jennahya/recordroom/internal/model"
	"github.com/jennahya/recordroom/internal/view"
)

func intp(v int) *int { return &v }

func newTestServer() *Server {
	store := catalog.NewStore(
		[]model.Record{
			{ID: "1", Title: "Alpha", Artist: "X", Year: intp(2000), Category: "favorites", Favorite: true},
			{ID: "2", Title: "Beta", Artist: "Y", Year: intp(1990), Category: "favorites"},
		},
		[]model.RecordDetail{
			{ID: "2", DiscogsID: 9, Title: "Beta Remastered", Year: 1991,
				Tracklist: []model.Track{{Position: "A1", Title: "One", Duration: "3:00"}}},
		},
	)
	return NewServer(store, "")
}

func get(t *testing.T, srv *Server, url string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON from %s: %v", url, err)
	}
	return rec, body
}

func recordIDs(t *testing.T, body map[string]any) []string {
	t.Helper()
	raw, ok := body["records"].([]any)
	if !ok {
		t.Fatalf("no records array in %v", body)
	}
	ids := make([]string, len(raw))
	for i, entry := range raw {
		ids[i] = entry.(map[string]any)["id"].(string)
	}
	return ids
}

func TestListRecords_FilterSearchSort(t *testing.T) {
	srv := newTestServer()

	rec, body := get(t, srv, "/api/records?tab=favorites&sort=year-asc")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ids := recordIDs(t, body); len(ids) != 1 || ids[0] != "1" {
		t.Errorf("ids = %v, want [1]", ids)
	}

	_, body = get(t, srv, "/api/records?q=beta&sort=alpha-asc")
	if ids := recordIDs(t, body); len(ids) != 1 || ids[0] != "2" {
		t.Errorf("ids = %v, want [2]", ids)
	}
}

func TestListRecords_UnknownTabFallsBackToAll(t *testing.T) {
	srv := newTestServer()

	_, body := get(t, srv, "/api/records?tab=whatever")
	if ids := recordIDs(t, body); len(ids) != 2 {
		t.Errorf("ids = %v, want both records", ids)
	}
}

func TestListRecords_EmptyResultIsOKWithMessage(t *testing.T) {
	srv := newTestServer()

	rec, body := get(t, srv, "/api/records?q=zzz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, empty result must not be an error", rec.Code)
	}
	if body["message"] != view.EmptyMessage {
		t.Errorf("message = %v", body["message"])
	}
	if len(recordIDs(t, body)) != 0 {
		t.Error("expected no records")
	}
}

func TestGetRecord_OverlayWins(t *testing.T) {
	srv := newTestServer()

	rec, body := get(t, srv, "/api/records/2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["title"] != "Beta Remastered" || body["year"] != "1991" {
		t.Errorf("body = %v", body)
	}
	if tracks := body["tracklist"].([]any); len(tracks) != 1 {
		t.Errorf("tracklist = %v", tracks)
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	srv := newTestServer()

	rec, body := get(t, srv, "/api/records/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body["message"] != view.NotFoundMessage {
		t.Errorf("message = %v", body["message"])
	}
}

func TestListStores(t *testing.T) {
	srv := newTestServer()

	rec, body := get(t, srv, "/api/stores")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if list := body["stores"].([]any); len(list) == 0 {
		t.Error("no stores returned")
	}
	if _, ok := body["center"].(map[string]any); !ok {
		t.Error("no center returned")
	}
}
