// Package web serves the catalog as a small JSON API plus static files.
//
// It is the website-shaped surface of the application: the collection
// endpoint takes the same tab/q/sort parameters the site's filter tabs,
// search box and sort select produce, and the detail endpoint takes the
// record ID the detail page reads from its query string.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jennahya/recordroom/internal/catalog"
	"github.com/jennahya/recordroom/internal/query"
	"github.com/jennahya/recordroom/internal/stores"
	"github.com/jennahya/recordroom/internal/view"
)

// Server holds dependencies for the HTTP handlers.
type Server struct {
	store     *catalog.Store
	staticDir string
	router    *chi.Mux
}

// NewServer creates an HTTP server over a loaded catalog store.
// staticDir, when non-empty, is served at the root for the site assets.
func NewServer(store *catalog.Store, staticDir string) *Server {
	s := &Server{
		store:     store,
		staticDir: staticDir,
		router:    chi.NewRouter(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/records", s.handleListRecords)
		r.Get("/records/{id}", s.handleGetRecord)
		r.Get("/stores", s.handleListStores)
	})

	if s.staticDir != "" {
		s.router.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
	}

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// collectionResponse is the JSON shape of the collection endpoint.
type collectionResponse struct {
	Records []cardJSON `json:"records"`
	Count   int        `json:"count"`
	Message string     `json:"message,omitempty"`
}

type cardJSON struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Year     string `json:"year,omitempty"`
	Genre    string `json:"genre,omitempty"`
	Favorite bool   `json:"favorite"`
	Cover    string `json:"cover"`
}

// handleListRecords computes the filtered/sorted view.
//
//	GET /api/records?tab=favorites&q=jazz&sort=year-asc
//
// An unrecognized tab falls back to "all"; an unrecognized sort keeps
// catalog order. An empty result is a 200 with an empty list and the
// empty-state message, never an error status.
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	state := query.State{
		Filter: query.ParseFilter(r.URL.Query().Get("tab"), s.store),
		Query:  r.URL.Query().Get("q"),
		Sort:   r.URL.Query().Get("sort"),
	}

	page := view.RenderCollection(query.Apply(s.store, state))

	resp := collectionResponse{
		Records: make([]cardJSON, 0, len(page.Cards)),
		Count:   len(page.Cards),
		Message: page.Message,
	}
	for _, card := range page.Cards {
		resp.Records = append(resp.Records, cardJSON(card))
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGetRecord serves the detail page data for one record.
// An unmatched ID is a not-found state, not a server error.
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	eff, ok := s.store.Effective(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": view.NotFoundMessage})
		return
	}

	detail := view.RenderDetail(eff)
	writeJSON(w, http.StatusOK, detailJSON(detail))
}

// handleListStores serves the map collaborator's data: the store list
// and an initial viewport center.
func (s *Server) handleListStores(w http.ResponseWriter, r *http.Request) {
	lat, lng := stores.Center()
	writeJSON(w, http.StatusOK, map[string]any{
		"stores": stores.All(),
		"center": map[string]float64{"lat": lat, "lng": lng},
	})
}

type trackJSON struct {
	Position string `json:"position"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

type creditJSON struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type detailResponse struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Artist    string       `json:"artist"`
	Year      string       `json:"year,omitempty"`
	Genre     string       `json:"genre,omitempty"`
	Favorite  bool         `json:"favorite"`
	Cover     string       `json:"cover"`
	Tracklist []trackJSON  `json:"tracklist,omitempty"`
	Notes     []string     `json:"notes,omitempty"`
	Credits   []creditJSON `json:"credits,omitempty"`
	Styles    []string     `json:"styles,omitempty"`
	Companies []string     `json:"companies,omitempty"`
}

func detailJSON(d view.Detail) detailResponse {
	resp := detailResponse{
		ID:        d.ID,
		Title:     d.Title,
		Artist:    d.Artist,
		Year:      d.Year,
		Genre:     d.Genre,
		Favorite:  d.Favorite,
		Cover:     d.Cover,
		Notes:     d.Notes,
		Styles:    d.Styles,
		Companies: d.Companies,
	}
	for _, t := range d.Tracklist {
		resp.Tracklist = append(resp.Tracklist, trackJSON{Position: t.Position, Title: t.Title, Duration: t.Duration})
	}
	for _, c := range d.Credits {
		resp.Credits = append(resp.Credits, creditJSON{Name: c.Name, Role: c.Role})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
