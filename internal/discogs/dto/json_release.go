package dto

import "github.com/jennahya/recordroom/internal/model"

// Release mirrors the Discogs release resource, limited to the fields the
// catalog keeps.
type Release struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Year         int       `json:"year"`
	Genres       []string  `json:"genres"`
	Styles       []string  `json:"styles"`
	Tracklist    []Track   `json:"tracklist"`
	Notes        string    `json:"notes"`
	ExtraArtists []Artist  `json:"extraartists"`
	Companies    []Company `json:"companies"`
	Images       []Image   `json:"images"`
}

// Track is one Discogs tracklist row.
type Track struct {
	Position string `json:"position"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// Artist is a credited extra artist on a release.
type Artist struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Company is a label or company attached to a release.
type Company struct {
	Name  string `json:"name"`
	CatNo string `json:"catno"`
}

// Image is one cover scan.
type Image struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

// ToDetail converts the release into an overlay entry for the given base
// record ID.
//
// Every collection field is defaulted to an empty value rather than left
// nil, so the overlay file never contains JSON nulls and re-running the
// enrichment job round-trips cleanly.
func (r *Release) ToDetail(recordID string) model.RecordDetail {
	detail := model.RecordDetail{
		ID:        recordID,
		DiscogsID: r.ID,
		Title:     r.Title,
		Year:      r.Year,
		Genres:    emptyIfNil(r.Genres),
		Styles:    emptyIfNil(r.Styles),
		Notes:     r.Notes,
		Tracklist: []model.Track{},
		Credits:   []model.Credit{},
		Companies: []model.Company{},
		Images:    []model.Image{},
	}

	for _, t := range r.Tracklist {
		detail.Tracklist = append(detail.Tracklist, model.Track{
			Position: t.Position,
			Title:    t.Title,
			Duration: t.Duration,
		})
	}
	for _, a := range r.ExtraArtists {
		detail.Credits = append(detail.Credits, model.Credit{Name: a.Name, Role: a.Role})
	}
	for _, c := range r.Companies {
		detail.Companies = append(detail.Companies, model.Company{Name: c.Name, CatNo: c.CatNo})
	}
	for _, img := range r.Images {
		detail.Images = append(detail.Images, model.Image{URI: img.URI, Type: img.Type})
	}

	return detail
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
