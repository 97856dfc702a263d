package view

import (
	"strconv"
	"strings"

	"github.com/jennahya/recordroom/internal/model"
)

// User-visible messages for the non-happy page states. An empty result
// and a failed load are distinct states with distinct messages.
const (
	EmptyMessage    = "No records found. Try a different filter or search."
	ErrorMessage    = "Sorry, couldn't load the records. Please try again later."
	NotFoundMessage = "Record not found."
)

// Card is the presentable shape of one collection entry. All fields are
// resolved display values; the renderer that turns a Card into markup or
// terminal output is outside this package.
type Card struct {
	ID       string
	Title    string
	Artist   string
	Year     string
	Genre    string
	Favorite bool
	Cover    string
}

// CardFor converts an effective record into a Card.
func CardFor(eff model.Effective) Card {
	return Card{
		ID:       eff.ID,
		Title:    eff.Title,
		Artist:   eff.Artist,
		Year:     yearString(eff.Year),
		Genre:    eff.Genre,
		Favorite: eff.Favorite,
		Cover:    eff.Cover,
	}
}

// Collection is the full collection page state: either a card list, or
// one of the two message states.
type Collection struct {
	Cards []Card

	// Message is the empty-state or error text. Empty when Cards has
	// entries.
	Message string

	// Failed distinguishes a load failure from a legitimately empty
	// result list.
	Failed bool
}

// RenderCollection builds the collection page state for a view list.
func RenderCollection(list []model.Effective) Collection {
	if len(list) == 0 {
		return Collection{Message: EmptyMessage}
	}
	cards := make([]Card, len(list))
	for i, eff := range list {
		cards[i] = CardFor(eff)
	}
	return Collection{Cards: cards}
}

// RenderError builds the collection page state for a base catalog load
// failure.
func RenderError() Collection {
	return Collection{Message: ErrorMessage, Failed: true}
}

// CreditRow is one credit line with its role prettified for display.
type CreditRow struct {
	Name string
	Role string
}

// Detail is the presentable shape of the record detail page.
//
// The overlay-only sections (Tracklist, Notes, Credits) are empty for
// records without an overlay entry and should simply be omitted when
// rendering.
type Detail struct {
	ID       string
	Title    string
	Artist   string
	Year     string
	Genre    string
	Favorite bool
	Cover    string

	Tracklist []model.Track
	Notes     []string // paragraphs
	Credits   []CreditRow
	Styles    []string
	Companies []string
}

// RenderDetail builds the detail page state for one effective record.
func RenderDetail(eff model.Effective) Detail {
	d := Detail{
		ID:       eff.ID,
		Title:    eff.Title,
		Artist:   eff.Artist,
		Year:     yearString(eff.Year),
		Genre:    eff.Genre,
		Favorite: eff.Favorite,
		Cover:    eff.Cover,
	}

	if extra := eff.Detail; extra != nil {
		d.Tracklist = extra.Tracklist
		d.Notes = paragraphs(extra.Notes)
		d.Styles = extra.Styles
		for _, c := range extra.Credits {
			d.Credits = append(d.Credits, CreditRow{Name: c.Name, Role: model.FormatRole(c.Role)})
		}
		for _, c := range extra.Companies {
			d.Companies = append(d.Companies, c.Name)
		}
	}

	return d
}

func yearString(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}

// paragraphs splits free-text notes into displayable paragraphs,
// dropping blank lines.
func paragraphs(notes string) []string {
	if strings.TrimSpace(notes) == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(notes, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
