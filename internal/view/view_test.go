package view

import (
	"testing"

	"github.com/jennahya/recordroom/internal/model"
)

func intp(v int) *int { return &v }

func TestRenderCollection_States(t *testing.T) {
	empty := RenderCollection(nil)
	if empty.Message != EmptyMessage || empty.Failed {
		t.Errorf("empty state = %+v", empty)
	}

	failed := RenderError()
	if failed.Message != ErrorMessage || !failed.Failed {
		t.Errorf("error state = %+v", failed)
	}
	if failed.Message == empty.Message {
		t.Error("empty and error states must be distinguishable")
	}

	ok := RenderCollection([]model.Effective{
		{ID: "1", Title: "Alpha", Artist: "X", Year: intp(2000), Favorite: true, Cover: "a.jpg"},
	})
	if ok.Message != "" || len(ok.Cards) != 1 {
		t.Fatalf("ok state = %+v", ok)
	}
	card := ok.Cards[0]
	if card.Year != "2000" || !card.Favorite || card.Cover != "a.jpg" {
		t.Errorf("card = %+v", card)
	}
}

func TestCardFor_NoYear(t *testing.T) {
	card := CardFor(model.Effective{ID: "1", Title: "Alpha"})
	if card.Year != "" {
		t.Errorf("Year = %q, want empty", card.Year)
	}
}

func TestRenderDetail_WithOverlay(t *testing.T) {
	eff := model.Effective{
		ID:     "2",
		Title:  "Beta Remastered",
		Artist: "Y",
		Year:   intp(1991),
		Genre:  "Jazz",
		Cover:  "https://img.discogs.com/beta.jpg",
		Detail: &model.RecordDetail{
			ID:        "2",
			Tracklist: []model.Track{{Position: "A1", Title: "Opener", Duration: "4:12"}},
			Notes:     "First pressing.\n\nGatefold sleeve.",
			Credits:   []model.Credit{{Name: "Z", Role: "producer, engineer"}},
			Styles:    []string{"Hard Bop"},
			Companies: []model.Company{{Name: "Blue Note", CatNo: "BLP 1577"}},
		},
	}

	d := RenderDetail(eff)

	if len(d.Tracklist) != 1 || d.Tracklist[0].Position != "A1" {
		t.Errorf("Tracklist = %+v", d.Tracklist)
	}
	if len(d.Notes) != 2 || d.Notes[1] != "Gatefold sleeve." {
		t.Errorf("Notes = %v", d.Notes)
	}
	if len(d.Credits) != 1 || d.Credits[0].Role != "Producer · Engineer" {
		t.Errorf("Credits = %+v", d.Credits)
	}
	if len(d.Companies) != 1 || d.Companies[0] != "Blue Note" {
		t.Errorf("Companies = %v", d.Companies)
	}
}

func TestRenderDetail_BaseOnly(t *testing.T) {
	d := RenderDetail(model.Effective{ID: "1", Title: "Alpha", Artist: "X"})

	if len(d.Tracklist) != 0 || len(d.Notes) != 0 || len(d.Credits) != 0 {
		t.Errorf("overlay sections should be empty: %+v", d)
	}
	if d.Title != "Alpha" {
		t.Errorf("Title = %q", d.Title)
	}
}
