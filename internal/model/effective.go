package model

// DefaultCover is the placeholder shown when neither the overlay nor the
// base catalog carries a cover image.
const DefaultCover = "album covers/default.jpg"

// Effective is the view-time projection of a record: for every displayable
// field the overlay value wins when present and non-empty, else the base
// value, else empty.
//
// Effective values are derived copies; resolving never mutates the base
// catalog or the overlay.
type Effective struct {
	ID       string
	Title    string
	Artist   string
	Year     *int
	Genre    string
	Category string
	Favorite bool
	Cover    string

	// Detail is the overlay entry the projection was resolved from.
	// Nil when the record has no overlay entry.
	Detail *RecordDetail
}

// Resolve projects a base record and its optional overlay entry into an
// Effective record.
//
// Precedence per field:
//   - Title: overlay title, else base title
//   - Artist: base only (the overlay never carries an artist)
//   - Year: overlay year when non-zero, else base year, else nil
//   - Genre: first overlay genre, else base genre
//   - Cover: first overlay image, else base cover, else DefaultCover
func Resolve(base Record, detail *RecordDetail) Effective {
	eff := Effective{
		ID:       base.ID,
		Title:    base.Title,
		Artist:   base.Artist,
		Year:     base.Year,
		Genre:    base.Genre,
		Category: base.Category,
		Favorite: base.Favorite,
		Cover:    base.Cover,
		Detail:   detail,
	}

	if detail != nil {
		if detail.Title != "" {
			eff.Title = detail.Title
		}
		if detail.Year != 0 {
			year := detail.Year
			eff.Year = &year
		}
		if g := detail.PrimaryGenre(); g != "" {
			eff.Genre = g
		}
		if img := detail.PrimaryImage(); img != "" {
			eff.Cover = img
		}
	}

	if eff.Cover == "" {
		eff.Cover = DefaultCover
	}

	return eff
}

// HasYear reports whether the record has a resolvable year. Records
// without one sort after all dated records regardless of direction.
func (e Effective) HasYear() bool {
	return e.Year != nil
}
