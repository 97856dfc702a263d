package catalog

import (
	"github.com/jennahya/recordroom/internal/model"
)

// Store holds the loaded base catalog and the overlay index.
//
// A Store is read-only once built: the query pipeline and the views derive
// copies from it and never mutate it. The overlay index has an explicit
// present-or-absent contract via DetailFor; there is no hidden default
// entry for records without overlay data.
type Store struct {
	records []model.Record
	details []model.RecordDetail
	byID    map[string]*model.RecordDetail
}

// NewStore builds a Store from a base list and an overlay list.
//
// Overlay entries without an ID are dropped; they cannot be matched to a
// base record. When the overlay contains duplicate IDs the first entry
// wins, matching the append-only discipline of the enrichment job.
func NewStore(records []model.Record, details []model.RecordDetail) *Store {
	s := &Store{
		records: records,
		details: details,
		byID:    make(map[string]*model.RecordDetail, len(details)),
	}
	for i := range s.details {
		d := &s.details[i]
		if d.ID == "" {
			continue
		}
		if _, dup := s.byID[d.ID]; !dup {
			s.byID[d.ID] = d
		}
	}
	return s
}

// Records returns the base catalog in file order.
func (s *Store) Records() []model.Record {
	return s.records
}

// Details returns the overlay entries in file order.
func (s *Store) Details() []model.RecordDetail {
	return s.details
}

// Len returns the number of base records.
func (s *Store) Len() int {
	return len(s.records)
}

// DetailFor returns the overlay entry for the given record ID.
// The second return value reports whether an entry exists.
func (s *Store) DetailFor(id string) (*model.RecordDetail, bool) {
	d, ok := s.byID[id]
	return d, ok
}

// Record returns the base record with the given ID.
func (s *Store) Record(id string) (model.Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.Record{}, false
}

// Effective resolves the record with the given ID against the overlay.
// The second return value is false when no base record matches; a missing
// overlay entry alone never makes a record unresolvable.
func (s *Store) Effective(id string) (model.Effective, bool) {
	base, ok := s.Record(id)
	if !ok {
		return model.Effective{}, false
	}
	detail, _ := s.DetailFor(id)
	return model.Resolve(base, detail), true
}
