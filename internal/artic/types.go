package artic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/easel/internal/selection"
)

// Fields requested from the API; everything else in the record is ignored.
var Fields = []string{
	"id",
	"title",
	"place_of_origin",
	"artist_display",
	"inscriptions",
	"date_start",
	"date_end",
}

var (
	// ErrInvalidRecord marks a record that does not match the artwork schema.
	ErrInvalidRecord = errors.New("invalid artwork record")
	// ErrInvalidPagination marks unusable pagination metadata.
	ErrInvalidPagination = errors.New("invalid pagination")
)

// ListResponse mirrors GET /artworks.
type ListResponse struct {
	Pagination Pagination `json:"pagination"`
	Data       []Artwork  `json:"data"`
}

// Pagination mirrors the pagination block. Pages are 1-based and Limit is the
// page size.
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// Meta converts the pagination block into the selection core's convention.
func (p Pagination) Meta() selection.Meta {
	return selection.Meta{Total: p.Total, Limit: p.Limit}
}

// Artwork is one record. Only ID and Title are required.
type Artwork struct {
	ID            *int    `json:"id"`
	Title         *string `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay *string `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
}

// RecordID returns the record's id, or zero when it is missing.
func (a Artwork) RecordID() selection.RecordID {
	if a.ID == nil {
		return 0
	}
	return selection.RecordID(*a.ID)
}

// TitleText returns the title or "".
func (a Artwork) TitleText() string { return deref(a.Title) }

// Origin returns the place of origin or "".
func (a Artwork) Origin() string { return deref(a.PlaceOfOrigin) }

// Artist returns the artist display line or "". Multi-line values are folded
// onto one line.
func (a Artwork) Artist() string { return oneLine(deref(a.ArtistDisplay)) }

// InscriptionText returns the inscriptions or "".
func (a Artwork) InscriptionText() string { return oneLine(deref(a.Inscriptions)) }

// StartYear formats DateStart, or "" when null.
func (a Artwork) StartYear() string { return year(a.DateStart) }

// EndYear formats DateEnd, or "" when null.
func (a Artwork) EndYear() string { return year(a.DateEnd) }

// Validate checks the record against the artwork schema.
func (a Artwork) Validate() error {
	if a.ID == nil {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if *a.ID <= 0 {
		return fmt.Errorf("%w: id %d", ErrInvalidRecord, *a.ID)
	}
	if a.Title == nil {
		return fmt.Errorf("%w: id %d has no title", ErrInvalidRecord, *a.ID)
	}
	return nil
}

// Validate checks pagination and every record.
func (r ListResponse) Validate() error {
	if r.Pagination.Limit <= 0 {
		return fmt.Errorf("%w: limit %d", ErrInvalidPagination, r.Pagination.Limit)
	}
	if r.Pagination.Total < 0 {
		return fmt.Errorf("%w: total %d", ErrInvalidPagination, r.Pagination.Total)
	}
	for i, art := range r.Data {
		if err := art.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// RecordIDs returns the ids of records in server order.
func RecordIDs(records []Artwork) []selection.RecordID {
	if len(records) == 0 {
		return nil
	}
	ids := make([]selection.RecordID, len(records))
	for i, art := range records {
		ids[i] = art.RecordID()
	}
	return ids
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func year(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
