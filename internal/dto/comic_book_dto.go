package dto

import (
	"comiclib/internal/models"
)

// SeriesRefDTO points a new comic book at its series: either an id of a row
// that already exists, or a title for a series to be created with the book.
type SeriesRefDTO struct {
	ID    *int64  `json:"id,omitempty"`
	Title *string `json:"title,omitempty"`
}

type ArtistRefDTO struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

type RoleRefDTO struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// CreditDTO is one artist-in-role credit on a comic book.
type CreditDTO struct {
	Artist ArtistRefDTO `json:"artist"`
	Role   RoleRefDTO   `json:"role"`
}

// CreateComicBookDTO used for POST /api/comic-books
type CreateComicBookDTO struct {
	IssueNumber int          `json:"issue_number" binding:"required"`
	Series      SeriesRefDTO `json:"series"`
	Credits     []CreditDTO  `json:"credits,omitempty"`
}

// UpdateComicBookDTO used for PUT /api/comic-books/:id. Every scalar field
// is required because the update overwrites the whole row; an omitted field
// would be persisted as its zero value, not preserved.
type UpdateComicBookDTO struct {
	IssueNumber int   `json:"issue_number" binding:"required"`
	SeriesID    int64 `json:"series_id" binding:"required"`
}

// ToModel translates the request into models with explicit persistence
// tags. A client that supplies an id asserts the referenced row already
// exists and must not be touched; supplying a name/title instead asks for
// an insert. This is the only place persistence state is inferred from
// input.
func (d CreateComicBookDTO) ToModel() models.ComicBook {
	cb := models.ComicBook{
		IssueNumber: d.IssueNumber,
		Series:      seriesFromRef(d.Series),
	}
	for _, c := range d.Credits {
		cb.Credits = append(cb.Credits, models.ComicBookArtist{
			Artist: artistFromRef(c.Artist),
			Role:   roleFromRef(c.Role),
		})
	}
	return cb
}

func (d UpdateComicBookDTO) ToModel() models.ComicBook {
	return models.ComicBook{
		IssueNumber: d.IssueNumber,
		SeriesID:    d.SeriesID,
	}
}

func seriesFromRef(ref SeriesRefDTO) *models.Series {
	if ref.ID != nil {
		return &models.Series{ID: *ref.ID, State: models.RecordExisting}
	}
	if ref.Title != nil {
		return &models.Series{Title: *ref.Title, State: models.RecordNew}
	}
	return nil
}

func artistFromRef(ref ArtistRefDTO) *models.Artist {
	if ref.ID != nil {
		return &models.Artist{ID: *ref.ID, State: models.RecordExisting}
	}
	if ref.Name != nil {
		return &models.Artist{Name: *ref.Name, State: models.RecordNew}
	}
	return nil
}

func roleFromRef(ref RoleRefDTO) *models.Role {
	if ref.ID != nil {
		return &models.Role{ID: *ref.ID, State: models.RecordExisting}
	}
	if ref.Name != nil {
		return &models.Role{Name: *ref.Name, State: models.RecordNew}
	}
	return nil
}

// ComicBookBasicResponse carries the fields list views need.
type ComicBookBasicResponse struct {
	ID          int64  `json:"id"`
	IssueNumber int    `json:"issue_number"`
	SeriesID    int64  `json:"series_id"`
	SeriesTitle string `json:"series_title,omitempty"`
}

// CreditResponse is a fully populated credit.
type CreditResponse struct {
	ID     int64          `json:"id"`
	Artist ArtistResponse `json:"artist"`
	Role   RoleResponse   `json:"role"`
}

// ComicBookResponse is the detail view with all relations populated.
type ComicBookResponse struct {
	ID          int64            `json:"id"`
	IssueNumber int              `json:"issue_number"`
	Series      *SeriesResponse  `json:"series,omitempty"`
	Credits     []CreditResponse `json:"credits,omitempty"`
}

// Converters

func FromModelToBasicResponse(cb models.ComicBook) ComicBookBasicResponse {
	resp := ComicBookBasicResponse{
		ID:          cb.ID,
		IssueNumber: cb.IssueNumber,
		SeriesID:    cb.SeriesID,
	}
	if cb.Series != nil {
		resp.SeriesTitle = cb.Series.Title
	}
	return resp
}

func FromModelToResponse(cb models.ComicBook) ComicBookResponse {
	resp := ComicBookResponse{
		ID:          cb.ID,
		IssueNumber: cb.IssueNumber,
	}
	if cb.Series != nil {
		s := FromSeriesToResponse(*cb.Series)
		resp.Series = &s
	}
	for _, credit := range cb.Credits {
		cr := CreditResponse{ID: credit.ID}
		if credit.Artist != nil {
			cr.Artist = FromArtistToResponse(*credit.Artist)
		}
		if credit.Role != nil {
			cr.Role = FromRoleToResponse(*credit.Role)
		}
		resp.Credits = append(resp.Credits, cr)
	}
	return resp
}
