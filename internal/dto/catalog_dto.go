package dto

import "comiclib/internal/models"

// CreateSeriesDTO used for POST /api/series
type CreateSeriesDTO struct {
	Title string `json:"title" binding:"required"`
}

func (d CreateSeriesDTO) ToModel() models.Series {
	return models.Series{Title: d.Title}
}

// CreateArtistDTO used for POST /api/artists
type CreateArtistDTO struct {
	Name string `json:"name" binding:"required"`
}

func (d CreateArtistDTO) ToModel() models.Artist {
	return models.Artist{Name: d.Name}
}

// CreateRoleDTO used for POST /api/roles
type CreateRoleDTO struct {
	Name string `json:"name" binding:"required"`
}

func (d CreateRoleDTO) ToModel() models.Role {
	return models.Role{Name: d.Name}
}

type SeriesResponse struct {
	ID         int64                    `json:"id"`
	Title      string                   `json:"title"`
	ComicBooks []ComicBookBasicResponse `json:"comic_books,omitempty"`
}

type ArtistResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromSeriesToResponse(s models.Series) SeriesResponse {
	resp := SeriesResponse{ID: s.ID, Title: s.Title}
	for _, cb := range s.ComicBooks {
		resp.ComicBooks = append(resp.ComicBooks, FromModelToBasicResponse(cb))
	}
	return resp
}

func FromArtistToResponse(a models.Artist) ArtistResponse {
	return ArtistResponse{ID: a.ID, Name: a.Name}
}

func FromRoleToResponse(r models.Role) RoleResponse {
	return RoleResponse{ID: r.ID, Name: r.Name}
}
