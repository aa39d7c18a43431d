package request

import (
	"movie-catalog/internal/data/entity"
)

// MovieRequest is the create payload. created_by, created_at and updated_at
// are server-derived; the decoder drops them if a client sends them.
type MovieRequest struct {
	Title       string         `json:"title" validate:"required,max=255"`
	Genre       string         `json:"genre"`
	ReleaseYear *int           `json:"release_year"`
	Rating      *entity.Rating `json:"rating" validate:"required"`
	Review      string         `json:"review"`
}

type MovieUpdateRequest struct {
	Title       *string        `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Genre       *string        `json:"genre,omitempty"`
	ReleaseYear *int           `json:"release_year,omitempty"`
	Rating      *entity.Rating `json:"rating,omitempty"`
	Review      *string        `json:"review,omitempty"`
}
