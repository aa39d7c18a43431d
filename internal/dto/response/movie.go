package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Genre       entity.Genre  `json:"genre"`
	ReleaseYear *int          `json:"release_year"` // null when unset
	Rating      entity.Rating `json:"rating"`
	Review      string        `json:"review"`
	CreatedBy   UserResponse  `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// MovieToResponse expands the owner into its public representation.
func MovieToResponse(movie *entity.Movie) MovieResponse {
	resp := MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Genre:       movie.Genre,
		ReleaseYear: movie.ReleaseYear,
		Rating:      movie.Rating,
		Review:      movie.Review,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}

	if movie.Owner != nil {
		resp.CreatedBy = UserToResponse(movie.Owner)
	} else {
		resp.CreatedBy = UserResponse{ID: movie.CreatedByID}
	}

	return resp
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	responses := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = MovieToResponse(movie)
	}
	return responses
}
