package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByOwner(ctx context.Context, userID int64) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// movieColumns is the select list shared by every read, owner row included.
// The rating is selected as text; pgx refuses to scan a binary-format
// numeric into a plain string.
const movieColumns = `
		m.id, m.title, m.genre, m.release_year, m.rating::text, m.review,
		m.created_by, m.created_at, m.updated_at,
		u.username, u.email`

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, genre, release_year, rating, review,
		                    created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Genre,
		movie.ReleaseYear,
		movie.Rating.String(),
		movie.Review,
		movie.CreatedByID,
		movie.CreatedAt,
		movie.UpdatedAt,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT` + movieColumns + `
		FROM movies m
		JOIN users u ON u.id = m.created_by
		WHERE m.id = $1
	`

	movie, err := scanMovieRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie %d: %w", id, err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT` + movieColumns + `
		FROM movies m
		JOIN users u ON u.id = m.created_by
		ORDER BY m.created_at DESC
	`

	return r.queryMovies(ctx, query)
}

func (r *movieRepository) FindByOwner(ctx context.Context, userID int64) ([]*entity.Movie, error) {
	query := `
		SELECT` + movieColumns + `
		FROM movies m
		JOIN users u ON u.id = m.created_by
		WHERE m.created_by = $1
		ORDER BY m.created_at DESC
	`

	return r.queryMovies(ctx, query, userID)
}

func (r *movieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query movies", zap.Error(err))
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovieRow(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func scanMovieRow(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	var ratingStr string
	var ownerUsername, ownerEmail string

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.ReleaseYear,
		&ratingStr,
		&movie.Review,
		&movie.CreatedByID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&ownerUsername,
		&ownerEmail,
	)
	if err != nil {
		return nil, err
	}

	rating, err := entity.ParseRating(ratingStr)
	if err != nil {
		return nil, fmt.Errorf("parse stored rating %q: %w", ratingStr, err)
	}
	movie.Rating = rating

	movie.Owner = &entity.User{
		Base:     entity.Base{ID: movie.CreatedByID},
		Username: ownerUsername,
		Email:    ownerEmail,
	}

	return &movie, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	// created_by and created_at are never touched after insert
	query := `
		UPDATE movies
		SET title = $2, genre = $3, release_year = $4, rating = $5,
		    review = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.ReleaseYear,
		movie.Rating.String(),
		movie.Review,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", movie.ID)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", id)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
