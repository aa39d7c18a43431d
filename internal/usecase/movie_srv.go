package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)
	ListMyMovies(ctx context.Context, userID int64) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, userID int64, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) ListMyMovies(ctx context.Context, userID int64) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindByOwner(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user movies",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("get user movies: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, userID int64, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre, rating, err := s.validateFields(req.Genre, req.Rating)
	if err != nil {
		return nil, err
	}

	// The owner is always the authenticated caller. Nothing in the payload
	// can override it.
	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Genre:       genre,
		ReleaseYear: req.ReleaseYear,
		Rating:      rating,
		Review:      req.Review,
		CreatedByID: userID,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	// Expand the owner for the response
	owner, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to load movie owner",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
	}
	movie.Owner = owner

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int64("created_by", userID),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	// Apply partial updates only for provided fields
	updated := false

	if req.Title != nil {
		movie.Title = *req.Title
		updated = true
	}

	if req.Genre != nil {
		genre, ok := entity.ParseGenre(*req.Genre)
		if !ok {
			return nil, fmt.Errorf("validation failed: genre: %s", genreChoicesMessage())
		}
		movie.Genre = genre
		updated = true
	}

	if req.ReleaseYear != nil {
		movie.ReleaseYear = req.ReleaseYear
		updated = true
	}

	if req.Rating != nil {
		if !req.Rating.InRange() {
			return nil, fmt.Errorf("validation failed: rating: Must be between 0.0 and 10.0")
		}
		movie.Rating = *req.Rating
		updated = true
	}

	if req.Review != nil {
		movie.Review = *req.Review
		updated = true
	}

	// created_at and created_by stay untouched; only updated_at moves
	if updated {
		movie.UpdatedAt = time.Now()
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			s.log.Error("Failed to update movie",
				zap.Error(err),
				zap.String("movie_id", movieID),
			)
			return nil, fmt.Errorf("update movie: %w", err)
		}
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
		zap.Bool("was_updated", updated),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := parseMovieID(movieID)
	if err != nil {
		return err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("movie not found")
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	return nil
}

// validateFields checks the create-payload constraints the validator tags
// cannot express: genre membership and rating bounds.
func (s *movieService) validateFields(genreStr string, rating *entity.Rating) (entity.Genre, entity.Rating, error) {
	genre, ok := entity.ParseGenre(genreStr)
	if !ok {
		return "", 0, fmt.Errorf("validation failed: genre: %s", genreChoicesMessage())
	}

	if !rating.InRange() {
		return "", 0, fmt.Errorf("validation failed: rating: Must be between 0.0 and 10.0")
	}

	return genre, *rating, nil
}

func genreChoicesMessage() string {
	names := make([]string, len(entity.Genres))
	for i, g := range entity.Genres {
		names[i] = string(g)
	}
	return fmt.Sprintf("Must be one of: %s", strings.Join(names, ", "))
}

// IDs missing from the table and IDs that are not integers look the same
// to callers: the resource does not exist.
func parseMovieID(movieID string) (int64, error) {
	id, err := strconv.ParseInt(movieID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("movie not found")
	}
	return id, nil
}
