package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Every movie endpoint requires an authenticated caller. Mutations are
	// not restricted to the owner.
	r.Route("/movies", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", movieHandler.ListMovies)
		r.Get("/my_movies", movieHandler.ListMyMovies)
		r.Post("/", movieHandler.CreateMovie)

		r.Get("/{id}", movieHandler.GetMovie)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Patch("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
