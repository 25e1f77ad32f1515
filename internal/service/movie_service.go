package service

import (
	"context"

	"watchlist_api/internal/repository"
	"watchlist_api/model"
)

type IMovieService interface {
	GetMovies(ctx context.Context) ([]model.Movie, error)
	GetMovie(ctx context.Context, movieId int64) (*model.Movie, error)
	CreateMovie(ctx context.Context, req *model.CreateMovieReq) (*model.Movie, error)
	UpdateMovie(ctx context.Context, movieId int64, req *model.UpdateMovieReq) (*model.Movie, error)
	DeleteMovie(ctx context.Context, movieId int64) error
	EnsureSeedData(ctx context.Context) error
}

type MovieService struct {
	movieRepo repository.IMovieRepository
}

func NewMovieService(movieRepo repository.IMovieRepository) *MovieService {
	return &MovieService{movieRepo: movieRepo}
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) GetMovies(ctx context.Context) ([]model.Movie, error) {
	return m.movieRepo.GetMovies(ctx)
}

func (m *MovieService) GetMovie(ctx context.Context, movieId int64) (*model.Movie, error) {
	return m.movieRepo.GetMovieById(ctx, movieId)
}

func (m *MovieService) CreateMovie(ctx context.Context, req *model.CreateMovieReq) (*model.Movie, error) {
	if model.IsBlank(req.Title) {
		return nil, model.ErrTitleRequired
	}

	status := req.Status
	if status == "" {
		status = model.StatusToWatch
	}

	movie := &model.Movie{
		Title:    req.Title,
		Genre:    req.Genre,
		Status:   status,
		ImageUrl: req.ImageUrl,
	}
	if err := m.movieRepo.CreateMovie(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (m *MovieService) UpdateMovie(ctx context.Context, movieId int64, req *model.UpdateMovieReq) (*model.Movie, error) {
	if req.Title != nil && model.IsBlank(*req.Title) {
		return nil, model.ErrTitleRequired
	}

	fields := req.Fields()
	if len(fields) == 0 {
		// nothing to change, still has to 404 on a missing id
		return m.movieRepo.GetMovieById(ctx, movieId)
	}
	return m.movieRepo.UpdateMovie(ctx, movieId, fields)
}

func (m *MovieService) DeleteMovie(ctx context.Context, movieId int64) error {
	return m.movieRepo.DeleteMovie(ctx, movieId)
}

//------------------------------------------
//------------------------------------------

// EnsureSeedData inserts the preset watchlist on the first boot. Guarded by
// an existence check so restarts never duplicate it.
func (m *MovieService) EnsureSeedData(ctx context.Context) error {
	count, err := m.movieRepo.CountMovies(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// copy, gorm backfills the assigned ids into the batch
	seed := make([]model.Movie, len(model.SeedMovies))
	copy(seed, model.SeedMovies)
	return m.movieRepo.CreateMovies(ctx, seed)
}
