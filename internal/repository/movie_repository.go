package repository

import (
	"context"
	"errors"

	"watchlist_api/model"

	"gorm.io/gorm"
)

type IMovieRepository interface {
	GetMovies(ctx context.Context) ([]model.Movie, error)
	GetMovieById(ctx context.Context, movieId int64) (*model.Movie, error)
	CreateMovie(ctx context.Context, movie *model.Movie) error
	UpdateMovie(ctx context.Context, movieId int64, fields map[string]interface{}) (*model.Movie, error)
	DeleteMovie(ctx context.Context, movieId int64) error
	CountMovies(ctx context.Context) (int64, error)
	CreateMovies(ctx context.Context, movies []model.Movie) error
}

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) GetMovies(ctx context.Context) ([]model.Movie, error) {
	movies := make([]model.Movie, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Movie{}).
		Order("id").
		Find(&movies).
		Error
	return movies, err
}

func (r *MovieRepository) GetMovieById(ctx context.Context, movieId int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.WithContext(ctx).
		Where("id = ?", movieId).
		First(&movie).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, movieId int64, fields map[string]interface{}) (*model.Movie, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Movie{}).
		Where("id = ?", movieId).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrMovieNotFound
	}
	return r.GetMovieById(ctx, movieId)
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, movieId int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", movieId).
		Delete(&model.Movie{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) CountMovies(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Movie{}).
		Count(&count).
		Error
	return count, err
}

func (r *MovieRepository) CreateMovies(ctx context.Context, movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&movies).Error
}
