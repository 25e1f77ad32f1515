package service

import (
	"context"
	"errors"
	"testing"

	"watchlist_api/model"
)

// fakeMovieRepository keeps movies in memory, ids are assigned like the
// bigserial column does.
type fakeMovieRepository struct {
	movies  map[int64]model.Movie
	nextId  int64
	creates int
}

func newFakeMovieRepository() *fakeMovieRepository {
	return &fakeMovieRepository{movies: map[int64]model.Movie{}, nextId: 1}
}

func (f *fakeMovieRepository) GetMovies(_ context.Context) ([]model.Movie, error) {
	res := make([]model.Movie, 0, len(f.movies))
	for id := int64(1); id < f.nextId; id++ {
		if m, ok := f.movies[id]; ok {
			res = append(res, m)
		}
	}
	return res, nil
}

func (f *fakeMovieRepository) GetMovieById(_ context.Context, movieId int64) (*model.Movie, error) {
	m, ok := f.movies[movieId]
	if !ok {
		return nil, model.ErrMovieNotFound
	}
	return &m, nil
}

func (f *fakeMovieRepository) CreateMovie(_ context.Context, movie *model.Movie) error {
	movie.Id = f.nextId
	f.nextId++
	f.movies[movie.Id] = *movie
	f.creates++
	return nil
}

func (f *fakeMovieRepository) UpdateMovie(_ context.Context, movieId int64, fields map[string]interface{}) (*model.Movie, error) {
	m, ok := f.movies[movieId]
	if !ok {
		return nil, model.ErrMovieNotFound
	}
	for column, value := range fields {
		s := value.(string)
		switch column {
		case "title":
			m.Title = s
		case "genre":
			m.Genre = s
		case "status":
			m.Status = s
		case "image_url":
			m.ImageUrl = s
		}
	}
	f.movies[movieId] = m
	return &m, nil
}

func (f *fakeMovieRepository) DeleteMovie(_ context.Context, movieId int64) error {
	if _, ok := f.movies[movieId]; !ok {
		return model.ErrMovieNotFound
	}
	delete(f.movies, movieId)
	return nil
}

func (f *fakeMovieRepository) CountMovies(_ context.Context) (int64, error) {
	return int64(len(f.movies)), nil
}

func (f *fakeMovieRepository) CreateMovies(ctx context.Context, movies []model.Movie) error {
	for i := range movies {
		m := movies[i]
		if err := f.CreateMovie(ctx, &m); err != nil {
			return err
		}
	}
	return nil
}

//------------------------------------------
//------------------------------------------

func TestCreateMovie(t *testing.T) {
	repo := newFakeMovieRepository()
	svc := NewMovieService(repo)
	ctx := context.Background()

	movie, err := svc.CreateMovie(ctx, &model.CreateMovieReq{
		Title:  "Inception",
		Genre:  "Sci-Fi",
		Status: "to-watch",
	})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}
	if movie.Id == 0 {
		t.Error("CreateMovie() did not assign an id")
	}
	if movie.Title != "Inception" {
		t.Errorf("Title = %v, want Inception", movie.Title)
	}

	stored, err := svc.GetMovie(ctx, movie.Id)
	if err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}
	if *stored != *movie {
		t.Errorf("GetMovie() = %+v, want %+v", stored, movie)
	}
}

func TestCreateMovie_AssignsFreshIds(t *testing.T) {
	repo := newFakeMovieRepository()
	svc := NewMovieService(repo)
	ctx := context.Background()

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		movie, err := svc.CreateMovie(ctx, &model.CreateMovieReq{Title: "Movie"})
		if err != nil {
			t.Fatalf("CreateMovie() error = %v", err)
		}
		if seen[movie.Id] {
			t.Fatalf("CreateMovie() reused id %d", movie.Id)
		}
		seen[movie.Id] = true
	}
}

func TestCreateMovie_MissingTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"absent title", ""},
		{"blank title", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeMovieRepository()
			svc := NewMovieService(repo)

			_, err := svc.CreateMovie(context.Background(), &model.CreateMovieReq{Title: tt.title})
			if !errors.Is(err, model.ErrTitleRequired) {
				t.Errorf("CreateMovie() error = %v, want ErrTitleRequired", err)
			}
			if repo.creates != 0 {
				t.Errorf("CreateMovie() persisted %d movies on validation failure", repo.creates)
			}
		})
	}
}

func TestCreateMovie_DefaultStatus(t *testing.T) {
	repo := newFakeMovieRepository()
	svc := NewMovieService(repo)

	movie, err := svc.CreateMovie(context.Background(), &model.CreateMovieReq{Title: "Tenet"})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}
	if movie.Status != model.StatusToWatch {
		t.Errorf("Status = %v, want %v", movie.Status, model.StatusToWatch)
	}
}

func TestUpdateMovie_OnlySuppliedFields(t *testing.T) {
	repo := newFakeMovieRepository()
	svc := NewMovieService(repo)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, &model.CreateMovieReq{
		Title:    "Interstellar",
		Genre:    "Sci-Fi",
		Status:   "to-watch",
		ImageUrl: "https://example.com/poster.jpg",
	})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}

	watched := model.StatusWatched
	updated, err := svc.UpdateMovie(ctx, created.Id, &model.UpdateMovieReq{Status: &watched})
	if err != nil {
		t.Fatalf("UpdateMovie() error = %v", err)
	}
	if updated.Status != model.StatusWatched {
		t.Errorf("Status = %v, want %v", updated.Status, model.StatusWatched)
	}
	if updated.Title != created.Title || updated.Genre != created.Genre || updated.ImageUrl != created.ImageUrl {
		t.Errorf("UpdateMovie() touched unsupplied fields: %+v", updated)
	}
}

func TestUpdateMovie_NotFound(t *testing.T) {
	svc := NewMovieService(newFakeMovieRepository())

	watched := model.StatusWatched
	_, err := svc.UpdateMovie(context.Background(), 42, &model.UpdateMovieReq{Status: &watched})
	if !errors.Is(err, model.ErrMovieNotFound) {
		t.Errorf("UpdateMovie() error = %v, want ErrMovieNotFound", err)
	}
}

func TestUpdateMovie_EmptyBodyStillChecksExistence(t *testing.T) {
	repo := newFakeMovieRepository()
	svc := NewMovieService(repo)
	ctx := context.Background()

	_, err := svc.UpdateMovie(ctx, 7, &model.UpdateMovieReq{})
	if !errors.Is(err, model.ErrMovieNotFound) {
		t.Errorf("UpdateMovie() error = %v, want ErrMovieNotFound", err)
	}

	created, err := svc.CreateMovie(ctx, &model.CreateMovieReq{Title: "Dunkirk"})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}
	movie, err := svc.UpdateMovie(ctx, created.Id, &model.UpdateMovieReq{})
	if err != nil {
		t.Fatalf("UpdateMovie() error = %v", err)
	}
	if *movie != *created {
		t.Errorf("UpdateMovie() with no fields changed the record: %+v", movie)
	}
}

func TestUpdateMovie_BlankTitleRejected(t *testing.T) {
	repo := newFakeMovieRepository()
	svc := NewMovieService(repo)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, &model.CreateMovieReq{Title: "Memento"})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}

	blank := " "
	_, err = svc.UpdateMovie(ctx, created.Id, &model.UpdateMovieReq{Title: &blank})
	if !errors.Is(err, model.ErrTitleRequired) {
		t.Errorf("UpdateMovie() error = %v, want ErrTitleRequired", err)
	}
}

func TestDeleteMovie(t *testing.T) {
	repo := newFakeMovieRepository()
	svc := NewMovieService(repo)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, &model.CreateMovieReq{Title: "Following"})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}

	if err := svc.DeleteMovie(ctx, created.Id); err != nil {
		t.Fatalf("DeleteMovie() error = %v", err)
	}
	if _, err := svc.GetMovie(ctx, created.Id); !errors.Is(err, model.ErrMovieNotFound) {
		t.Errorf("GetMovie() after delete error = %v, want ErrMovieNotFound", err)
	}
	if err := svc.DeleteMovie(ctx, created.Id); !errors.Is(err, model.ErrMovieNotFound) {
		t.Errorf("DeleteMovie() twice error = %v, want ErrMovieNotFound", err)
	}
}

//------------------------------------------
//------------------------------------------

func TestEnsureSeedData(t *testing.T) {
	repo := newFakeMovieRepository()
	svc := NewMovieService(repo)
	ctx := context.Background()

	if err := svc.EnsureSeedData(ctx); err != nil {
		t.Fatalf("EnsureSeedData() error = %v", err)
	}
	movies, _ := svc.GetMovies(ctx)
	if len(movies) != len(model.SeedMovies) {
		t.Fatalf("EnsureSeedData() inserted %d movies, want %d", len(movies), len(model.SeedMovies))
	}

	// restart must not duplicate the batch
	if err := svc.EnsureSeedData(ctx); err != nil {
		t.Fatalf("EnsureSeedData() second run error = %v", err)
	}
	movies, _ = svc.GetMovies(ctx)
	if len(movies) != len(model.SeedMovies) {
		t.Errorf("EnsureSeedData() is not idempotent, got %d movies", len(movies))
	}
}

func TestEnsureSeedData_SkipsNonEmptyTable(t *testing.T) {
	repo := newFakeMovieRepository()
	svc := NewMovieService(repo)
	ctx := context.Background()

	if _, err := svc.CreateMovie(ctx, &model.CreateMovieReq{Title: "Oppenheimer"}); err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}
	if err := svc.EnsureSeedData(ctx); err != nil {
		t.Fatalf("EnsureSeedData() error = %v", err)
	}

	movies, _ := svc.GetMovies(ctx)
	if len(movies) != 1 {
		t.Errorf("EnsureSeedData() seeded over existing data, got %d movies", len(movies))
	}
}
