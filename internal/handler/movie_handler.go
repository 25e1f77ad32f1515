package handler

import (
	"errors"
	"strconv"

	"watchlist_api/internal/service"
	"watchlist_api/model"
	errorHandler "watchlist_api/pkg/error"
	"watchlist_api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	GetMovies(c *fiber.Ctx) error
	GetMovie(c *fiber.Ctx) error
	CreateMovie(c *fiber.Ctx) error
	UpdateMovie(c *fiber.Ctx) error
	DeleteMovie(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// GetMovies godoc
//
//	@Summary		List Movies
//	@Description	get every movie of the watchlist.
//	@Tags			Movies
//	@Success		200	{array}		model.Movie
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/movies [get]
func (m *MovieHandler) GetMovies(c *fiber.Ctx) error {
	movies, err := m.movieService.GetMovies(c.Context())
	if err != nil {
		errorHandler.SaveError("Error on fetching movies: "+err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, movies)
}

// GetMovie godoc
//
//	@Summary		Get Movie
//	@Description	get a single movie by its id.
//	@Tags			Movies
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	model.Movie
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/movies/:movieId [get]
func (m *MovieHandler) GetMovie(c *fiber.Ctx) error {
	movieId, err := parseMovieId(c)
	if err != nil {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	movie, err := m.movieService.GetMovie(c.Context(), movieId)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError("Error on fetching movie: "+err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, movie)
}

// CreateMovie godoc
//
//	@Summary		Create Movie
//	@Description	add a movie to the watchlist.
//	@Tags			Movies
//	@Param			movie	body		model.CreateMovieReq	true	"movie"
//	@Success		201		{object}	model.Movie
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/movies [post]
func (m *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req model.CreateMovieReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	movie, err := m.movieService.CreateMovie(c.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrTitleRequired) {
			return response.ResponseError(c, response.TitleRequired, fiber.StatusBadRequest)
		}
		errorHandler.SaveError("Error on creating movie: "+err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, movie)
}

// UpdateMovie godoc
//
//	@Summary		Update Movie
//	@Description	update the supplied fields of a movie, other fields stay untouched.
//	@Tags			Movies
//	@Param			movieId	path		int						true	"movieId"
//	@Param			movie	body		model.UpdateMovieReq	true	"fields"
//	@Success		200		{object}	model.Movie
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/movies/:movieId [put]
func (m *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	movieId, err := parseMovieId(c)
	if err != nil {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	var req model.UpdateMovieReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	movie, err := m.movieService.UpdateMovie(c.Context(), movieId, &req)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
		}
		if errors.Is(err, model.ErrTitleRequired) {
			return response.ResponseError(c, response.TitleRequired, fiber.StatusBadRequest)
		}
		errorHandler.SaveError("Error on updating movie: "+err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, movie)
}

// DeleteMovie godoc
//
//	@Summary		Delete Movie
//	@Description	remove a movie from the watchlist.
//	@Tags			Movies
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	model.DeleteMovieRes
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/movies/:movieId [delete]
func (m *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	movieId, err := parseMovieId(c)
	if err != nil {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	err = m.movieService.DeleteMovie(c.Context(), movieId)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError("Error on deleting movie: "+err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, model.DeleteMovieRes{Deleted: movieId})
}

//------------------------------------------
//------------------------------------------

func parseMovieId(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("movieId", ""), 10, 64)
}
