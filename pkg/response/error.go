package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MovieNotFound  = "Movie not found"
	TitleRequired  = "Movie title is required"
	InvalidMovieId = "Invalid movieId"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
)
