package model

import (
	"errors"
	"strings"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrTitleRequired = errors.New("title is required")
)

//---------------------------------------
//---------------------------------------

type Movie struct {
	Id       int64  `gorm:"column:id;type:bigint;autoIncrement;primaryKey;" json:"id"`
	Title    string `gorm:"column:title;type:varchar(200);not null;" json:"title"`
	Genre    string `gorm:"column:genre;type:varchar(100);" json:"genre"`
	Status   string `gorm:"column:status;type:varchar(50);" json:"status"`
	ImageUrl string `gorm:"column:image_url;type:varchar(500);" json:"image_url"`
}

func (Movie) TableName() string {
	return "movies"
}

//---------------------------------------
//---------------------------------------

type CreateMovieReq struct {
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Status   string `json:"status"`
	ImageUrl string `json:"image_url"`
}

// UpdateMovieReq carries only the fields present in the request body,
// nil pointers mean the field was not supplied.
type UpdateMovieReq struct {
	Title    *string `json:"title"`
	Genre    *string `json:"genre"`
	Status   *string `json:"status"`
	ImageUrl *string `json:"image_url"`
}

// Fields maps the supplied fields to their column values.
func (u *UpdateMovieReq) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Genre != nil {
		fields["genre"] = *u.Genre
	}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	if u.ImageUrl != nil {
		fields["image_url"] = *u.ImageUrl
	}
	return fields
}

type DeleteMovieRes struct {
	Deleted int64 `json:"deleted"`
}

//---------------------------------------
//---------------------------------------

// SeedMovies is inserted once, on the first boot against an empty table.
var SeedMovies = []Movie{
	{Title: "Inception", Genre: "Sci-Fi", Status: StatusToWatch, ImageUrl: "https://images.unsplash.com/photo-1524985069026-dd778a71c7b4"},
	{Title: "Interstellar", Genre: "Sci-Fi", Status: StatusToWatch, ImageUrl: "https://images.unsplash.com/photo-1462331940025-496dfbfc7564"},
	{Title: "The Dark Knight", Genre: "Action", Status: StatusToWatch, ImageUrl: "https://images.unsplash.com/photo-1517602302552-471fe67acf66"},
	{Title: "Tenet", Genre: "Sci-Fi/Action", Status: StatusToWatch, ImageUrl: "https://images.unsplash.com/photo-1522120692562-5d7a83e9f50a"},
}

// Conventional watch states. The column stays free text, clients may send
// anything.
const (
	StatusToWatch  = "to-watch"
	StatusWatching = "watching"
	StatusWatched  = "watched"
)

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
