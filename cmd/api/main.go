package main

import (
	"context"
	"log"
	"time"

	"watchlist_api/api"
	"watchlist_api/configs"
	"watchlist_api/db"
	"watchlist_api/internal/handler"
	"watchlist_api/internal/repository"
	"watchlist_api/internal/service"

	"github.com/getsentry/sentry-go"
)

// @title			Movie Watchlist
// @version		1.0
// @description	CRUD api of the movie watchlist app.
// @BasePath		/
// @Accept			json
// @Produce		json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	database, err := db.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}

	movieRep := repository.NewMovieRepository(database.GetDB())
	movieSvc := service.NewMovieService(movieRep)
	movieHandler := handler.NewMovieHandler(movieSvc)

	if err := movieSvc.EnsureSeedData(context.Background()); err != nil {
		log.Fatalf("could not seed initial watchlist: %s", err)
	}

	api.InitRouter(movieHandler)
	if err := api.Start("0.0.0.0:" + configs.GetConfigs().Port); err != nil {
		log.Fatalf("server stopped: %s", err)
	}
}
