package api

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"watchlist_api/api/middleware"
	"watchlist_api/configs"
	"watchlist_api/internal/handler"
	"watchlist_api/pkg/response"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

var router *fiber.App

func InitRouter(movieHandler handler.IMovieHandler) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	engine := html.New("./templates", ".tpl")
	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
		Views:        engine,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())
	router.Use(middleware.RequestId)

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	router.Static("/static", "./web", fiber.Static{
		Compress: true,
		MaxAge:   3600,
	})

	router.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "Movie Watchlist",
		})
	})

	movieRoutes := router.Group("movies")
	{
		movieRoutes.Get("/", movieHandler.GetMovies)
		movieRoutes.Post("/", movieHandler.CreateMovie)
		movieRoutes.Get("/:movieId", movieHandler.GetMovie)
		movieRoutes.Put("/:movieId", movieHandler.UpdateMovie)
		movieRoutes.Patch("/:movieId", movieHandler.UpdateMovie)
		movieRoutes.Delete("/:movieId", movieHandler.DeleteMovie)
	}

	router.Get("/healthz", HealthCheck)
	router.Get("/metrics", monitor.New())
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.SendStatus(fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	liveness probe for the orchestrator.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/healthz [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"status": "ok",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
