package api

import (
	"context"
	"errors"
	"fmt"
	"movieclub_api/api/middleware"
	"movieclub_api/configs"
	_ "movieclub_api/docs"
	"movieclub_api/internal/handler"
	"movieclub_api/pkg/response"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

func InitRouter(
	listHandler handler.IListHandler,
	collectionHandler handler.ICollectionHandler,
	movieHandler handler.IMovieHandler,
	adminHandler handler.IAdminHandler,
) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: defaultErrorHandler,
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

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	listRoutes := router.Group("v1/lists")
	{
		listRoutes.Get("/", middleware.AuthMiddleware, listHandler.GetLists)
		listRoutes.Get("/archive", middleware.AuthMiddleware, listHandler.GetArchivedLists)
		listRoutes.Get("/nominated", middleware.AuthMiddleware, listHandler.GetNominatedLists)
		listRoutes.Get("/:id", middleware.AuthMiddleware, listHandler.GetList)
		listRoutes.Post("/", middleware.AuthMiddleware, listHandler.CreateList)
		listRoutes.Put("/:id", middleware.AuthMiddleware, listHandler.UpdateList)
		listRoutes.Delete("/:id", middleware.AuthMiddleware, listHandler.DeleteList)
		listRoutes.Post("/:id/vote", middleware.AuthMiddleware, listHandler.CastVote)
		listRoutes.Delete("/:id/vote", middleware.AuthMiddleware, listHandler.RetractVote)
		listRoutes.Post("/:id/nominate", middleware.AuthMiddleware, listHandler.Nominate)
		listRoutes.Delete("/:id/nominate", middleware.AuthMiddleware, listHandler.RetractNomination)
		listRoutes.Get("/:id/comments", middleware.AuthMiddleware, listHandler.GetComments)
		listRoutes.Post("/:id/comments", middleware.AuthMiddleware, listHandler.AddComment)
	}

	commentRoutes := router.Group("v1/comments")
	{
		commentRoutes.Delete("/:id", middleware.AuthMiddleware, listHandler.DeleteComment)
	}

	collectionRoutes := router.Group("v1/collections")
	{
		collectionRoutes.Get("/", middleware.AuthMiddleware, collectionHandler.GetCollections)
		collectionRoutes.Get("/:id", middleware.AuthMiddleware, collectionHandler.GetCollection)
		collectionRoutes.Post("/", middleware.AuthMiddleware, collectionHandler.CreateCollection)
		collectionRoutes.Put("/:id", middleware.AuthMiddleware, collectionHandler.UpdateCollection)
		collectionRoutes.Delete("/:id", middleware.AuthMiddleware, collectionHandler.DeleteCollection)
		collectionRoutes.Post("/:id/sync", middleware.AuthMiddleware, collectionHandler.SyncCollection)
	}

	movieRoutes := router.Group("v1/movies")
	{
		movieRoutes.Post("/:tmdbId/seen", middleware.AuthMiddleware, movieHandler.MarkSeen)
		movieRoutes.Delete("/:tmdbId/seen", middleware.AuthMiddleware, movieHandler.UnmarkSeen)
	}

	adminRoutes := router.Group("v1/admin", middleware.AuthMiddleware, middleware.AdminMiddleware)
	{
		adminRoutes.Get("/meetups", adminHandler.GetMeetups)
		adminRoutes.Post("/meetups", adminHandler.CreateMeetup)
		adminRoutes.Patch("/meetups/:id", adminHandler.UpdateMeetup)
		adminRoutes.Delete("/meetups/:id", adminHandler.DeleteMeetup)
		adminRoutes.Post("/pick-movie", adminHandler.PickMovie)
		adminRoutes.Put("/awards/:tmdbId", adminHandler.UpsertAward)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault)
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		defer func() {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.SendStatus(fiber.StatusGatewayTimeout)
			}
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
