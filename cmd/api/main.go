package main

import (
	"log"
	"movieclub_api/api"
	"movieclub_api/configs"
	"movieclub_api/db"
	"movieclub_api/db/redis"
	"movieclub_api/internal/handler"
	"movieclub_api/internal/repository"
	"movieclub_api/internal/service"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Club
// @version					1.0
// @description				Meetup, voting and movie list service of the movie club project.
// @termsOfService				http://swagger.io/terms/
// @contact.name				API Support
// @contact.url				http://www.swagger.io/support
// @contact.email				support@swagger.io
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
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

	go redis.ConnectRedis()

	database, err := db.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize database connection: %s", err)
	}
	if err = database.AutoMigrate(); err != nil {
		log.Fatalf("could not run database migrations: %s", err)
	}

	meetupRepo := repository.NewMeetupRepository(database.GetDB())
	listRepo := repository.NewListRepository(database.GetDB())
	movieRepo := repository.NewMovieRepository(database.GetDB())
	collectionRepo := repository.NewCollectionRepository(database.GetDB())

	tmdbClient := service.NewTmdbClient()
	movieSvc := service.NewMovieService(movieRepo, tmdbClient)
	defer movieSvc.Close()

	meetupSvc := service.NewMeetupService(meetupRepo)
	listSvc := service.NewListService(listRepo, meetupRepo, movieRepo, movieSvc)
	collectionSvc := service.NewCollectionService(collectionRepo, movieRepo, tmdbClient, movieSvc)

	listHandler := handler.NewListHandler(listSvc, meetupSvc)
	collectionHandler := handler.NewCollectionHandler(collectionSvc)
	movieHandler := handler.NewMovieHandler(movieSvc)
	adminHandler := handler.NewAdminHandler(meetupSvc, movieSvc)

	api.InitRouter(listHandler, collectionHandler, movieHandler, adminHandler)
	api.Start("0.0.0.0:" + configs.GetConfigs().Port)
}
