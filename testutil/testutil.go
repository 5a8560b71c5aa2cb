package testutil

import (
	"fmt"
	"movieclub_api/configs"
	"movieclub_api/model"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a fresh in-memory database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	configs.SetTestConfigs(configs.ConfigStruct{
		AccessTokenSecret:    "test-secret-test-secret-test-secret",
		MaxVotes:             3,
		PollsCloseDaysBefore: 2,
		HydrationWorkers:     1,
		HydrationRatePerSec:  100,
		HydrationQueueSize:   100,
	})

	// one named memory database per test, cache=shared so the pooled
	// connections all see the same one
	dsn := fmt.Sprintf("file:%v?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Movie{},
		&model.MovieAward{},
		&model.MovieList{},
		&model.MovieListMovie{},
		&model.Meetup{},
		&model.Nomination{},
		&model.Vote{},
		&model.Comment{},
		&model.Seen{},
		&model.Collection{},
		&model.CollectionMovie{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

//------------------------------------------
//------------------------------------------

// CreateMeetup inserts an open meetup scheduled at the given date.
func CreateMeetup(t *testing.T, db *gorm.DB, date time.Time) *model.Meetup {
	t.Helper()

	meetup := &model.Meetup{
		Date:      date.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := db.Create(meetup).Error; err != nil {
		t.Fatalf("Failed to create meetup: %v", err)
	}
	return meetup
}

// CreateList inserts a list with ranked movie stubs for the given tmdbIds.
func CreateList(t *testing.T, db *gorm.DB, userId int64, title string, tmdbIds ...int64) *model.MovieList {
	t.Helper()
	return CreateListAt(t, db, userId, title, time.Now().UTC(), tmdbIds...)
}

// CreateListAt is CreateList with an explicit creation time, used by the
// tie-break tests that depend on list age.
func CreateListAt(t *testing.T, db *gorm.DB, userId int64, title string, createdAt time.Time, tmdbIds ...int64) *model.MovieList {
	t.Helper()

	list := &model.MovieList{
		Title:     title,
		CreatedBy: userId,
		CreatedAt: createdAt.UTC(),
	}
	if err := db.Create(list).Error; err != nil {
		t.Fatalf("Failed to create list: %v", err)
	}
	for i, tmdbId := range tmdbIds {
		CreateMovie(t, db, tmdbId, "")
		join := &model.MovieListMovie{MovieListId: list.Id, TmdbId: tmdbId, Order: i}
		if err := db.Create(join).Error; err != nil {
			t.Fatalf("Failed to create list movie: %v", err)
		}
	}
	return list
}

// CreateMovie upserts one movie stub.
func CreateMovie(t *testing.T, db *gorm.DB, tmdbId int64, title string) *model.Movie {
	t.Helper()

	movie := &model.Movie{TmdbId: tmdbId, Title: title, CreatedAt: time.Now().UTC()}
	var count int64
	if err := db.Model(&model.Movie{}).Where("\"tmdbId\" = ?", tmdbId).Count(&count).Error; err != nil {
		t.Fatalf("Failed to check movie: %v", err)
	}
	if count == 0 {
		if err := db.Create(movie).Error; err != nil {
			t.Fatalf("Failed to create movie: %v", err)
		}
	}
	return movie
}

// CreateNomination inserts a nomination row directly.
func CreateNomination(t *testing.T, db *gorm.DB, listId int64, userId int64, meetupId int64) {
	t.Helper()

	nomination := &model.Nomination{
		MovieListId: listId,
		UserId:      userId,
		MeetupId:    meetupId,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.Create(nomination).Error; err != nil {
		t.Fatalf("Failed to create nomination: %v", err)
	}
}

// CreateVote inserts a vote row directly at the given time.
func CreateVote(t *testing.T, db *gorm.DB, listId int64, userId int64, meetupId int64, createdAt time.Time) {
	t.Helper()

	vote := &model.Vote{
		MovieListId: listId,
		UserId:      userId,
		MeetupId:    meetupId,
		Value:       1,
		CreatedAt:   createdAt.UTC(),
	}
	if err := db.Create(vote).Error; err != nil {
		t.Fatalf("Failed to create vote: %v", err)
	}
}

// CreateCollection inserts a collection row directly.
func CreateCollection(t *testing.T, db *gorm.DB, userId int64, title string, isGlobal bool, externalListId string) *model.Collection {
	t.Helper()

	collection := &model.Collection{
		Title:          title,
		CreatedBy:      userId,
		IsGlobal:       isGlobal,
		ExternalListId: externalListId,
		CreatedAt:      time.Now().UTC(),
	}
	if err := db.Create(collection).Error; err != nil {
		t.Fatalf("Failed to create collection: %v", err)
	}
	return collection
}
