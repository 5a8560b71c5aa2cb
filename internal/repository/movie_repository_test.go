package repository

import (
	"movieclub_api/model"
	"movieclub_api/testutil"
	"testing"
	"time"
)

func TestUpsertStubsNeverClobbers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMovieRepository(db)
	now := time.Now().UTC()

	if err := repo.UpsertStubs([]model.Movie{{TmdbId: 100, Title: "stub", CreatedAt: now}}); err != nil {
		t.Fatalf("UpsertStubs failed: %v", err)
	}

	hydrated := &model.Movie{
		TmdbId:      100,
		Title:       "Real Title",
		ReleaseDate: "1999-03-31",
		Runtime:     136,
		Directors:   "Lana Wachowski,Lilly Wachowski",
		HydratedAt:  now,
	}
	if err := repo.SaveHydrated(hydrated); err != nil {
		t.Fatalf("SaveHydrated failed: %v", err)
	}

	// a later stub upsert for the same title must not reset the metadata
	if err := repo.UpsertStubs([]model.Movie{{TmdbId: 100, Title: "", CreatedAt: now}}); err != nil {
		t.Fatalf("Second UpsertStubs failed: %v", err)
	}

	movie, err := repo.GetMovie(100)
	if err != nil {
		t.Fatalf("GetMovie failed: %v", err)
	}
	if movie.Title != "Real Title" || movie.Runtime != 136 || movie.HydratedAt.IsZero() {
		t.Fatalf("Hydrated data lost: %+v", movie)
	}
}

func TestSeenToggle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMovieRepository(db)
	testutil.CreateMovie(t, db, 100, "seen me")
	now := time.Now().UTC()

	if err := repo.MarkSeen(1, 100, now); err != nil {
		t.Fatalf("MarkSeen failed: %v", err)
	}
	// marking twice stays a single row
	if err := repo.MarkSeen(1, 100, now); err != nil {
		t.Fatalf("Second MarkSeen failed: %v", err)
	}
	if err := repo.MarkSeen(2, 100, now); err != nil {
		t.Fatalf("MarkSeen for second user failed: %v", err)
	}

	seenBy, err := repo.GetSeenBy([]int64{100})
	if err != nil {
		t.Fatalf("GetSeenBy failed: %v", err)
	}
	if len(seenBy[100]) != 2 {
		t.Fatalf("Expected 2 viewers, got %+v", seenBy[100])
	}

	if err = repo.UnmarkSeen(1, 100); err != nil {
		t.Fatalf("UnmarkSeen failed: %v", err)
	}
	// unmarking an absent row is a no-op
	if err = repo.UnmarkSeen(1, 100); err != nil {
		t.Fatalf("Second UnmarkSeen failed: %v", err)
	}

	seenBy, err = repo.GetSeenBy([]int64{100})
	if err != nil {
		t.Fatalf("GetSeenBy failed: %v", err)
	}
	if len(seenBy[100]) != 1 || seenBy[100][0] != 2 {
		t.Fatalf("Expected only user 2 left, got %+v", seenBy[100])
	}
}

func TestUpsertAward(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMovieRepository(db)
	testutil.CreateMovie(t, db, 100, "awarded")

	award := &model.MovieAward{TmdbId: 100, Nominations: 10, Wins: 4, Categories: `{"best picture":1}`}
	if err := repo.UpsertAward(award); err != nil {
		t.Fatalf("UpsertAward failed: %v", err)
	}

	award.Wins = 5
	if err := repo.UpsertAward(award); err != nil {
		t.Fatalf("Second UpsertAward failed: %v", err)
	}

	awards, err := repo.GetAwards([]int64{100})
	if err != nil {
		t.Fatalf("GetAwards failed: %v", err)
	}
	stored, ok := awards[100]
	if !ok || stored.Wins != 5 || stored.Nominations != 10 {
		t.Fatalf("Unexpected stored award: %+v", stored)
	}
}

func TestMeetupMovieIds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewMovieRepository(db)

	linked := testutil.CreateList(t, db, 1, "linked", 100, 101)
	testutil.CreateList(t, db, 1, "unscheduled", 200)
	meetup := testutil.CreateMeetup(t, db, time.Now().Add(-24*time.Hour))
	if err := db.Model(&model.Meetup{}).Where("id = ?", meetup.Id).Update("movieListId", linked.Id).Error; err != nil {
		t.Fatalf("Failed to link list: %v", err)
	}

	inMeetup, err := repo.GetMeetupMovieIds()
	if err != nil {
		t.Fatalf("GetMeetupMovieIds failed: %v", err)
	}
	if !inMeetup[100] || !inMeetup[101] || inMeetup[200] {
		t.Fatalf("Unexpected meetup movie ids: %+v", inMeetup)
	}

	unscheduled, err := repo.GetUnscheduledListMovieIds()
	if err != nil {
		t.Fatalf("GetUnscheduledListMovieIds failed: %v", err)
	}
	if !unscheduled[200] || unscheduled[100] {
		t.Fatalf("Unexpected unscheduled movie ids: %+v", unscheduled)
	}
}
