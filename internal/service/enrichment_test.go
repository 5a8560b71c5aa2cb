package service

import (
	"movieclub_api/model"
	"testing"
	"time"
)

func TestBuildEnrichedMoviesOrderAndFlags(t *testing.T) {
	movies := []model.Movie{
		{TmdbId: 300, Title: "third"},
		{TmdbId: 100, Title: "first"},
		{TmdbId: 200, Title: "second"},
	}
	orders := map[int64]int{100: 0, 200: 1, 300: 2}
	data := &enrichmentData{
		seenBy:        map[int64][]int64{100: {1, 2}, 200: {2}},
		inMeetup:      map[int64]bool{200: true},
		inUnscheduled: map[int64]bool{300: true},
		awards:        map[int64]model.MovieAward{100: {TmdbId: 100, Nominations: 5, Wins: 2, Categories: `{"best picture":1}`}},
	}

	res := buildEnrichedMovies(movies, orders, data, 1, false)
	if len(res) != 3 {
		t.Fatalf("Expected 3 movies, got %v", len(res))
	}
	for i, tmdbId := range []int64{100, 200, 300} {
		if res[i].TmdbId != tmdbId {
			t.Fatalf("Expected rank order 100,200,300, got %v at %v", res[i].TmdbId, i)
		}
	}

	if !res[0].HasSeen || res[0].SeenCount != 2 {
		t.Fatalf("Expected requester seen flags on first movie, got %+v", res[0])
	}
	if res[1].HasSeen {
		t.Fatalf("Expected hasSeen false for unseen movie")
	}
	if !res[1].InMeetup || res[0].InMeetup {
		t.Fatalf("Expected inMeetup flag only on second movie")
	}
	// unscheduled flag is collection-view only
	if res[2].InUnscheduledList {
		t.Fatalf("Expected inUnscheduledList suppressed outside collections")
	}
	if res[2].SeenBy == nil || len(res[2].SeenBy) != 0 {
		t.Fatalf("Expected empty seenBy slice, got %+v", res[2].SeenBy)
	}

	if res[0].Awards == nil || res[0].Awards.Wins != 2 || res[0].Awards.Categories["best picture"] != 1 {
		t.Fatalf("Expected parsed awards, got %+v", res[0].Awards)
	}
	if res[1].Awards != nil {
		t.Fatalf("Expected no awards on second movie")
	}

	withUnscheduled := buildEnrichedMovies(movies, orders, data, 1, true)
	if !withUnscheduled[2].InUnscheduledList {
		t.Fatalf("Expected inUnscheduledList in collection view")
	}
}

func TestParseAwardBrokenCategories(t *testing.T) {
	res := parseAward(model.MovieAward{Nominations: 3, Wins: 1, Categories: "{not json"})
	if res.Nominations != 3 || res.Wins != 1 {
		t.Fatalf("Expected counts kept, got %+v", res)
	}
	if len(res.Categories) != 0 {
		t.Fatalf("Expected empty categories on broken blob, got %+v", res.Categories)
	}
}

func TestEncodeAwardCategories(t *testing.T) {
	if encodeAwardCategories(nil) != "" {
		t.Fatalf("Expected empty string for nil categories")
	}
	encoded := encodeAwardCategories(map[string]int{"best director": 1})
	if encoded != `{"best director":1}` {
		t.Fatalf("Unexpected encoding: %v", encoded)
	}
}

func TestSortListsForDisplay(t *testing.T) {
	base := time.Now().UTC()
	lists := []model.ListRes{
		{MovieList: model.MovieList{Id: 1, CreatedAt: base}, CurrentVotes: 1, AllTimeVotes: 5},
		{MovieList: model.MovieList{Id: 2, CreatedAt: base.Add(-time.Hour)}, CurrentVotes: 2, AllTimeVotes: 0},
		{MovieList: model.MovieList{Id: 3, CreatedAt: base.Add(-2 * time.Hour)}, CurrentVotes: 1, AllTimeVotes: 5},
		{MovieList: model.MovieList{Id: 4, CreatedAt: base}, CurrentVotes: 1, AllTimeVotes: 9},
	}

	sortListsForDisplay(lists)

	// current votes first, then all-time votes, then age
	expected := []int64{2, 4, 3, 1}
	for i, id := range expected {
		if lists[i].Id != id {
			t.Fatalf("Expected order %v, got %v at %v", expected, lists[i].Id, i)
		}
	}
}
