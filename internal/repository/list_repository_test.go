package repository

import (
	"movieclub_api/testutil"
	"testing"
)

func TestGetListMoviesByListIdsGroupsAndOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	first := testutil.CreateList(t, db, 1, "ranked", 300, 100)
	second := testutil.CreateList(t, db, 2, "single", 200)

	repo := NewListRepository(db)
	byList, err := repo.GetListMoviesByListIds([]int64{first.Id, second.Id})
	if err != nil {
		t.Fatalf("GetListMoviesByListIds failed: %v", err)
	}
	if len(byList) != 2 {
		t.Fatalf("Expected 2 lists, got %v", len(byList))
	}

	firstMovies := byList[first.Id]
	if len(firstMovies) != 2 || firstMovies[0].TmdbId != 300 || firstMovies[1].TmdbId != 100 {
		t.Fatalf("Expected rank order preserved, got %+v", firstMovies)
	}
	secondMovies := byList[second.Id]
	if len(secondMovies) != 1 || secondMovies[0].TmdbId != 200 {
		t.Fatalf("Unexpected movies for second list: %+v", secondMovies)
	}

	empty, err := repo.GetListMoviesByListIds(nil)
	if err != nil {
		t.Fatalf("GetListMoviesByListIds with no ids failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("Expected empty result, got %+v", empty)
	}
}
