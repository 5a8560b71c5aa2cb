package service

import (
	"movieclub_api/internal/repository"
	"movieclub_api/model"
	"movieclub_api/testutil"
	"testing"
	"time"
)

func TestHydrateItemSavesMetadata(t *testing.T) {
	db := testutil.SetupTestDB(t)
	movieRepo := repository.NewMovieRepository(db)
	testutil.CreateMovie(t, db, 700, "")

	hydrated := &model.Movie{TmdbId: 700, Title: "Hydrated", Runtime: 120, HydratedAt: time.Now().UTC()}
	svc := &MovieService{
		movieRepo:  movieRepo,
		tmdbClient: &fakeTmdbClient{details: map[int64]*model.Movie{700: hydrated}},
	}

	// no redis here, the cache lookup misses and the client is consulted
	svc.hydrateItem(0, HydrationItem{TmdbId: 700, BatchId: "batch"})

	movies, err := movieRepo.GetMovies([]int64{700})
	if err != nil {
		t.Fatalf("GetMovies failed: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Hydrated" || movies[0].HydratedAt.IsZero() {
		t.Fatalf("Expected hydrated metadata, got %+v", movies)
	}
}

func TestEnqueueHydrationSkipsHydrated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	movieRepo := repository.NewMovieRepository(db)
	testutil.CreateMovie(t, db, 1, "stub")
	testutil.CreateMovie(t, db, 2, "stub")
	err := movieRepo.SaveHydrated(&model.Movie{TmdbId: 1, Title: "done", HydratedAt: time.Now().UTC()})
	if err != nil {
		t.Fatalf("SaveHydrated failed: %v", err)
	}

	svc := &MovieService{
		movieRepo:      movieRepo,
		hydrationQueue: NewHydrationQueue(0, 10, 100),
	}
	_, queued := svc.EnqueueHydration([]int64{1, 2})
	if queued != 1 {
		t.Fatalf("Expected 1 queued item, got %v", queued)
	}
	item, ok := svc.hydrationQueue.Dequeue()
	if !ok || item.TmdbId != 2 {
		t.Fatalf("Expected only the stub queued, got %+v", item)
	}
}
