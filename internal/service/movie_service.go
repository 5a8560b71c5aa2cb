package service

import (
	"context"
	"fmt"
	"movieclub_api/configs"
	"movieclub_api/internal/repository"
	"movieclub_api/model"
	errorHandler "movieclub_api/pkg/error"
	"time"

	"github.com/google/uuid"
)

type IMovieService interface {
	ToggleSeen(userId int64, tmdbId int64, seen bool) error
	EnqueueHydration(tmdbIds []int64) (string, int)
	UpsertAward(tmdbId int64, req *model.UpsertAwardReq) error
	Close()
}

type MovieService struct {
	movieRepo      repository.IMovieRepository
	tmdbClient     ITmdbClient
	hydrationQueue IHydrationQueue
}

func NewMovieService(movieRepo repository.IMovieRepository, tmdbClient ITmdbClient) *MovieService {
	conf := configs.GetConfigs()
	svc := &MovieService{
		movieRepo:      movieRepo,
		tmdbClient:     tmdbClient,
		hydrationQueue: NewHydrationQueue(conf.HydrationWorkers, conf.HydrationQueueSize, conf.HydrationRatePerSec),
	}
	svc.hydrationQueue.Start(svc.hydrateItem, 2*time.Second)
	return svc
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) ToggleSeen(userId int64, tmdbId int64, seen bool) error {
	if seen {
		return m.movieRepo.MarkSeen(userId, tmdbId, time.Now().UTC())
	}
	return m.movieRepo.UnmarkSeen(userId, tmdbId)
}

func (m *MovieService) UpsertAward(tmdbId int64, req *model.UpsertAwardReq) error {
	return m.movieRepo.UpsertAward(&model.MovieAward{
		TmdbId:      tmdbId,
		Nominations: req.Nominations,
		Wins:        req.Wins,
		Categories:  encodeAwardCategories(req.Categories),
	})
}

//------------------------------------------
//------------------------------------------

// EnqueueHydration queues background metadata fetches for the given titles
// and returns immediately, the caller's response never waits on it. Titles
// that are already hydrated are skipped.
func (m *MovieService) EnqueueHydration(tmdbIds []int64) (string, int) {
	batchId := uuid.NewString()

	movies, err := m.movieRepo.GetMovies(tmdbIds)
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("hydration: loading movies for batch %v failed: %v", batchId, err), err)
		return batchId, 0
	}
	hydrated := make(map[int64]bool, len(movies))
	for _, movie := range movies {
		if !movie.HydratedAt.IsZero() {
			hydrated[movie.TmdbId] = true
		}
	}

	queued := 0
	for _, tmdbId := range tmdbIds {
		if hydrated[tmdbId] {
			continue
		}
		_, err := m.hydrationQueue.Enqueue(HydrationItem{TmdbId: tmdbId, BatchId: batchId})
		if err != nil {
			errorHandler.SaveError(fmt.Sprintf("hydration: queue overflow, dropping batch %v after %v items", batchId, queued), err)
			break
		}
		queued++
	}
	return batchId, queued
}

// hydrateItem runs on the queue workers. Failures are per-item, one broken
// title never aborts the rest of a batch.
func (m *MovieService) hydrateItem(wid int, item HydrationItem) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// a cached result from an earlier hydration saves the external call
	if cached, cacheErr := GetMovieDataCache(item.TmdbId); cacheErr == nil && cached != nil && !cached.HydratedAt.IsZero() {
		if err := m.movieRepo.SaveHydrated(cached); err != nil {
			errorHandler.SaveError(fmt.Sprintf("hydration: saving cached tmdbId %v failed: %v", item.TmdbId, err), err)
		}
		return
	}

	movie, err := m.tmdbClient.GetMovieDetails(ctx, item.TmdbId)
	if err != nil {
		// one retry, the metadata source drops requests under load
		movie, err = m.tmdbClient.GetMovieDetails(ctx, item.TmdbId)
	}
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("hydration: fetching tmdbId %v (batch %v) failed: %v", item.TmdbId, item.BatchId, err), err)
		return
	}

	if err = m.movieRepo.SaveHydrated(movie); err != nil {
		errorHandler.SaveError(fmt.Sprintf("hydration: saving tmdbId %v failed: %v", item.TmdbId, err), err)
		return
	}

	setMovieDataCache(movie)
}

func (m *MovieService) Close() {
	m.hydrationQueue.Close()
}
