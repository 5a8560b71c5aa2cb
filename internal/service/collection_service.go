package service

import (
	"context"
	"errors"
	"movieclub_api/internal/repository"
	"movieclub_api/model"
	"time"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrNotSyncable        = errors.New("collection has no external list source")
	ErrExternalSource     = errors.New("external list source failed")
)

type ICollectionService interface {
	GetCollections(userId int64) ([]model.Collection, error)
	GetCollection(userId int64, collectionId int64) (*model.CollectionRes, error)
	CreateCollection(userId int64, isAdmin bool, req *model.CreateCollectionReq) (*model.Collection, error)
	UpdateCollection(userId int64, isAdmin bool, collectionId int64, req *model.CreateCollectionReq) error
	DeleteCollection(userId int64, isAdmin bool, collectionId int64) error
	SyncCollection(userId int64, isAdmin bool, collectionId int64) (*model.SyncRes, error)
}

type CollectionService struct {
	collectionRepo repository.ICollectionRepository
	movieRepo      repository.IMovieRepository
	tmdbClient     ITmdbClient
	movieSvc       IMovieService
}

func NewCollectionService(
	collectionRepo repository.ICollectionRepository,
	movieRepo repository.IMovieRepository,
	tmdbClient ITmdbClient,
	movieSvc IMovieService,
) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		movieRepo:      movieRepo,
		tmdbClient:     tmdbClient,
		movieSvc:       movieSvc,
	}
}

//------------------------------------------
//------------------------------------------

func (c *CollectionService) GetCollections(userId int64) ([]model.Collection, error) {
	return c.collectionRepo.GetCollections(userId)
}

func (c *CollectionService) GetCollection(userId int64, collectionId int64) (*model.CollectionRes, error) {
	collection, err := c.collectionRepo.GetCollection(collectionId)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}

	collectionMovies, err := c.collectionRepo.GetCollectionMovies(collectionId)
	if err != nil {
		return nil, err
	}
	tmdbIds := make([]int64, 0, len(collectionMovies))
	orders := make(map[int64]int, len(collectionMovies))
	for _, cm := range collectionMovies {
		tmdbIds = append(tmdbIds, cm.TmdbId)
		orders[cm.TmdbId] = cm.Order
	}

	movies, err := c.movieRepo.GetMovies(tmdbIds)
	if err != nil {
		return nil, err
	}

	seenBy, err := c.movieRepo.GetSeenBy(tmdbIds)
	if err != nil {
		return nil, err
	}
	inMeetup, err := c.movieRepo.GetMeetupMovieIds()
	if err != nil {
		return nil, err
	}
	inUnscheduled, err := c.movieRepo.GetUnscheduledListMovieIds()
	if err != nil {
		return nil, err
	}
	awards, err := c.movieRepo.GetAwards(tmdbIds)
	if err != nil {
		return nil, err
	}
	data := &enrichmentData{
		seenBy:        seenBy,
		inMeetup:      inMeetup,
		inUnscheduled: inUnscheduled,
		awards:        awards,
	}

	return &model.CollectionRes{
		Collection: *collection,
		Movies:     buildEnrichedMovies(movies, orders, data, userId, true),
	}, nil
}

//------------------------------------------
//------------------------------------------

func (c *CollectionService) CreateCollection(userId int64, isAdmin bool, req *model.CreateCollectionReq) (*model.Collection, error) {
	if req.Title == "" {
		return nil, ErrInvalidInput
	}
	if req.IsGlobal && !isAdmin {
		return nil, ErrForbidden
	}
	now := time.Now().UTC()

	collection := &model.Collection{
		Title:          req.Title,
		Description:    req.Description,
		CreatedBy:      userId,
		IsGlobal:       req.IsGlobal,
		ExternalListId: req.ExternalListId,
		CreatedAt:      now,
	}
	movies, stubs := buildCollectionMovies(req.TmdbIds, now)

	if err := c.movieRepo.UpsertStubs(stubs); err != nil {
		return nil, err
	}
	err := c.collectionRepo.Transaction(func(tx repository.ICollectionRepository) error {
		return tx.CreateCollection(collection, movies)
	})
	if err != nil {
		return nil, err
	}

	c.movieSvc.EnqueueHydration(req.TmdbIds)

	return collection, nil
}

func (c *CollectionService) UpdateCollection(userId int64, isAdmin bool, collectionId int64, req *model.CreateCollectionReq) error {
	if req.Title == "" {
		return ErrInvalidInput
	}
	collection, err := c.getOwnedCollection(userId, isAdmin, collectionId)
	if err != nil {
		return err
	}

	collection.Title = req.Title
	collection.Description = req.Description
	collection.ExternalListId = req.ExternalListId
	if isAdmin {
		collection.IsGlobal = req.IsGlobal
	}
	return c.collectionRepo.UpdateCollection(collection)
}

func (c *CollectionService) DeleteCollection(userId int64, isAdmin bool, collectionId int64) error {
	if _, err := c.getOwnedCollection(userId, isAdmin, collectionId); err != nil {
		return err
	}
	return c.collectionRepo.Transaction(func(tx repository.ICollectionRepository) error {
		return tx.DeleteCollection(collectionId)
	})
}

//------------------------------------------
//------------------------------------------

// SyncCollection re-pulls the movies from the external list source, replaces
// the join rows and leaves metadata hydration to the background workers.
func (c *CollectionService) SyncCollection(userId int64, isAdmin bool, collectionId int64) (*model.SyncRes, error) {
	collection, err := c.getOwnedCollection(userId, isAdmin, collectionId)
	if err != nil {
		return nil, err
	}
	if collection.ExternalListId == "" {
		return nil, ErrNotSyncable
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	items, err := c.tmdbClient.GetListItems(ctx, collection.ExternalListId)
	if err != nil {
		return nil, ErrExternalSource
	}

	now := time.Now().UTC()
	tmdbIds := make([]int64, 0, len(items))
	stubs := make([]model.Movie, 0, len(items))
	movies := make([]model.CollectionMovie, 0, len(items))
	seen := make(map[int64]bool, len(items))
	for _, item := range items {
		if item.TmdbId <= 0 || seen[item.TmdbId] {
			continue
		}
		seen[item.TmdbId] = true
		tmdbIds = append(tmdbIds, item.TmdbId)
		stubs = append(stubs, model.Movie{TmdbId: item.TmdbId, Title: item.Title, CreatedAt: now})
		movies = append(movies, model.CollectionMovie{TmdbId: item.TmdbId, Order: len(movies)})
	}

	if err = c.movieRepo.UpsertStubs(stubs); err != nil {
		return nil, err
	}

	removed := 0
	err = c.collectionRepo.Transaction(func(tx repository.ICollectionRepository) error {
		removed, err = tx.ReplaceCollectionMovies(collectionId, movies)
		return err
	})
	if err != nil {
		return nil, err
	}

	batchId, queued := c.movieSvc.EnqueueHydration(tmdbIds)

	return &model.SyncRes{
		BatchId: batchId,
		Added:   len(movies),
		Removed: removed,
		Queued:  queued,
	}, nil
}

//------------------------------------------
//------------------------------------------

func (c *CollectionService) getOwnedCollection(userId int64, isAdmin bool, collectionId int64) (*model.Collection, error) {
	collection, err := c.collectionRepo.GetCollection(collectionId)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}
	if collection.CreatedBy != userId && !isAdmin {
		return nil, ErrForbidden
	}
	return collection, nil
}

func buildCollectionMovies(tmdbIds []int64, now time.Time) ([]model.CollectionMovie, []model.Movie) {
	seen := make(map[int64]bool, len(tmdbIds))
	movies := make([]model.CollectionMovie, 0, len(tmdbIds))
	stubs := make([]model.Movie, 0, len(tmdbIds))
	for _, tmdbId := range tmdbIds {
		if tmdbId <= 0 || seen[tmdbId] {
			continue
		}
		seen[tmdbId] = true
		movies = append(movies, model.CollectionMovie{TmdbId: tmdbId, Order: len(movies)})
		stubs = append(stubs, model.Movie{TmdbId: tmdbId, Title: "", CreatedAt: now})
	}
	return movies, stubs
}
