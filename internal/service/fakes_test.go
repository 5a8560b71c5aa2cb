package service

import (
	"context"
	"movieclub_api/model"
)

// fakeMovieService records hydration requests instead of running workers.
type fakeMovieService struct {
	enqueued [][]int64
	seen     map[int64]map[int64]bool
}

func newFakeMovieService() *fakeMovieService {
	return &fakeMovieService{seen: map[int64]map[int64]bool{}}
}

func (f *fakeMovieService) ToggleSeen(userId int64, tmdbId int64, seen bool) error {
	if f.seen[userId] == nil {
		f.seen[userId] = map[int64]bool{}
	}
	f.seen[userId][tmdbId] = seen
	return nil
}

func (f *fakeMovieService) EnqueueHydration(tmdbIds []int64) (string, int) {
	f.enqueued = append(f.enqueued, tmdbIds)
	return "test-batch", len(tmdbIds)
}

func (f *fakeMovieService) UpsertAward(tmdbId int64, req *model.UpsertAwardReq) error {
	return nil
}

func (f *fakeMovieService) Close() {}

// fakeTmdbClient serves canned responses without the network.
type fakeTmdbClient struct {
	details   map[int64]*model.Movie
	listItems map[string][]TmdbListItem
	err       error
}

func (f *fakeTmdbClient) GetMovieDetails(ctx context.Context, tmdbId int64) (*model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	if movie, ok := f.details[tmdbId]; ok {
		return movie, nil
	}
	return nil, ErrTmdbNotFound
}

func (f *fakeTmdbClient) GetListItems(ctx context.Context, externalListId string) ([]TmdbListItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if items, ok := f.listItems[externalListId]; ok {
		return items, nil
	}
	return nil, ErrTmdbNotFound
}
