package service

import (
	"errors"
	"movieclub_api/internal/repository"
	"movieclub_api/model"
	"time"
)

var (
	ErrForbidden       = errors.New("forbidden")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidInput    = errors.New("invalid input")
)

type IListService interface {
	GetOpenLists(userId int64) ([]model.ListRes, error)
	GetArchivedLists(userId int64) ([]model.ListRes, error)
	GetNominatedLists(userId int64) ([]model.ListRes, error)
	GetList(userId int64, listId int64) (*model.ListRes, error)
	CreateList(userId int64, req *model.CreateListReq) (*model.ListRes, error)
	UpdateList(userId int64, isAdmin bool, listId int64, req *model.CreateListReq) (*model.ListRes, error)
	DeleteList(userId int64, isAdmin bool, listId int64) error
	GetComments(listId int64) ([]model.Comment, error)
	AddComment(userId int64, listId int64, body string) (*model.Comment, error)
	DeleteComment(userId int64, isAdmin bool, commentId int64) error
}

type ListService struct {
	listRepo   repository.IListRepository
	meetupRepo repository.IMeetupRepository
	movieRepo  repository.IMovieRepository
	movieSvc   IMovieService
}

func NewListService(
	listRepo repository.IListRepository,
	meetupRepo repository.IMeetupRepository,
	movieRepo repository.IMovieRepository,
	movieSvc IMovieService,
) *ListService {
	return &ListService{
		listRepo:   listRepo,
		meetupRepo: meetupRepo,
		movieRepo:  movieRepo,
		movieSvc:   movieSvc,
	}
}

//------------------------------------------
//------------------------------------------

func (l *ListService) GetOpenLists(userId int64) ([]model.ListRes, error) {
	lists, err := l.listRepo.GetOpenLists()
	if err != nil {
		return nil, err
	}
	res, err := l.enrichLists(lists, nil, userId)
	if err != nil {
		return nil, err
	}
	sortListsForDisplay(res)
	return res, nil
}

func (l *ListService) GetArchivedLists(userId int64) ([]model.ListRes, error) {
	archived, err := l.listRepo.GetArchivedLists()
	if err != nil {
		return nil, err
	}
	lists := make([]model.MovieList, 0, len(archived))
	meetupByList := make(map[int64]model.Meetup, len(archived))
	for _, a := range archived {
		lists = append(lists, a.List)
		meetupByList[a.List.Id] = a.Meetup
	}
	res, err := l.enrichLists(lists, meetupByList, userId)
	if err != nil {
		return nil, err
	}
	// GetArchivedLists already orders by meetup date desc, keep that order
	return res, nil
}

func (l *ListService) GetNominatedLists(userId int64) ([]model.ListRes, error) {
	meetup, err := l.meetupRepo.GetNextOpenMeetup(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if meetup == nil {
		return []model.ListRes{}, nil
	}
	nominations, err := l.meetupRepo.GetNominationsForMeetup(meetup.Id)
	if err != nil {
		return nil, err
	}
	listIds := make([]int64, 0, len(nominations))
	for _, n := range nominations {
		listIds = append(listIds, n.MovieListId)
	}
	lists, err := l.listRepo.GetListsByIds(listIds)
	if err != nil {
		return nil, err
	}
	res, err := l.enrichLists(lists, nil, userId)
	if err != nil {
		return nil, err
	}
	sortListsForDisplay(res)
	return res, nil
}

func (l *ListService) GetList(userId int64, listId int64) (*model.ListRes, error) {
	list, err := l.listRepo.GetList(listId)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	res, err := l.enrichLists([]model.MovieList{*list}, nil, userId)
	if err != nil {
		return nil, err
	}
	return &res[0], nil
}

//------------------------------------------
//------------------------------------------

func (l *ListService) CreateList(userId int64, req *model.CreateListReq) (*model.ListRes, error) {
	if req.Title == "" {
		return nil, ErrInvalidInput
	}
	now := time.Now().UTC()

	list := &model.MovieList{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userId,
		CreatedAt:   now,
	}
	movies, stubs := buildListMovies(req.TmdbIds, now)

	if err := l.movieRepo.UpsertStubs(stubs); err != nil {
		return nil, err
	}
	err := l.listRepo.Transaction(func(tx repository.IListRepository) error {
		return tx.CreateList(list, movies)
	})
	if err != nil {
		return nil, err
	}

	l.movieSvc.EnqueueHydration(req.TmdbIds)

	return l.GetList(userId, list.Id)
}

func (l *ListService) UpdateList(userId int64, isAdmin bool, listId int64, req *model.CreateListReq) (*model.ListRes, error) {
	if req.Title == "" {
		return nil, ErrInvalidInput
	}
	list, err := l.listRepo.GetList(listId)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	if list.CreatedBy != userId && !isAdmin {
		return nil, ErrForbidden
	}
	now := time.Now().UTC()

	list.Title = req.Title
	list.Description = req.Description
	movies, stubs := buildListMovies(req.TmdbIds, now)

	if err = l.movieRepo.UpsertStubs(stubs); err != nil {
		return nil, err
	}
	err = l.listRepo.Transaction(func(tx repository.IListRepository) error {
		return tx.UpdateList(list, movies)
	})
	if err != nil {
		return nil, err
	}

	l.movieSvc.EnqueueHydration(req.TmdbIds)

	return l.GetList(userId, listId)
}

// DeleteList removes a list unless it already belongs to a meetup or its
// active nomination carries votes from other members (the same lock rule as
// retracting a nomination).
func (l *ListService) DeleteList(userId int64, isAdmin bool, listId int64) error {
	list, err := l.listRepo.GetList(listId)
	if err != nil {
		return err
	}
	if list == nil {
		return ErrListNotFound
	}
	if list.CreatedBy != userId && !isAdmin {
		return ErrForbidden
	}

	meetup, err := l.listRepo.GetListMeetup(listId)
	if err != nil {
		return err
	}
	if meetup != nil {
		return ErrListLinked
	}

	openMeetup, err := l.meetupRepo.GetNextOpenMeetup(time.Now().UTC())
	if err != nil {
		return err
	}
	if openMeetup != nil {
		othersVotes, err := l.meetupRepo.CountVotesByOthers(listId, openMeetup.Id, userId)
		if err != nil {
			return err
		}
		if othersVotes > 0 {
			return ErrListLocked
		}
	}

	return l.listRepo.Transaction(func(tx repository.IListRepository) error {
		return tx.DeleteList(listId)
	})
}

//------------------------------------------
//------------------------------------------

func (l *ListService) GetComments(listId int64) ([]model.Comment, error) {
	list, err := l.listRepo.GetList(listId)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return l.listRepo.GetComments(listId)
}

func (l *ListService) AddComment(userId int64, listId int64, body string) (*model.Comment, error) {
	if body == "" {
		return nil, ErrInvalidInput
	}
	list, err := l.listRepo.GetList(listId)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	comment := &model.Comment{
		MovieListId: listId,
		UserId:      userId,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}
	if err = l.listRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (l *ListService) DeleteComment(userId int64, isAdmin bool, commentId int64) error {
	comment, err := l.listRepo.GetComment(commentId)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserId != userId && !isAdmin {
		return ErrForbidden
	}
	return l.listRepo.DeleteComment(commentId)
}

//------------------------------------------
//------------------------------------------

// enrichLists attaches movie-level flags and list-level aggregates. When
// meetupByList is set (archive view) meetup info comes from there, otherwise
// current-vote aggregates run against the next open meetup.
func (l *ListService) enrichLists(lists []model.MovieList, meetupByList map[int64]model.Meetup, userId int64) ([]model.ListRes, error) {
	if len(lists) == 0 {
		return []model.ListRes{}, nil
	}

	listIds := make([]int64, 0, len(lists))
	for _, list := range lists {
		listIds = append(listIds, list.Id)
	}

	moviesByList, err := l.listRepo.GetListMoviesByListIds(listIds)
	if err != nil {
		return nil, err
	}
	tmdbIdSet := map[int64]bool{}
	allTmdbIds := []int64{}
	for _, listId := range listIds {
		for _, lm := range moviesByList[listId] {
			if !tmdbIdSet[lm.TmdbId] {
				tmdbIdSet[lm.TmdbId] = true
				allTmdbIds = append(allTmdbIds, lm.TmdbId)
			}
		}
	}

	movies, err := l.movieRepo.GetMovies(allTmdbIds)
	if err != nil {
		return nil, err
	}
	movieById := make(map[int64]model.Movie, len(movies))
	for _, movie := range movies {
		movieById[movie.TmdbId] = movie
	}

	data, err := l.loadEnrichmentData(allTmdbIds)
	if err != nil {
		return nil, err
	}

	allTimeVotes, err := l.listRepo.GetAllTimeVotes(listIds)
	if err != nil {
		return nil, err
	}
	commentCounts, err := l.listRepo.GetCommentCounts(listIds)
	if err != nil {
		return nil, err
	}

	currentVotes := map[int64]int64{}
	nominatedBy := map[int64][]int64{}
	openMeetup, err := l.meetupRepo.GetNextOpenMeetup(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if openMeetup != nil {
		currentVotes, err = l.listRepo.GetCurrentVotes(listIds, openMeetup.Id)
		if err != nil {
			return nil, err
		}
		nominatedBy, err = l.listRepo.GetNominatedBy(listIds, openMeetup.Id)
		if err != nil {
			return nil, err
		}
	}

	res := make([]model.ListRes, 0, len(lists))
	for _, list := range lists {
		listMovies := moviesByList[list.Id]
		orders := make(map[int64]int, len(listMovies))
		listMovieRecords := make([]model.Movie, 0, len(listMovies))
		for _, lm := range listMovies {
			orders[lm.TmdbId] = lm.Order
			if movie, ok := movieById[lm.TmdbId]; ok {
				listMovieRecords = append(listMovieRecords, movie)
			}
		}

		nominators := nominatedBy[list.Id]
		if nominators == nil {
			nominators = []int64{}
		}
		listRes := model.ListRes{
			MovieList:    list,
			Movies:       buildEnrichedMovies(listMovieRecords, orders, data, userId, false),
			AllTimeVotes: allTimeVotes[list.Id],
			CurrentVotes: currentVotes[list.Id],
			CommentCount: commentCounts[list.Id],
			NominatedBy:  nominators,
		}
		if meetupByList != nil {
			if meetup, ok := meetupByList[list.Id]; ok {
				meetupId := meetup.Id
				meetupDate := meetup.Date
				listRes.MeetupId = &meetupId
				listRes.MeetupDate = &meetupDate
			}
		}
		res = append(res, listRes)
	}
	return res, nil
}

func (l *ListService) loadEnrichmentData(tmdbIds []int64) (*enrichmentData, error) {
	seenBy, err := l.movieRepo.GetSeenBy(tmdbIds)
	if err != nil {
		return nil, err
	}
	inMeetup, err := l.movieRepo.GetMeetupMovieIds()
	if err != nil {
		return nil, err
	}
	awards, err := l.movieRepo.GetAwards(tmdbIds)
	if err != nil {
		return nil, err
	}
	return &enrichmentData{
		seenBy:        seenBy,
		inMeetup:      inMeetup,
		inUnscheduled: map[int64]bool{},
		awards:        awards,
	}, nil
}

// buildListMovies turns the submitted tmdbId sequence into ranked join rows
// plus stub movie records, deduplicating while preserving submitted order.
func buildListMovies(tmdbIds []int64, now time.Time) ([]model.MovieListMovie, []model.Movie) {
	seen := make(map[int64]bool, len(tmdbIds))
	movies := make([]model.MovieListMovie, 0, len(tmdbIds))
	stubs := make([]model.Movie, 0, len(tmdbIds))
	order := 0
	for _, tmdbId := range tmdbIds {
		if tmdbId <= 0 || seen[tmdbId] {
			continue
		}
		seen[tmdbId] = true
		movies = append(movies, model.MovieListMovie{TmdbId: tmdbId, Order: order})
		stubs = append(stubs, model.Movie{TmdbId: tmdbId, Title: "", CreatedAt: now})
		order++
	}
	return movies, stubs
}
