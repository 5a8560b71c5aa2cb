package repository

import (
	"errors"
	"movieclub_api/model"

	"gorm.io/gorm"
)

type IListRepository interface {
	Transaction(fn func(txRepo IListRepository) error) error
	CreateList(list *model.MovieList, movies []model.MovieListMovie) error
	GetList(listId int64) (*model.MovieList, error)
	GetListMoviesByListIds(listIds []int64) (map[int64][]model.MovieListMovie, error)
	GetOpenLists() ([]model.MovieList, error)
	GetArchivedLists() ([]ArchivedListRes, error)
	GetListsByIds(listIds []int64) ([]model.MovieList, error)
	UpdateList(list *model.MovieList, movies []model.MovieListMovie) error
	DeleteList(listId int64) error
	GetListMeetup(listId int64) (*model.Meetup, error)
	CreateComment(comment *model.Comment) error
	GetComments(listId int64) ([]model.Comment, error)
	GetComment(commentId int64) (*model.Comment, error)
	DeleteComment(commentId int64) error
	GetCommentCounts(listIds []int64) (map[int64]int64, error)
	GetAllTimeVotes(listIds []int64) (map[int64]int64, error)
	GetCurrentVotes(listIds []int64, meetupId int64) (map[int64]int64, error)
	GetNominatedBy(listIds []int64, meetupId int64) (map[int64][]int64, error)
}

type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

//------------------------------------------
//------------------------------------------

// ArchivedListRes pairs a list with the meetup it was watched at.
type ArchivedListRes struct {
	List   model.MovieList
	Meetup model.Meetup
}

type listCountRes struct {
	MovieListId int64 `gorm:"column:movieListId"`
	Count       int64 `gorm:"column:count"`
}

//------------------------------------------
//------------------------------------------

func (r *ListRepository) Transaction(fn func(txRepo IListRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ListRepository{db: tx})
	})
}

func (r *ListRepository) CreateList(list *model.MovieList, movies []model.MovieListMovie) error {
	if err := r.db.Create(list).Error; err != nil {
		return err
	}
	for i := range movies {
		movies[i].MovieListId = list.Id
	}
	if len(movies) == 0 {
		return nil
	}
	return r.db.Create(&movies).Error
}

func (r *ListRepository) GetList(listId int64) (*model.MovieList, error) {
	var list model.MovieList
	err := r.db.
		Model(&model.MovieList{}).
		Where("id = ?", listId).
		First(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// GetListMoviesByListIds loads the ranked join rows for many lists in one
// query, grouped per list with rank order preserved.
func (r *ListRepository) GetListMoviesByListIds(listIds []int64) (map[int64][]model.MovieListMovie, error) {
	res := make(map[int64][]model.MovieListMovie, len(listIds))
	if len(listIds) == 0 {
		return res, nil
	}
	var movies []model.MovieListMovie
	err := r.db.
		Model(&model.MovieListMovie{}).
		Where("\"movieListId\" IN ?", listIds).
		Order("\"movieListId\" ASC, \"order\" ASC").
		Find(&movies).
		Error
	if err != nil {
		return nil, err
	}
	for _, movie := range movies {
		res[movie.MovieListId] = append(res[movie.MovieListId], movie)
	}
	return res, nil
}

// GetOpenLists returns lists not linked to any meetup, oldest first.
func (r *ListRepository) GetOpenLists() ([]model.MovieList, error) {
	var lists []model.MovieList
	err := r.db.
		Model(&model.MovieList{}).
		Where("id NOT IN (?)",
			r.db.Model(&model.Meetup{}).
				Select("\"movieListId\"").
				Where("\"movieListId\" IS NOT NULL"),
		).
		Order("\"createdAt\" ASC").
		Find(&lists).
		Error
	return lists, err
}

func (r *ListRepository) GetArchivedLists() ([]ArchivedListRes, error) {
	var meetups []model.Meetup
	err := r.db.
		Model(&model.Meetup{}).
		Where("\"movieListId\" IS NOT NULL").
		Order("\"date\" DESC").
		Find(&meetups).
		Error
	if err != nil {
		return nil, err
	}

	listIds := make([]int64, 0, len(meetups))
	for _, m := range meetups {
		listIds = append(listIds, *m.MovieListId)
	}
	lists, err := r.GetListsByIds(listIds)
	if err != nil {
		return nil, err
	}
	listById := make(map[int64]model.MovieList, len(lists))
	for _, l := range lists {
		listById[l.Id] = l
	}

	res := make([]ArchivedListRes, 0, len(meetups))
	for _, m := range meetups {
		if list, ok := listById[*m.MovieListId]; ok {
			res = append(res, ArchivedListRes{List: list, Meetup: m})
		}
	}
	return res, nil
}

func (r *ListRepository) GetListsByIds(listIds []int64) ([]model.MovieList, error) {
	if len(listIds) == 0 {
		return []model.MovieList{}, nil
	}
	var lists []model.MovieList
	err := r.db.
		Model(&model.MovieList{}).
		Where("id IN ?", listIds).
		Find(&lists).
		Error
	return lists, err
}

func (r *ListRepository) UpdateList(list *model.MovieList, movies []model.MovieListMovie) error {
	err := r.db.
		Model(&model.MovieList{}).
		Where("id = ?", list.Id).
		Updates(map[string]interface{}{
			"title":       list.Title,
			"description": list.Description,
		}).
		Error
	if err != nil {
		return err
	}

	err = r.db.
		Where("\"movieListId\" = ?", list.Id).
		Delete(&model.MovieListMovie{}).
		Error
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		return nil
	}
	for i := range movies {
		movies[i].MovieListId = list.Id
	}
	return r.db.Create(&movies).Error
}

func (r *ListRepository) DeleteList(listId int64) error {
	// join rows cascade, votes/nominations/comments are removed explicitly so
	// sqlite test databases behave the same as postgres
	if err := r.db.Where("\"movieListId\" = ?", listId).Delete(&model.Vote{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("\"movieListId\" = ?", listId).Delete(&model.Nomination{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("\"movieListId\" = ?", listId).Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("\"movieListId\" = ?", listId).Delete(&model.MovieListMovie{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", listId).Delete(&model.MovieList{}).Error
}

func (r *ListRepository) GetListMeetup(listId int64) (*model.Meetup, error) {
	var meetup model.Meetup
	err := r.db.
		Model(&model.Meetup{}).
		Where("\"movieListId\" = ?", listId).
		First(&meetup).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meetup, nil
}

//------------------------------------------
//------------------------------------------

func (r *ListRepository) CreateComment(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *ListRepository) GetComments(listId int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.
		Model(&model.Comment{}).
		Where("\"movieListId\" = ?", listId).
		Order("\"createdAt\" ASC").
		Find(&comments).
		Error
	return comments, err
}

func (r *ListRepository) GetComment(commentId int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.
		Model(&model.Comment{}).
		Where("id = ?", commentId).
		First(&comment).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *ListRepository) DeleteComment(commentId int64) error {
	return r.db.
		Where("id = ?", commentId).
		Delete(&model.Comment{}).
		Error
}

func (r *ListRepository) GetCommentCounts(listIds []int64) (map[int64]int64, error) {
	if len(listIds) == 0 {
		return map[int64]int64{}, nil
	}
	var rows []listCountRes
	err := r.db.
		Model(&model.Comment{}).
		Select("\"movieListId\", COUNT(*) as count").
		Where("\"movieListId\" IN ?", listIds).
		Group("movieListId").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return countRowsToMap(rows), nil
}

//------------------------------------------
//------------------------------------------

func (r *ListRepository) GetAllTimeVotes(listIds []int64) (map[int64]int64, error) {
	if len(listIds) == 0 {
		return map[int64]int64{}, nil
	}
	var rows []listCountRes
	err := r.db.
		Model(&model.Vote{}).
		Select("\"movieListId\", COUNT(*) as count").
		Where("\"movieListId\" IN ?", listIds).
		Group("movieListId").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return countRowsToMap(rows), nil
}

func (r *ListRepository) GetCurrentVotes(listIds []int64, meetupId int64) (map[int64]int64, error) {
	if len(listIds) == 0 {
		return map[int64]int64{}, nil
	}
	var rows []listCountRes
	err := r.db.
		Model(&model.Vote{}).
		Select("\"movieListId\", COUNT(*) as count").
		Where("\"movieListId\" IN ? AND \"meetupId\" = ?", listIds, meetupId).
		Group("movieListId").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return countRowsToMap(rows), nil
}

func (r *ListRepository) GetNominatedBy(listIds []int64, meetupId int64) (map[int64][]int64, error) {
	if len(listIds) == 0 {
		return map[int64][]int64{}, nil
	}
	var nominations []model.Nomination
	err := r.db.
		Model(&model.Nomination{}).
		Where("\"movieListId\" IN ? AND \"meetupId\" = ?", listIds, meetupId).
		Find(&nominations).
		Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]int64, len(nominations))
	for _, n := range nominations {
		res[n.MovieListId] = append(res[n.MovieListId], n.UserId)
	}
	return res, nil
}

func countRowsToMap(rows []listCountRes) map[int64]int64 {
	res := make(map[int64]int64, len(rows))
	for _, row := range rows {
		res[row.MovieListId] = row.Count
	}
	return res
}
