package repository

import (
	"errors"
	"movieclub_api/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IMeetupRepository interface {
	Transaction(fn func(txRepo IMeetupRepository) error) error
	GetNextOpenMeetup(now time.Time) (*model.Meetup, error)
	LockMeetup(meetupId int64) error
	GetMeetup(meetupId int64) (*model.Meetup, error)
	GetMeetups() ([]model.Meetup, error)
	CreateMeetup(meetup *model.Meetup) error
	UpdateMeetupDate(meetupId int64, date time.Time) error
	SetMeetupList(meetupId int64, listId *int64) error
	DeleteMeetup(meetupId int64) error
	DeleteVotesForMeetup(meetupId int64) error
	DeleteNominationsForMeetup(meetupId int64) error
	ListExists(listId int64) (bool, error)
	IsListLinked(listId int64) (bool, error)
	GetUnlinkedLists() ([]model.MovieList, error)
	GetUserNomination(userId int64, meetupId int64) (*model.Nomination, error)
	CreateNomination(nomination *model.Nomination) error
	DeleteNomination(userId int64, meetupId int64) error
	GetNominationsForMeetup(meetupId int64) ([]model.Nomination, error)
	CountVotesByOthers(listId int64, meetupId int64, excludeUserId int64) (int64, error)
	UserHasVote(listId int64, userId int64, meetupId int64) (bool, error)
	CountUserVotes(userId int64, meetupId int64) (int64, error)
	CreateVote(vote *model.Vote) error
	DeleteUserVotes(listId int64, userId int64, meetupId int64) error
	CountListVotes(listId int64, meetupId int64) (int64, error)
	CountListAllTimeVotes(listId int64) (int64, error)
	CountListVotesBefore(listId int64, meetupId int64, cutoff time.Time) (int64, error)
}

type MeetupRepository struct {
	db *gorm.DB
}

func NewMeetupRepository(db *gorm.DB) *MeetupRepository {
	return &MeetupRepository{db: db}
}

//------------------------------------------
//------------------------------------------

// Transaction runs fn against a tx-scoped repository so read-then-write
// sequences observe one consistent snapshot.
func (r *MeetupRepository) Transaction(fn func(txRepo IMeetupRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&MeetupRepository{db: tx})
	})
}

//------------------------------------------
//------------------------------------------

func (r *MeetupRepository) GetNextOpenMeetup(now time.Time) (*model.Meetup, error) {
	var meetup model.Meetup
	err := r.db.
		Model(&model.Meetup{}).
		Where("\"movieListId\" IS NULL AND \"date\" > ?", now).
		Order("\"date\" ASC").
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

// LockMeetup takes the meetup row's write lock inside the current transaction
// so concurrent read-then-write sequences on one meetup serialize. sqlite has
// no FOR UPDATE, a self-assigning update takes the lock on both drivers.
func (r *MeetupRepository) LockMeetup(meetupId int64) error {
	return r.db.
		Model(&model.Meetup{}).
		Where("id = ?", meetupId).
		Update("createdAt", gorm.Expr("\"createdAt\"")).
		Error
}

func (r *MeetupRepository) GetMeetup(meetupId int64) (*model.Meetup, error) {
	var meetup model.Meetup
	err := r.db.
		Model(&model.Meetup{}).
		Where("id = ?", meetupId).
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

func (r *MeetupRepository) GetMeetups() ([]model.Meetup, error) {
	var meetups []model.Meetup
	err := r.db.
		Model(&model.Meetup{}).
		Order("\"date\" DESC").
		Find(&meetups).
		Error
	return meetups, err
}

func (r *MeetupRepository) CreateMeetup(meetup *model.Meetup) error {
	return r.db.Create(meetup).Error
}

func (r *MeetupRepository) UpdateMeetupDate(meetupId int64, date time.Time) error {
	return r.db.
		Model(&model.Meetup{}).
		Where("id = ?", meetupId).
		Update("date", date).
		Error
}

func (r *MeetupRepository) SetMeetupList(meetupId int64, listId *int64) error {
	return r.db.
		Model(&model.Meetup{}).
		Where("id = ?", meetupId).
		Update("movieListId", listId).
		Error
}

func (r *MeetupRepository) DeleteMeetup(meetupId int64) error {
	return r.db.
		Where("id = ?", meetupId).
		Delete(&model.Meetup{}).
		Error
}

func (r *MeetupRepository) DeleteVotesForMeetup(meetupId int64) error {
	return r.db.
		Where("\"meetupId\" = ?", meetupId).
		Delete(&model.Vote{}).
		Error
}

func (r *MeetupRepository) DeleteNominationsForMeetup(meetupId int64) error {
	return r.db.
		Where("\"meetupId\" = ?", meetupId).
		Delete(&model.Nomination{}).
		Error
}

//------------------------------------------
//------------------------------------------

func (r *MeetupRepository) ListExists(listId int64) (bool, error) {
	var count int64
	err := r.db.
		Model(&model.MovieList{}).
		Where("id = ?", listId).
		Count(&count).
		Error
	return count > 0, err
}

func (r *MeetupRepository) IsListLinked(listId int64) (bool, error) {
	var count int64
	err := r.db.
		Model(&model.Meetup{}).
		Where("\"movieListId\" = ?", listId).
		Count(&count).
		Error
	return count > 0, err
}

func (r *MeetupRepository) GetUnlinkedLists() ([]model.MovieList, error) {
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

//------------------------------------------
//------------------------------------------

func (r *MeetupRepository) GetUserNomination(userId int64, meetupId int64) (*model.Nomination, error) {
	var nomination model.Nomination
	err := r.db.
		Model(&model.Nomination{}).
		Where("\"userId\" = ? AND \"meetupId\" = ?", userId, meetupId).
		First(&nomination).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &nomination, nil
}

func (r *MeetupRepository) CreateNomination(nomination *model.Nomination) error {
	return r.db.Create(nomination).Error
}

func (r *MeetupRepository) DeleteNomination(userId int64, meetupId int64) error {
	return r.db.
		Where("\"userId\" = ? AND \"meetupId\" = ?", userId, meetupId).
		Delete(&model.Nomination{}).
		Error
}

func (r *MeetupRepository) GetNominationsForMeetup(meetupId int64) ([]model.Nomination, error) {
	var nominations []model.Nomination
	err := r.db.
		Model(&model.Nomination{}).
		Where("\"meetupId\" = ?", meetupId).
		Find(&nominations).
		Error
	return nominations, err
}

//------------------------------------------
//------------------------------------------

func (r *MeetupRepository) CountVotesByOthers(listId int64, meetupId int64, excludeUserId int64) (int64, error) {
	var count int64
	err := r.db.
		Model(&model.Vote{}).
		Where("\"movieListId\" = ? AND \"meetupId\" = ? AND \"userId\" != ?", listId, meetupId, excludeUserId).
		Count(&count).
		Error
	return count, err
}

func (r *MeetupRepository) UserHasVote(listId int64, userId int64, meetupId int64) (bool, error) {
	var count int64
	err := r.db.
		Model(&model.Vote{}).
		Where("\"movieListId\" = ? AND \"userId\" = ? AND \"meetupId\" = ?", listId, userId, meetupId).
		Count(&count).
		Error
	return count > 0, err
}

func (r *MeetupRepository) CountUserVotes(userId int64, meetupId int64) (int64, error) {
	var count int64
	err := r.db.
		Model(&model.Vote{}).
		Where("\"userId\" = ? AND \"meetupId\" = ?", userId, meetupId).
		Count(&count).
		Error
	return count, err
}

func (r *MeetupRepository) CreateVote(vote *model.Vote) error {
	// unique index makes concurrent duplicates a no-op instead of an error
	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(vote).
		Error
}

func (r *MeetupRepository) DeleteUserVotes(listId int64, userId int64, meetupId int64) error {
	return r.db.
		Where("\"movieListId\" = ? AND \"userId\" = ? AND \"meetupId\" = ?", listId, userId, meetupId).
		Delete(&model.Vote{}).
		Error
}

func (r *MeetupRepository) CountListVotes(listId int64, meetupId int64) (int64, error) {
	var count int64
	err := r.db.
		Model(&model.Vote{}).
		Where("\"movieListId\" = ? AND \"meetupId\" = ?", listId, meetupId).
		Count(&count).
		Error
	return count, err
}

func (r *MeetupRepository) CountListAllTimeVotes(listId int64) (int64, error) {
	var count int64
	err := r.db.
		Model(&model.Vote{}).
		Where("\"movieListId\" = ?", listId).
		Count(&count).
		Error
	return count, err
}

func (r *MeetupRepository) CountListVotesBefore(listId int64, meetupId int64, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.
		Model(&model.Vote{}).
		Where("\"movieListId\" = ? AND \"meetupId\" = ? AND \"createdAt\" <= ?", listId, meetupId, cutoff).
		Count(&count).
		Error
	return count, err
}
