package service

import (
	"errors"
	"fmt"
	"movieclub_api/configs"
	"movieclub_api/db"
	"movieclub_api/internal/repository"
	"movieclub_api/model"
	errorHandler "movieclub_api/pkg/error"
	"sort"
	"time"
)

// Expected business outcomes of the meetup lifecycle. These are returned as
// values, never panics, and handlers translate them to status codes.
var (
	ErrNoOpenMeetup     = errors.New("no open meetup")
	ErrVoteLimitReached = errors.New("vote limit for this meetup reached")
	ErrListLocked       = errors.New("list is locked by votes from other users")
	ErrListNotFound     = errors.New("list not found")
	ErrListLinked       = errors.New("list is already linked to a meetup")
	ErrMeetupNotFound   = errors.New("meetup not found")
)

type IMeetupService interface {
	GetNextOpenMeetup() (*model.Meetup, error)
	Nominate(userId int64, listId int64) error
	RetractNomination(userId int64, listId int64) error
	CastVote(userId int64, listId int64) (*model.VoteRes, error)
	RetractVote(userId int64, listId int64) (*model.VoteRes, error)
	ClosePolls(meetupId int64, bypassCutoff bool) *model.PickMovieRes
	GetMeetups() ([]model.Meetup, error)
	CreateMeetup(date time.Time) (*model.Meetup, error)
	UpdateMeetup(meetupId int64, req *model.UpdateMeetupReq) error
	DeleteMeetup(meetupId int64) error
}

type MeetupService struct {
	meetupRepo repository.IMeetupRepository
}

func NewMeetupService(meetupRepo repository.IMeetupRepository) *MeetupService {
	return &MeetupService{
		meetupRepo: meetupRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (m *MeetupService) GetNextOpenMeetup() (*model.Meetup, error) {
	return m.meetupRepo.GetNextOpenMeetup(time.Now().UTC())
}

// Nominate proposes a list for the next open meetup. A user holds at most one
// nomination per meetup, nominating another list swaps it and drops the votes
// the user cast for the old one.
func (m *MeetupService) Nominate(userId int64, listId int64) error {
	now := time.Now().UTC()
	return m.meetupRepo.Transaction(func(tx repository.IMeetupRepository) error {
		meetup, err := tx.GetNextOpenMeetup(now)
		if err != nil {
			return err
		}
		if meetup == nil {
			return ErrNoOpenMeetup
		}
		// serialize against concurrent nominates/votes on this meetup
		if err = tx.LockMeetup(meetup.Id); err != nil {
			return err
		}

		exists, err := tx.ListExists(listId)
		if err != nil {
			return err
		}
		if !exists {
			return ErrListNotFound
		}
		linked, err := tx.IsListLinked(listId)
		if err != nil {
			return err
		}
		if linked {
			return ErrListLinked
		}

		existing, err := tx.GetUserNomination(userId, meetup.Id)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.MovieListId == listId {
				return nil
			}
			// swap: the old nomination and the votes tied to it go away together
			if err = tx.DeleteUserVotes(existing.MovieListId, userId, meetup.Id); err != nil {
				return err
			}
			if err = tx.DeleteNomination(userId, meetup.Id); err != nil {
				return err
			}
		}

		err = tx.CreateNomination(&model.Nomination{
			MovieListId: listId,
			UserId:      userId,
			MeetupId:    meetup.Id,
			CreatedAt:   now,
		})
		if err != nil {
			// the list already holds a nomination for this meetup, treat the
			// overlapping nominate as a no-op
			if db.IsUniqueViolationError(err) {
				return nil
			}
			return err
		}
		return nil
	})
}

// RetractNomination removes the user's nomination unless other members have
// already voted for the list, in which case it is locked.
func (m *MeetupService) RetractNomination(userId int64, listId int64) error {
	now := time.Now().UTC()
	return m.meetupRepo.Transaction(func(tx repository.IMeetupRepository) error {
		meetup, err := tx.GetNextOpenMeetup(now)
		if err != nil {
			return err
		}
		if meetup == nil {
			return ErrNoOpenMeetup
		}

		othersVotes, err := tx.CountVotesByOthers(listId, meetup.Id, userId)
		if err != nil {
			return err
		}
		if othersVotes > 0 {
			return ErrListLocked
		}

		if err = tx.DeleteUserVotes(listId, userId, meetup.Id); err != nil {
			return err
		}

		nomination, err := tx.GetUserNomination(userId, meetup.Id)
		if err != nil {
			return err
		}
		if nomination != nil && nomination.MovieListId == listId {
			return tx.DeleteNomination(userId, meetup.Id)
		}
		return nil
	})
}

//------------------------------------------
//------------------------------------------

// CastVote spends one of the user's per-meetup votes on a list. Re-voting for
// the same list is a no-op success, the budget only applies to new votes.
func (m *MeetupService) CastVote(userId int64, listId int64) (*model.VoteRes, error) {
	now := time.Now().UTC()
	res := &model.VoteRes{}
	err := m.meetupRepo.Transaction(func(tx repository.IMeetupRepository) error {
		meetup, err := tx.GetNextOpenMeetup(now)
		if err != nil {
			return err
		}
		if meetup == nil {
			return ErrNoOpenMeetup
		}
		// the budget check below is count-then-insert, the row lock keeps two
		// concurrent casts from both passing it
		if err = tx.LockMeetup(meetup.Id); err != nil {
			return err
		}

		hasVote, err := tx.UserHasVote(listId, userId, meetup.Id)
		if err != nil {
			return err
		}
		if !hasVote {
			voteCount, err := tx.CountUserVotes(userId, meetup.Id)
			if err != nil {
				return err
			}
			if voteCount >= int64(configs.GetConfigs().MaxVotes) {
				return ErrVoteLimitReached
			}
			err = tx.CreateVote(&model.Vote{
				MovieListId: listId,
				UserId:      userId,
				MeetupId:    meetup.Id,
				Value:       1,
				CreatedAt:   now,
			})
			if err != nil {
				return err
			}
		}

		return m.fillVoteTotals(tx, listId, meetup.Id, res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RetractVote removes the user's vote for the open meetup, idempotently.
func (m *MeetupService) RetractVote(userId int64, listId int64) (*model.VoteRes, error) {
	now := time.Now().UTC()
	res := &model.VoteRes{}
	err := m.meetupRepo.Transaction(func(tx repository.IMeetupRepository) error {
		meetup, err := tx.GetNextOpenMeetup(now)
		if err != nil {
			return err
		}
		if meetup == nil {
			return ErrNoOpenMeetup
		}

		if err = tx.DeleteUserVotes(listId, userId, meetup.Id); err != nil {
			return err
		}

		return m.fillVoteTotals(tx, listId, meetup.Id, res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (m *MeetupService) fillVoteTotals(tx repository.IMeetupRepository, listId int64, meetupId int64, res *model.VoteRes) error {
	currentVotes, err := tx.CountListVotes(listId, meetupId)
	if err != nil {
		return err
	}
	allTimeVotes, err := tx.CountListAllTimeVotes(listId)
	if err != nil {
		return err
	}
	res.CurrentVotes = currentVotes
	res.AllTimeVotes = allTimeVotes
	return nil
}

//------------------------------------------
//------------------------------------------

type pollCandidate struct {
	list  model.MovieList
	votes int64
}

// ClosePolls picks the winning list for a meetup once the cutoff has passed.
// meetupId 0 targets the next open meetup. Expected no-op conditions come
// back as Ran=false with a reason instead of an error.
func (m *MeetupService) ClosePolls(meetupId int64, bypassCutoff bool) *model.PickMovieRes {
	now := time.Now().UTC()

	meetup, err := m.resolveTargetMeetup(meetupId, now)
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("closePolls: resolving meetup failed: %v", err), err)
		return &model.PickMovieRes{Ran: false, Reason: model.PickReasonError}
	}
	if meetup == nil {
		return &model.PickMovieRes{Ran: false, Reason: model.PickReasonNoOpenMeetup}
	}
	if meetup.MovieListId != nil {
		return &model.PickMovieRes{Ran: false, Reason: model.PickReasonAlreadyLinked}
	}

	cutoff := meetup.Date.AddDate(0, 0, -configs.GetConfigs().PollsCloseDaysBefore)
	if !bypassCutoff && now.Before(cutoff) {
		return &model.PickMovieRes{Ran: false, Reason: model.PickReasonBeforeCutoff}
	}
	// late votes cast after the nominal close never count toward selection,
	// even when finalization runs delayed
	effectiveCutoff := cutoff
	if bypassCutoff {
		effectiveCutoff = now
	}

	lists, err := m.meetupRepo.GetUnlinkedLists()
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("closePolls: loading candidates failed: %v", err), err)
		return &model.PickMovieRes{Ran: false, Reason: model.PickReasonError}
	}
	if len(lists) == 0 {
		return &model.PickMovieRes{Ran: false, Reason: model.PickReasonNoCandidates}
	}

	candidates := make([]pollCandidate, 0, len(lists))
	for _, list := range lists {
		votes, err := m.meetupRepo.CountListVotesBefore(list.Id, meetup.Id, effectiveCutoff)
		if err != nil {
			errorHandler.SaveError(fmt.Sprintf("closePolls: counting votes for list %v failed: %v", list.Id, err), err)
			return &model.PickMovieRes{Ran: false, Reason: model.PickReasonError}
		}
		candidates = append(candidates, pollCandidate{list: list, votes: votes})
	}

	// votes desc, then oldest list wins ties. all-time votes are display-only
	// and never break ties here.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].votes != candidates[j].votes {
			return candidates[i].votes > candidates[j].votes
		}
		return candidates[i].list.CreatedAt.Before(candidates[j].list.CreatedAt)
	})
	winner := candidates[0].list

	res := &model.PickMovieRes{}
	err = m.meetupRepo.Transaction(func(tx repository.IMeetupRepository) error {
		// candidate selection ran outside this transaction, re-read the link
		// so two finalizers cannot both write
		current, err := tx.GetMeetup(meetup.Id)
		if err != nil {
			return err
		}
		if current == nil {
			res.Ran = false
			res.Reason = model.PickReasonNoOpenMeetup
			return nil
		}
		if current.MovieListId != nil {
			res.Ran = false
			res.Reason = model.PickReasonAlreadyLinked
			return nil
		}
		if err = tx.SetMeetupList(meetup.Id, &winner.Id); err != nil {
			// another writer linked the winning list first
			if db.IsUniqueViolationError(err) {
				res.Ran = false
				res.Reason = model.PickReasonAlreadyLinked
				return nil
			}
			return err
		}
		res.Ran = true
		res.LinkedListId = &winner.Id
		return nil
	})
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("closePolls: linking list %v to meetup %v failed: %v", winner.Id, meetup.Id, err), err)
		return &model.PickMovieRes{Ran: false, Reason: model.PickReasonError}
	}
	return res
}

func (m *MeetupService) resolveTargetMeetup(meetupId int64, now time.Time) (*model.Meetup, error) {
	if meetupId == 0 {
		return m.meetupRepo.GetNextOpenMeetup(now)
	}
	return m.meetupRepo.GetMeetup(meetupId)
}

//------------------------------------------
//------------------------------------------

func (m *MeetupService) GetMeetups() ([]model.Meetup, error) {
	return m.meetupRepo.GetMeetups()
}

func (m *MeetupService) CreateMeetup(date time.Time) (*model.Meetup, error) {
	meetup := &model.Meetup{
		Date:      date.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := m.meetupRepo.CreateMeetup(meetup); err != nil {
		return nil, err
	}
	return meetup, nil
}

// UpdateMeetup is the admin override: it may move the date, force a list
// link or clear a decided meetup back to open.
func (m *MeetupService) UpdateMeetup(meetupId int64, req *model.UpdateMeetupReq) error {
	return m.meetupRepo.Transaction(func(tx repository.IMeetupRepository) error {
		meetup, err := tx.GetMeetup(meetupId)
		if err != nil {
			return err
		}
		if meetup == nil {
			return ErrMeetupNotFound
		}

		if req.Date != nil {
			if err = tx.UpdateMeetupDate(meetupId, req.Date.UTC()); err != nil {
				return err
			}
		}

		if req.ClearList {
			return tx.SetMeetupList(meetupId, nil)
		}
		if req.MovieListId != nil {
			exists, err := tx.ListExists(*req.MovieListId)
			if err != nil {
				return err
			}
			if !exists {
				return ErrListNotFound
			}
			linked, err := tx.IsListLinked(*req.MovieListId)
			if err != nil {
				return err
			}
			if linked && (meetup.MovieListId == nil || *meetup.MovieListId != *req.MovieListId) {
				return ErrListLinked
			}
			if err = tx.SetMeetupList(meetupId, req.MovieListId); err != nil {
				// a concurrent writer linked the list between the check and
				// the write, the unique index catches it
				if db.IsUniqueViolationError(err) {
					return ErrListLinked
				}
				return err
			}
			return nil
		}
		return nil
	})
}

func (m *MeetupService) DeleteMeetup(meetupId int64) error {
	return m.meetupRepo.Transaction(func(tx repository.IMeetupRepository) error {
		meetup, err := tx.GetMeetup(meetupId)
		if err != nil {
			return err
		}
		if meetup == nil {
			return ErrMeetupNotFound
		}
		if err = tx.DeleteVotesForMeetup(meetupId); err != nil {
			return err
		}
		if err = tx.DeleteNominationsForMeetup(meetupId); err != nil {
			return err
		}
		return tx.DeleteMeetup(meetupId)
	})
}
