package service

import (
	"errors"
	"movieclub_api/internal/repository"
	"movieclub_api/model"
	"movieclub_api/testutil"
	"testing"
	"time"
)

func TestNominateRequiresOpenMeetup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	list := testutil.CreateList(t, db, 1, "no meetup", 100)

	err := svc.Nominate(1, list.Id)
	if !errors.Is(err, ErrNoOpenMeetup) {
		t.Fatalf("Expected ErrNoOpenMeetup, got %v", err)
	}
}

func TestNominateUnknownList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))

	err := svc.Nominate(1, 999)
	if !errors.Is(err, ErrListNotFound) {
		t.Fatalf("Expected ErrListNotFound, got %v", err)
	}
}

func TestNominateLinkedList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))

	list := testutil.CreateList(t, db, 1, "already watched", 100)
	decided := testutil.CreateMeetup(t, db, time.Now().Add(20*24*time.Hour))
	if err := db.Model(&model.Meetup{}).Where("id = ?", decided.Id).Update("movieListId", list.Id).Error; err != nil {
		t.Fatalf("Failed to link list: %v", err)
	}

	err := svc.Nominate(1, list.Id)
	if !errors.Is(err, ErrListLinked) {
		t.Fatalf("Expected ErrListLinked, got %v", err)
	}
}

func TestNominateSwapDropsOldVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	meetup := testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))
	first := testutil.CreateList(t, db, 1, "first pick", 100)
	second := testutil.CreateList(t, db, 1, "second pick", 200)

	if err := svc.Nominate(1, first.Id); err != nil {
		t.Fatalf("Nominate failed: %v", err)
	}
	if _, err := svc.CastVote(1, first.Id); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	// nominating again for the same list changes nothing
	if err := svc.Nominate(1, first.Id); err != nil {
		t.Fatalf("Re-nominate failed: %v", err)
	}
	var votes int64
	db.Model(&model.Vote{}).Where("\"userId\" = ?", 1).Count(&votes)
	if votes != 1 {
		t.Fatalf("Expected 1 vote after re-nominate, got %v", votes)
	}

	// swapping to another list drops the old nomination and its votes
	if err := svc.Nominate(1, second.Id); err != nil {
		t.Fatalf("Swap nominate failed: %v", err)
	}
	db.Model(&model.Vote{}).Where("\"userId\" = ? AND \"movieListId\" = ?", 1, first.Id).Count(&votes)
	if votes != 0 {
		t.Fatalf("Expected old votes dropped after swap, got %v", votes)
	}
	var nominations []model.Nomination
	db.Where("\"userId\" = ? AND \"meetupId\" = ?", 1, meetup.Id).Find(&nominations)
	if len(nominations) != 1 || nominations[0].MovieListId != second.Id {
		t.Fatalf("Expected single nomination for second list, got %+v", nominations)
	}
}

func TestRetractNominationLockedByOthers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	meetup := testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))
	list := testutil.CreateList(t, db, 1, "contested", 100)

	if err := svc.Nominate(1, list.Id); err != nil {
		t.Fatalf("Nominate failed: %v", err)
	}
	testutil.CreateVote(t, db, list.Id, 2, meetup.Id, time.Now())

	err := svc.RetractNomination(1, list.Id)
	if !errors.Is(err, ErrListLocked) {
		t.Fatalf("Expected ErrListLocked, got %v", err)
	}

	// once the other vote is gone the retract goes through
	if _, err = svc.RetractVote(2, list.Id); err != nil {
		t.Fatalf("RetractVote failed: %v", err)
	}
	if err = svc.RetractNomination(1, list.Id); err != nil {
		t.Fatalf("RetractNomination failed: %v", err)
	}
	var count int64
	db.Model(&model.Nomination{}).Where("\"meetupId\" = ?", meetup.Id).Count(&count)
	if count != 0 {
		t.Fatalf("Expected no nominations left, got %v", count)
	}
}

//------------------------------------------
//------------------------------------------

func TestCastVoteBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))

	lists := make([]*model.MovieList, 0, 4)
	for i := 0; i < 4; i++ {
		lists = append(lists, testutil.CreateList(t, db, 2, "list", int64(100+i)))
	}

	for i := 0; i < 3; i++ {
		res, err := svc.CastVote(1, lists[i].Id)
		if err != nil {
			t.Fatalf("CastVote %v failed: %v", i, err)
		}
		if res.CurrentVotes != 1 {
			t.Fatalf("Expected currentVotes 1, got %v", res.CurrentVotes)
		}
	}

	_, err := svc.CastVote(1, lists[3].Id)
	if !errors.Is(err, ErrVoteLimitReached) {
		t.Fatalf("Expected ErrVoteLimitReached, got %v", err)
	}

	// re-voting an already voted list is a no-op success even at the limit
	res, err := svc.CastVote(1, lists[0].Id)
	if err != nil {
		t.Fatalf("Re-vote failed: %v", err)
	}
	if res.CurrentVotes != 1 {
		t.Fatalf("Expected currentVotes 1 after re-vote, got %v", res.CurrentVotes)
	}

	// retracting frees budget for a new vote
	if _, err = svc.RetractVote(1, lists[0].Id); err != nil {
		t.Fatalf("RetractVote failed: %v", err)
	}
	if _, err = svc.CastVote(1, lists[3].Id); err != nil {
		t.Fatalf("CastVote after retract failed: %v", err)
	}
}

func TestRetractVoteIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))
	list := testutil.CreateList(t, db, 1, "never voted", 100)

	res, err := svc.RetractVote(1, list.Id)
	if err != nil {
		t.Fatalf("RetractVote failed: %v", err)
	}
	if res.CurrentVotes != 0 || res.AllTimeVotes != 0 {
		t.Fatalf("Expected zero totals, got %+v", res)
	}
}

func TestVoteTotalsSpanMeetups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	past := testutil.CreateMeetup(t, db, time.Now().Add(-30*24*time.Hour))
	testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))
	list := testutil.CreateList(t, db, 1, "long runner", 100)
	testutil.CreateVote(t, db, list.Id, 5, past.Id, time.Now().Add(-31*24*time.Hour))

	res, err := svc.CastVote(1, list.Id)
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if res.CurrentVotes != 1 {
		t.Fatalf("Expected currentVotes 1, got %v", res.CurrentVotes)
	}
	if res.AllTimeVotes != 2 {
		t.Fatalf("Expected allTimeVotes 2, got %v", res.AllTimeVotes)
	}
}

//------------------------------------------
//------------------------------------------

func TestClosePollsNoOpenMeetup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))

	res := svc.ClosePolls(0, false)
	if res.Ran || res.Reason != model.PickReasonNoOpenMeetup {
		t.Fatalf("Expected NoOpenMeetup, got %+v", res)
	}
}

func TestClosePollsBeforeCutoff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))
	testutil.CreateList(t, db, 1, "candidate", 100)

	res := svc.ClosePolls(0, false)
	if res.Ran || res.Reason != model.PickReasonBeforeCutoff {
		t.Fatalf("Expected BeforeCutoff, got %+v", res)
	}

	// admins can finalize early
	res = svc.ClosePolls(0, true)
	if !res.Ran {
		t.Fatalf("Expected bypass run, got %+v", res)
	}
}

func TestClosePollsNoCandidates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	testutil.CreateMeetup(t, db, time.Now().Add(24*time.Hour))

	res := svc.ClosePolls(0, false)
	if res.Ran || res.Reason != model.PickReasonNoCandidates {
		t.Fatalf("Expected NoCandidates, got %+v", res)
	}
}

func TestClosePollsAlreadyLinked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	meetup := testutil.CreateMeetup(t, db, time.Now().Add(24*time.Hour))
	list := testutil.CreateList(t, db, 1, "decided", 100)
	if err := db.Model(&model.Meetup{}).Where("id = ?", meetup.Id).Update("movieListId", list.Id).Error; err != nil {
		t.Fatalf("Failed to link list: %v", err)
	}

	res := svc.ClosePolls(meetup.Id, false)
	if res.Ran || res.Reason != model.PickReasonAlreadyLinked {
		t.Fatalf("Expected AlreadyLinked, got %+v", res)
	}
}

func TestClosePollsLateVotesExcluded(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	// cutoff passed a day ago, votes cast since then must not count
	meetup := testutil.CreateMeetup(t, db, time.Now().Add(24*time.Hour))
	early := testutil.CreateList(t, db, 1, "early votes", 100)
	late := testutil.CreateList(t, db, 2, "late votes", 200)

	testutil.CreateVote(t, db, early.Id, 1, meetup.Id, time.Now().Add(-2*24*time.Hour))
	testutil.CreateVote(t, db, late.Id, 2, meetup.Id, time.Now())
	testutil.CreateVote(t, db, late.Id, 3, meetup.Id, time.Now())

	res := svc.ClosePolls(0, false)
	if !res.Ran {
		t.Fatalf("Expected run, got %+v", res)
	}
	if res.LinkedListId == nil || *res.LinkedListId != early.Id {
		t.Fatalf("Expected early-voted list to win, got %+v", res)
	}
}

func TestClosePollsTieBreakOldestList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	meetup := testutil.CreateMeetup(t, db, time.Now().Add(24*time.Hour))

	newer := testutil.CreateListAt(t, db, 1, "newer", time.Now().Add(-24*time.Hour), 100)
	older := testutil.CreateListAt(t, db, 2, "older", time.Now().Add(-48*time.Hour), 200)

	voteTime := time.Now().Add(-3 * 24 * time.Hour)
	testutil.CreateVote(t, db, newer.Id, 1, meetup.Id, voteTime)
	testutil.CreateVote(t, db, older.Id, 2, meetup.Id, voteTime)
	// a past meetup's votes must not break the tie
	past := testutil.CreateMeetup(t, db, time.Now().Add(-30*24*time.Hour))
	testutil.CreateVote(t, db, newer.Id, 3, past.Id, time.Now().Add(-31*24*time.Hour))

	res := svc.ClosePolls(meetup.Id, false)
	if !res.Ran {
		t.Fatalf("Expected run, got %+v", res)
	}
	if res.LinkedListId == nil || *res.LinkedListId != older.Id {
		t.Fatalf("Expected oldest list to win the tie, got %+v", res)
	}
}

func TestClosePollsLinksWinner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewMeetupRepository(db)
	svc := NewMeetupService(repo)
	meetup := testutil.CreateMeetup(t, db, time.Now().Add(24*time.Hour))
	winner := testutil.CreateList(t, db, 1, "winner", 100)
	loser := testutil.CreateList(t, db, 2, "loser", 200)

	voteTime := time.Now().Add(-3 * 24 * time.Hour)
	testutil.CreateVote(t, db, winner.Id, 1, meetup.Id, voteTime)
	testutil.CreateVote(t, db, winner.Id, 2, meetup.Id, voteTime)
	testutil.CreateVote(t, db, loser.Id, 3, meetup.Id, voteTime)

	res := svc.ClosePolls(0, false)
	if !res.Ran || res.LinkedListId == nil || *res.LinkedListId != winner.Id {
		t.Fatalf("Expected winner linked, got %+v", res)
	}

	stored, err := repo.GetMeetup(meetup.Id)
	if err != nil {
		t.Fatalf("GetMeetup failed: %v", err)
	}
	if stored.MovieListId == nil || *stored.MovieListId != winner.Id {
		t.Fatalf("Expected meetup linked to winner, got %+v", stored)
	}

	// a second run is a no-op
	res = svc.ClosePolls(meetup.Id, false)
	if res.Ran || res.Reason != model.PickReasonAlreadyLinked {
		t.Fatalf("Expected AlreadyLinked on second run, got %+v", res)
	}
}

//------------------------------------------
//------------------------------------------

func TestMeetupLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))

	if _, err := svc.CreateMeetup(time.Now().Add(10 * 24 * time.Hour)); err != nil {
		t.Fatalf("CreateMeetup failed: %v", err)
	}

	drama := testutil.CreateList(t, db, 1, "drama night", 100, 101)
	horror := testutil.CreateList(t, db, 2, "horror night", 200)

	var err error
	if err = svc.Nominate(1, drama.Id); err != nil {
		t.Fatalf("Nominate failed: %v", err)
	}
	if err = svc.Nominate(2, horror.Id); err != nil {
		t.Fatalf("Nominate failed: %v", err)
	}
	if _, err = svc.CastVote(1, drama.Id); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if _, err = svc.CastVote(2, drama.Id); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if _, err = svc.CastVote(3, horror.Id); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	// the date is far out, only the admin bypass may finalize
	res := svc.ClosePolls(0, false)
	if res.Ran || res.Reason != model.PickReasonBeforeCutoff {
		t.Fatalf("Expected BeforeCutoff, got %+v", res)
	}
	res = svc.ClosePolls(0, true)
	if !res.Ran || res.LinkedListId == nil || *res.LinkedListId != drama.Id {
		t.Fatalf("Expected drama night picked, got %+v", res)
	}

	open, err := svc.GetNextOpenMeetup()
	if err != nil {
		t.Fatalf("GetNextOpenMeetup failed: %v", err)
	}
	if open != nil {
		t.Fatalf("Expected no open meetup after pick, got %+v", open)
	}

	// nominations for the decided meetup are rejected
	err = svc.Nominate(3, horror.Id)
	if !errors.Is(err, ErrNoOpenMeetup) {
		t.Fatalf("Expected ErrNoOpenMeetup after pick, got %v", err)
	}
}

//------------------------------------------
//------------------------------------------

func TestUpdateMeetupLinkConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	first := testutil.CreateMeetup(t, db, time.Now().Add(24*time.Hour))
	second := testutil.CreateMeetup(t, db, time.Now().Add(14*24*time.Hour))
	list := testutil.CreateList(t, db, 1, "hot pick", 100)

	if err := svc.UpdateMeetup(first.Id, &model.UpdateMeetupReq{MovieListId: &list.Id}); err != nil {
		t.Fatalf("UpdateMeetup failed: %v", err)
	}

	err := svc.UpdateMeetup(second.Id, &model.UpdateMeetupReq{MovieListId: &list.Id})
	if !errors.Is(err, ErrListLinked) {
		t.Fatalf("Expected ErrListLinked, got %v", err)
	}

	// re-linking the same list to the same meetup stays fine
	if err = svc.UpdateMeetup(first.Id, &model.UpdateMeetupReq{MovieListId: &list.Id}); err != nil {
		t.Fatalf("Re-link failed: %v", err)
	}

	// clearing reopens the meetup
	if err = svc.UpdateMeetup(first.Id, &model.UpdateMeetupReq{ClearList: true}); err != nil {
		t.Fatalf("ClearList failed: %v", err)
	}
	open, err := svc.GetNextOpenMeetup()
	if err != nil {
		t.Fatalf("GetNextOpenMeetup failed: %v", err)
	}
	if open == nil || open.Id != first.Id {
		t.Fatalf("Expected first meetup reopened, got %+v", open)
	}
}

func TestDeleteMeetupCleansUp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	meetup := testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))
	list := testutil.CreateList(t, db, 1, "doomed", 100)

	if err := svc.Nominate(1, list.Id); err != nil {
		t.Fatalf("Nominate failed: %v", err)
	}
	if _, err := svc.CastVote(1, list.Id); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	if err := svc.DeleteMeetup(meetup.Id); err != nil {
		t.Fatalf("DeleteMeetup failed: %v", err)
	}

	var votes, nominations, meetups int64
	db.Model(&model.Vote{}).Where("\"meetupId\" = ?", meetup.Id).Count(&votes)
	db.Model(&model.Nomination{}).Where("\"meetupId\" = ?", meetup.Id).Count(&nominations)
	db.Model(&model.Meetup{}).Where("id = ?", meetup.Id).Count(&meetups)
	if votes != 0 || nominations != 0 || meetups != 0 {
		t.Fatalf("Expected full cleanup, got votes=%v nominations=%v meetups=%v", votes, nominations, meetups)
	}

	err := svc.DeleteMeetup(meetup.Id)
	if !errors.Is(err, ErrMeetupNotFound) {
		t.Fatalf("Expected ErrMeetupNotFound, got %v", err)
	}
}

func TestNominateSameListByAnotherUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewMeetupService(repository.NewMeetupRepository(db))
	testutil.CreateMeetup(t, db, time.Now().Add(10*24*time.Hour))
	list := testutil.CreateList(t, db, 1, "shared pick", 100)

	if err := svc.Nominate(1, list.Id); err != nil {
		t.Fatalf("Nominate failed: %v", err)
	}
	// the unique index rejects a second nomination row for the list, the
	// overlapping nominate reads as a no-op success
	if err := svc.Nominate(2, list.Id); err != nil {
		t.Fatalf("Expected overlapping nominate to succeed, got %v", err)
	}

	var nominations int64
	db.Model(&model.Nomination{}).Where("\"movieListId\" = ?", list.Id).Count(&nominations)
	if nominations != 1 {
		t.Fatalf("Expected 1 nomination, got %v", nominations)
	}
}
