package model

import "time"

// Meetup is one scheduled club gathering. It stays open (MovieListId null)
// while nominations and voting proceed, and is decided exactly once when a
// list gets linked.
type Meetup struct {
	Id          int64     `gorm:"column:id;primaryKey;autoIncrement;" json:"id"`
	Date        time.Time `gorm:"column:date;not null;index;" json:"date"`
	MovieListId *int64    `gorm:"column:movieListId;uniqueIndex:Meetup_movieListId_key;" json:"movieListId"`
	CreatedAt   time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`
}

func (Meetup) TableName() string {
	return "Meetup"
}

//------------------------------------------
//------------------------------------------

type Nomination struct {
	MovieListId int64     `gorm:"column:movieListId;not null;uniqueIndex:Nomination_list_meetup_key;" json:"movieListId"`
	UserId      int64     `gorm:"column:userId;not null;uniqueIndex:Nomination_user_meetup_key;" json:"userId"`
	MeetupId    int64     `gorm:"column:meetupId;not null;uniqueIndex:Nomination_user_meetup_key;uniqueIndex:Nomination_list_meetup_key;" json:"meetupId"`
	CreatedAt   time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`
}

func (Nomination) TableName() string {
	return "Nomination"
}

//------------------------------------------
//------------------------------------------

type Vote struct {
	MovieListId int64     `gorm:"column:movieListId;not null;uniqueIndex:Vote_list_user_meetup_key;" json:"movieListId"`
	UserId      int64     `gorm:"column:userId;not null;uniqueIndex:Vote_list_user_meetup_key;" json:"userId"`
	MeetupId    int64     `gorm:"column:meetupId;not null;uniqueIndex:Vote_list_user_meetup_key;index;" json:"meetupId"`
	Value       int       `gorm:"column:value;type:integer;default:1;not null;" json:"value"`
	CreatedAt   time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`
}

func (Vote) TableName() string {
	return "Vote"
}

//------------------------------------------
//------------------------------------------

const (
	PickReasonNoOpenMeetup  = "NoOpenMeetup"
	PickReasonBeforeCutoff  = "BeforeCutoff"
	PickReasonNoCandidates  = "NoCandidates"
	PickReasonAlreadyLinked = "AlreadyLinked"
	PickReasonError         = "error"
)

// PickMovieRes reports the outcome of one closePolls run. Expected no-op
// conditions come back as Ran=false with a reason, never as an error.
type PickMovieRes struct {
	Ran          bool   `json:"ran"`
	Reason       string `json:"reason,omitempty"`
	LinkedListId *int64 `json:"linkedListId,omitempty"`
}

type CreateMeetupReq struct {
	Date time.Time `json:"date"`
}

type UpdateMeetupReq struct {
	Date        *time.Time `json:"date"`
	MovieListId *int64     `json:"movieListId"`
	ClearList   bool       `json:"clearList"`
}

type MeetupRes struct {
	Meetup
	List *ListRes `json:"list,omitempty"`
}
