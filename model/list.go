package model

import "time"

type MovieList struct {
	Id          int64     `gorm:"column:id;primaryKey;autoIncrement;" json:"id"`
	Title       string    `gorm:"column:title;type:text;not null;" json:"title"`
	Description string    `gorm:"column:description;type:text;default:'';not null;" json:"description"`
	CreatedBy   int64     `gorm:"column:createdBy;not null;index;" json:"createdBy"`
	CreatedAt   time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`

	Movies []MovieListMovie `gorm:"foreignKey:MovieListId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (MovieList) TableName() string {
	return "MovieList"
}

//------------------------------------------
//------------------------------------------

// MovieListMovie joins a list to a movie with an explicit rank.
// Order is significant and preserved exactly as submitted.
type MovieListMovie struct {
	MovieListId int64 `gorm:"column:movieListId;primaryKey;autoIncrement:false;" json:"movieListId"`
	TmdbId      int64 `gorm:"column:tmdbId;primaryKey;autoIncrement:false;" json:"tmdbId"`
	Order       int   `gorm:"column:order;type:integer;not null;index:MovieListMovie_list_order_idx;" json:"order"`
}

func (MovieListMovie) TableName() string {
	return "MovieListMovie"
}

//------------------------------------------
//------------------------------------------

type Comment struct {
	Id          int64     `gorm:"column:id;primaryKey;autoIncrement;" json:"id"`
	MovieListId int64     `gorm:"column:movieListId;not null;index;" json:"movieListId"`
	UserId      int64     `gorm:"column:userId;not null;" json:"userId"`
	Body        string    `gorm:"column:body;type:text;not null;" json:"body"`
	CreatedAt   time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`
}

func (Comment) TableName() string {
	return "Comment"
}

//------------------------------------------
//------------------------------------------

type CreateListReq struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TmdbIds     []int64 `json:"tmdbIds"`
}

type CreateCommentReq struct {
	Body string `json:"body"`
}

type ListRes struct {
	MovieList
	Movies       []EnrichedMovie `json:"movies"`
	AllTimeVotes int64           `json:"allTimeVotes"`
	CurrentVotes int64           `json:"currentVotes"`
	CommentCount int64           `json:"commentCount"`
	NominatedBy  []int64         `json:"nominatedBy"`
	MeetupId     *int64          `json:"meetupId,omitempty"`
	MeetupDate   *time.Time      `json:"meetupDate,omitempty"`
}

type VoteRes struct {
	CurrentVotes int64 `json:"currentVotes"`
	AllTimeVotes int64 `json:"allTimeVotes"`
}
