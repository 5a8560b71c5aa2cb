package model

import "time"

// Movie is the canonical cache of one tmdb title, shared by lists and collections.
// Rows start as stubs (title only) and get filled by background hydration.
type Movie struct {
	TmdbId        int64     `gorm:"column:tmdbId;primaryKey;autoIncrement:false;" json:"tmdbId"`
	Title         string    `gorm:"column:title;type:text;not null;" json:"title"`
	OriginalTitle string    `gorm:"column:originalTitle;type:text;default:'';not null;" json:"originalTitle"`
	ReleaseDate   string    `gorm:"column:releaseDate;type:text;default:'';not null;" json:"releaseDate"`
	Runtime       int       `gorm:"column:runtime;type:integer;default:0;not null;" json:"runtime"`
	PosterPath    string    `gorm:"column:posterPath;type:text;default:'';not null;" json:"posterPath"`
	Overview      string    `gorm:"column:overview;type:text;default:'';not null;" json:"overview"`
	Genres        string    `gorm:"column:genres;type:text;default:'';not null;" json:"genres"`
	CastNames     string    `gorm:"column:castNames;type:text;default:'';not null;" json:"castNames"`
	Directors     string    `gorm:"column:directors;type:text;default:'';not null;" json:"directors"`
	Budget        int64     `gorm:"column:budget;type:bigint;default:0;not null;" json:"budget"`
	Revenue       int64     `gorm:"column:revenue;type:bigint;default:0;not null;" json:"revenue"`
	VoteAverage   float64   `gorm:"column:voteAverage;default:0;not null;" json:"voteAverage"`
	HydratedAt    time.Time `gorm:"column:hydratedAt;" json:"hydratedAt"`
	CreatedAt     time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`
}

func (Movie) TableName() string {
	return "Movie"
}

//------------------------------------------
//------------------------------------------

// MovieAward holds the oscar-style awards summary for one title.
// Categories is a json-encoded map of category name to win count.
type MovieAward struct {
	TmdbId      int64  `gorm:"column:tmdbId;primaryKey;autoIncrement:false;" json:"tmdbId"`
	Nominations int    `gorm:"column:nominations;type:integer;default:0;not null;" json:"nominations"`
	Wins        int    `gorm:"column:wins;type:integer;default:0;not null;" json:"wins"`
	Categories  string `gorm:"column:categories;type:text;default:'';not null;" json:"-"`
}

func (MovieAward) TableName() string {
	return "MovieAward"
}

//------------------------------------------
//------------------------------------------

type Seen struct {
	UserId    int64     `gorm:"column:userId;primaryKey;autoIncrement:false;" json:"userId"`
	TmdbId    int64     `gorm:"column:tmdbId;primaryKey;autoIncrement:false;" json:"tmdbId"`
	CreatedAt time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`
}

func (Seen) TableName() string {
	return "Seen"
}

//------------------------------------------
//------------------------------------------

type MovieAwardRes struct {
	Nominations int            `json:"nominations"`
	Wins        int            `json:"wins"`
	Categories  map[string]int `json:"categories"`
}

type EnrichedMovie struct {
	Movie
	Order             int            `json:"order"`
	SeenBy            []int64        `json:"seenBy"`
	SeenCount         int            `json:"seenCount"`
	HasSeen           bool           `json:"hasSeen"`
	InMeetup          bool           `json:"inMeetup"`
	InUnscheduledList bool           `json:"inUnscheduledList,omitempty"`
	Awards            *MovieAwardRes `json:"awards,omitempty"`
}
