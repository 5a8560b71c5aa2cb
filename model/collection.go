package model

import "time"

// Collection is an admin-curated counterpart of MovieList, optionally synced
// from an external tmdb list. MovieCount caches the join table size and is
// kept consistent on every mutation.
type Collection struct {
	Id             int64     `gorm:"column:id;primaryKey;autoIncrement;" json:"id"`
	Title          string    `gorm:"column:title;type:text;not null;" json:"title"`
	Description    string    `gorm:"column:description;type:text;default:'';not null;" json:"description"`
	CreatedBy      int64     `gorm:"column:createdBy;not null;index;" json:"createdBy"`
	IsGlobal       bool      `gorm:"column:isGlobal;default:false;not null;" json:"isGlobal"`
	ExternalListId string    `gorm:"column:externalListId;type:text;default:'';not null;" json:"externalListId"`
	MovieCount     int       `gorm:"column:movieCount;type:integer;default:0;not null;" json:"movieCount"`
	CreatedAt      time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`

	Movies []CollectionMovie `gorm:"foreignKey:CollectionId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Collection) TableName() string {
	return "Collection"
}

//------------------------------------------
//------------------------------------------

type CollectionMovie struct {
	CollectionId int64 `gorm:"column:collectionId;primaryKey;autoIncrement:false;" json:"collectionId"`
	TmdbId       int64 `gorm:"column:tmdbId;primaryKey;autoIncrement:false;" json:"tmdbId"`
	Order        int   `gorm:"column:order;type:integer;not null;" json:"order"`
}

func (CollectionMovie) TableName() string {
	return "CollectionMovie"
}

//------------------------------------------
//------------------------------------------

type CreateCollectionReq struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	IsGlobal       bool    `json:"isGlobal"`
	ExternalListId string  `json:"externalListId"`
	TmdbIds        []int64 `json:"tmdbIds"`
}

type CollectionRes struct {
	Collection
	Movies []EnrichedMovie `json:"movies"`
}

type SyncRes struct {
	BatchId string `json:"batchId"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
	Queued  int    `json:"queued"`
}

type UpsertAwardReq struct {
	Nominations int            `json:"nominations"`
	Wins        int            `json:"wins"`
	Categories  map[string]int `json:"categories"`
}
