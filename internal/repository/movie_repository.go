package repository

import (
	"errors"
	"movieclub_api/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IMovieRepository interface {
	UpsertStubs(movies []model.Movie) error
	GetMovie(tmdbId int64) (*model.Movie, error)
	GetMovies(tmdbIds []int64) ([]model.Movie, error)
	SaveHydrated(movie *model.Movie) error
	MarkSeen(userId int64, tmdbId int64, now time.Time) error
	UnmarkSeen(userId int64, tmdbId int64) error
	GetSeenBy(tmdbIds []int64) (map[int64][]int64, error)
	GetMeetupMovieIds() (map[int64]bool, error)
	GetUnscheduledListMovieIds() (map[int64]bool, error)
	GetAwards(tmdbIds []int64) (map[int64]model.MovieAward, error)
	UpsertAward(award *model.MovieAward) error
}

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

//------------------------------------------
//------------------------------------------

// UpsertStubs inserts movie rows that do not exist yet. Existing rows keep
// their data, a hydrated row is never replaced by a stub.
func (r *MovieRepository) UpsertStubs(movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&movies).
		Error
}

func (r *MovieRepository) GetMovie(tmdbId int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.
		Model(&model.Movie{}).
		Where("\"tmdbId\" = ?", tmdbId).
		First(&movie).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) GetMovies(tmdbIds []int64) ([]model.Movie, error) {
	if len(tmdbIds) == 0 {
		return []model.Movie{}, nil
	}
	var movies []model.Movie
	err := r.db.
		Model(&model.Movie{}).
		Where("\"tmdbId\" IN ?", tmdbIds).
		Find(&movies).
		Error
	return movies, err
}

// SaveHydrated overwrites the metadata columns with fully hydrated data.
func (r *MovieRepository) SaveHydrated(movie *model.Movie) error {
	return r.db.
		Model(&model.Movie{}).
		Where("\"tmdbId\" = ?", movie.TmdbId).
		Updates(map[string]interface{}{
			"title":         movie.Title,
			"originalTitle": movie.OriginalTitle,
			"releaseDate":   movie.ReleaseDate,
			"runtime":       movie.Runtime,
			"posterPath":    movie.PosterPath,
			"overview":      movie.Overview,
			"genres":        movie.Genres,
			"castNames":     movie.CastNames,
			"directors":     movie.Directors,
			"budget":        movie.Budget,
			"revenue":       movie.Revenue,
			"voteAverage":   movie.VoteAverage,
			"hydratedAt":    movie.HydratedAt,
		}).
		Error
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) MarkSeen(userId int64, tmdbId int64, now time.Time) error {
	seen := model.Seen{
		UserId:    userId,
		TmdbId:    tmdbId,
		CreatedAt: now,
	}
	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seen).
		Error
}

func (r *MovieRepository) UnmarkSeen(userId int64, tmdbId int64) error {
	return r.db.
		Where("\"userId\" = ? AND \"tmdbId\" = ?", userId, tmdbId).
		Delete(&model.Seen{}).
		Error
}

func (r *MovieRepository) GetSeenBy(tmdbIds []int64) (map[int64][]int64, error) {
	if len(tmdbIds) == 0 {
		return map[int64][]int64{}, nil
	}
	var seenRows []model.Seen
	err := r.db.
		Model(&model.Seen{}).
		Where("\"tmdbId\" IN ?", tmdbIds).
		Find(&seenRows).
		Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]int64, len(seenRows))
	for _, s := range seenRows {
		res[s.TmdbId] = append(res[s.TmdbId], s.UserId)
	}
	return res, nil
}

//------------------------------------------
//------------------------------------------

// GetMeetupMovieIds returns tmdbIds appearing in any meetup-linked list.
func (r *MovieRepository) GetMeetupMovieIds() (map[int64]bool, error) {
	var tmdbIds []int64
	err := r.db.
		Model(&model.MovieListMovie{}).
		Select("DISTINCT \"MovieListMovie\".\"tmdbId\"").
		Joins("JOIN \"Meetup\" ON \"Meetup\".\"movieListId\" = \"MovieListMovie\".\"movieListId\"").
		Scan(&tmdbIds).
		Error
	if err != nil {
		return nil, err
	}
	return idsToSet(tmdbIds), nil
}

// GetUnscheduledListMovieIds returns tmdbIds appearing in lists with no
// meetup yet, used for the inUnscheduledList flag on collections.
func (r *MovieRepository) GetUnscheduledListMovieIds() (map[int64]bool, error) {
	var tmdbIds []int64
	err := r.db.
		Model(&model.MovieListMovie{}).
		Select("DISTINCT \"tmdbId\"").
		Where("\"movieListId\" NOT IN (?)",
			r.db.Model(&model.Meetup{}).
				Select("\"movieListId\"").
				Where("\"movieListId\" IS NOT NULL"),
		).
		Scan(&tmdbIds).
		Error
	if err != nil {
		return nil, err
	}
	return idsToSet(tmdbIds), nil
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) GetAwards(tmdbIds []int64) (map[int64]model.MovieAward, error) {
	if len(tmdbIds) == 0 {
		return map[int64]model.MovieAward{}, nil
	}
	var awards []model.MovieAward
	err := r.db.
		Model(&model.MovieAward{}).
		Where("\"tmdbId\" IN ?", tmdbIds).
		Find(&awards).
		Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]model.MovieAward, len(awards))
	for _, a := range awards {
		res[a.TmdbId] = a
	}
	return res, nil
}

func (r *MovieRepository) UpsertAward(award *model.MovieAward) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tmdbId"}},
			UpdateAll: true,
		}).
		Create(award).
		Error
}

func idsToSet(ids []int64) map[int64]bool {
	res := make(map[int64]bool, len(ids))
	for _, id := range ids {
		res[id] = true
	}
	return res
}
