package repository

import (
	"errors"
	"movieclub_api/model"

	"gorm.io/gorm"
)

type ICollectionRepository interface {
	Transaction(fn func(txRepo ICollectionRepository) error) error
	CreateCollection(collection *model.Collection, movies []model.CollectionMovie) error
	GetCollection(collectionId int64) (*model.Collection, error)
	GetCollections(userId int64) ([]model.Collection, error)
	GetCollectionMovies(collectionId int64) ([]model.CollectionMovie, error)
	UpdateCollection(collection *model.Collection) error
	ReplaceCollectionMovies(collectionId int64, movies []model.CollectionMovie) (removed int, err error)
	DeleteCollection(collectionId int64) error
}

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *CollectionRepository) Transaction(fn func(txRepo ICollectionRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&CollectionRepository{db: tx})
	})
}

func (r *CollectionRepository) CreateCollection(collection *model.Collection, movies []model.CollectionMovie) error {
	collection.MovieCount = len(movies)
	if err := r.db.Create(collection).Error; err != nil {
		return err
	}
	if len(movies) == 0 {
		return nil
	}
	for i := range movies {
		movies[i].CollectionId = collection.Id
	}
	return r.db.Create(&movies).Error
}

func (r *CollectionRepository) GetCollection(collectionId int64) (*model.Collection, error) {
	var collection model.Collection
	err := r.db.
		Model(&model.Collection{}).
		Where("id = ?", collectionId).
		First(&collection).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

// GetCollections returns global collections plus the user's own.
func (r *CollectionRepository) GetCollections(userId int64) ([]model.Collection, error) {
	var collections []model.Collection
	err := r.db.
		Model(&model.Collection{}).
		Where("\"isGlobal\" = ? OR \"createdBy\" = ?", true, userId).
		Order("\"createdAt\" ASC").
		Find(&collections).
		Error
	return collections, err
}

func (r *CollectionRepository) GetCollectionMovies(collectionId int64) ([]model.CollectionMovie, error) {
	var movies []model.CollectionMovie
	err := r.db.
		Model(&model.CollectionMovie{}).
		Where("\"collectionId\" = ?", collectionId).
		Order("\"order\" ASC").
		Find(&movies).
		Error
	return movies, err
}

func (r *CollectionRepository) UpdateCollection(collection *model.Collection) error {
	return r.db.
		Model(&model.Collection{}).
		Where("id = ?", collection.Id).
		Updates(map[string]interface{}{
			"title":          collection.Title,
			"description":    collection.Description,
			"isGlobal":       collection.IsGlobal,
			"externalListId": collection.ExternalListId,
		}).
		Error
}

// ReplaceCollectionMovies swaps the join rows and refreshes the movieCount
// cache. The returned count covers titles that left the collection, titles
// present in both old and new sets do not count as removed.
func (r *CollectionRepository) ReplaceCollectionMovies(collectionId int64, movies []model.CollectionMovie) (int, error) {
	existing, err := r.GetCollectionMovies(collectionId)
	if err != nil {
		return 0, err
	}
	kept := make(map[int64]bool, len(movies))
	for _, m := range movies {
		kept[m.TmdbId] = true
	}
	removed := 0
	for _, m := range existing {
		if !kept[m.TmdbId] {
			removed++
		}
	}

	err = r.db.
		Where("\"collectionId\" = ?", collectionId).
		Delete(&model.CollectionMovie{}).
		Error
	if err != nil {
		return 0, err
	}

	if len(movies) > 0 {
		for i := range movies {
			movies[i].CollectionId = collectionId
		}
		if err := r.db.Create(&movies).Error; err != nil {
			return 0, err
		}
	}

	err = r.db.
		Model(&model.Collection{}).
		Where("id = ?", collectionId).
		Update("movieCount", len(movies)).
		Error
	return removed, err
}

func (r *CollectionRepository) DeleteCollection(collectionId int64) error {
	if err := r.db.Where("\"collectionId\" = ?", collectionId).Delete(&model.CollectionMovie{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", collectionId).Delete(&model.Collection{}).Error
}
