package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movieclub_api/db/redis"
	"movieclub_api/model"
	errorHandler "movieclub_api/pkg/error"
	"time"
)

const (
	jwtDataCachePrefix   = "jwtKey:"
	movieDataCachePrefix = "movie:"
)

//------------------------------------------
//------------------------------------------

func GetJwtDataCache(key string) (string, error) {
	if !redis.IsConnected() {
		return "", nil
	}
	result, err := redis.GetRedis(context.Background(), jwtDataCachePrefix+key)
	return result, err
}

//------------------------------------------
//------------------------------------------

func GetMovieDataCache(tmdbId int64) (*model.Movie, error) {
	if !redis.IsConnected() {
		return nil, nil
	}
	result, err := redis.GetRedis(context.Background(), fmt.Sprintf("%v%v", movieDataCachePrefix, tmdbId))
	if err != nil && err.Error() != "redis: nil" {
		return nil, nil
	}
	if result != "" {
		var jsonData model.Movie
		err = json.Unmarshal([]byte(result), &jsonData)
		if err != nil {
			return nil, err
		}
		return &jsonData, nil
	}
	return nil, nil
}

func setMovieDataCache(movie *model.Movie) {
	if !redis.IsConnected() {
		return
	}
	jsonData, err := json.Marshal(movie)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movie data: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return
	}
	err = redis.SetRedis(context.Background(), fmt.Sprintf("%v%v", movieDataCachePrefix, movie.TmdbId), jsonData, 24*time.Hour)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movie data: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}
