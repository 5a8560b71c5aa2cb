package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"movieclub_api/configs"
	"movieclub_api/model"
	"net/http"
	"strings"
	"time"
)

var ErrTmdbNotFound = errors.New("tmdb: title not found")

type ITmdbClient interface {
	GetMovieDetails(ctx context.Context, tmdbId int64) (*model.Movie, error)
	GetListItems(ctx context.Context, externalListId string) ([]TmdbListItem, error)
}

type TmdbListItem struct {
	TmdbId int64
	Title  string
}

type TmdbClient struct {
	httpClient *http.Client
}

func NewTmdbClient() *TmdbClient {
	return &TmdbClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

//------------------------------------------
//------------------------------------------

type tmdbMovieDetails struct {
	Id            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	ReleaseDate   string  `json:"release_date"`
	Runtime       int     `json:"runtime"`
	PosterPath    string  `json:"poster_path"`
	Overview      string  `json:"overview"`
	Budget        int64   `json:"budget"`
	Revenue       int64   `json:"revenue"`
	VoteAverage   float64 `json:"vote_average"`
	Genres        []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Credits struct {
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
		Crew []struct {
			Name string `json:"name"`
			Job  string `json:"job"`
		} `json:"crew"`
	} `json:"credits"`
}

type tmdbListRes struct {
	Items []struct {
		Id        int64  `json:"id"`
		Title     string `json:"title"`
		MediaType string `json:"media_type"`
	} `json:"items"`
}

//------------------------------------------
//------------------------------------------

func (t *TmdbClient) GetMovieDetails(ctx context.Context, tmdbId int64) (*model.Movie, error) {
	url := fmt.Sprintf("%v/movie/%v?api_key=%v&append_to_response=credits",
		configs.GetConfigs().TmdbBaseUrl, tmdbId, configs.GetConfigs().TmdbApiKey)

	var details tmdbMovieDetails
	if err := t.getJson(ctx, url, &details); err != nil {
		return nil, err
	}

	castNames := make([]string, 0, 10)
	for i, c := range details.Credits.Cast {
		if i == 10 {
			break
		}
		castNames = append(castNames, c.Name)
	}
	directors := make([]string, 0, 2)
	for _, c := range details.Credits.Crew {
		if c.Job == "Director" {
			directors = append(directors, c.Name)
		}
	}
	genres := make([]string, 0, len(details.Genres))
	for _, g := range details.Genres {
		genres = append(genres, g.Name)
	}

	return &model.Movie{
		TmdbId:        details.Id,
		Title:         details.Title,
		OriginalTitle: details.OriginalTitle,
		ReleaseDate:   details.ReleaseDate,
		Runtime:       details.Runtime,
		PosterPath:    details.PosterPath,
		Overview:      details.Overview,
		Genres:        strings.Join(genres, ","),
		CastNames:     strings.Join(castNames, ","),
		Directors:     strings.Join(directors, ","),
		Budget:        details.Budget,
		Revenue:       details.Revenue,
		VoteAverage:   details.VoteAverage,
		HydratedAt:    time.Now().UTC(),
	}, nil
}

func (t *TmdbClient) GetListItems(ctx context.Context, externalListId string) ([]TmdbListItem, error) {
	url := fmt.Sprintf("%v/list/%v?api_key=%v",
		configs.GetConfigs().TmdbBaseUrl, externalListId, configs.GetConfigs().TmdbApiKey)

	var listRes tmdbListRes
	if err := t.getJson(ctx, url, &listRes); err != nil {
		return nil, err
	}

	items := make([]TmdbListItem, 0, len(listRes.Items))
	for _, item := range listRes.Items {
		if item.MediaType != "" && item.MediaType != "movie" {
			continue
		}
		items = append(items, TmdbListItem{TmdbId: item.Id, Title: item.Title})
	}
	return items, nil
}

func (t *TmdbClient) getJson(ctx context.Context, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrTmdbNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: unexpected status %v", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
