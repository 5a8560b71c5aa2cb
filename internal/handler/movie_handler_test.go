package handler

import (
	"encoding/json"
	"errors"
	"movieclub_api/api/middleware"
	"movieclub_api/configs"
	"movieclub_api/pkg/response"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type failingMovieService struct {
	stubMovieService
}

func (f *failingMovieService) ToggleSeen(userId int64, tmdbId int64, seen bool) error {
	return errors.New("storage offline")
}

func TestSeenToggleStatusCodes(t *testing.T) {
	configs.SetTestConfigs(configs.ConfigStruct{AccessTokenSecret: "test-secret-test-secret-test-secret"})
	movieHandler := NewMovieHandler(&stubMovieService{})
	app := fiber.New()
	app.Post("/v1/movies/:tmdbId/seen", middleware.AuthMiddleware, movieHandler.MarkSeen)
	token := signToken(t, 1, false)

	resp := doRequest(t, app, http.MethodPost, "/v1/movies/700/seen", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %v", resp.StatusCode)
	}

	resp = doRequest(t, app, http.MethodPost, "/v1/movies/0/seen", token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400 for bad tmdbId, got %v", resp.StatusCode)
	}
}

func TestUnexpectedFaultReturnsServerError(t *testing.T) {
	configs.SetTestConfigs(configs.ConfigStruct{AccessTokenSecret: "test-secret-test-secret-test-secret"})
	movieHandler := NewMovieHandler(&failingMovieService{})
	app := fiber.New()
	app.Post("/v1/movies/:tmdbId/seen", middleware.AuthMiddleware, movieHandler.MarkSeen)
	token := signToken(t, 1, false)

	resp := doRequest(t, app, http.MethodPost, "/v1/movies/700/seen", token, nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Expected 500 for storage fault, got %v", resp.StatusCode)
	}
	var envelope response.ResponseErrorModel
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	if envelope.ErrorMessage != response.ServerError {
		t.Fatalf("Unexpected error message: %v", envelope.ErrorMessage)
	}
}
