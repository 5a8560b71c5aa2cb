package handler

import (
	"fmt"
	"movieclub_api/internal/service"
	errorHandler "movieclub_api/pkg/error"
	"movieclub_api/pkg/response"
	"movieclub_api/util"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	MarkSeen(c *fiber.Ctx) error
	UnmarkSeen(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// MarkSeen godoc
//
//	@Summary		Mark Seen
//	@Description	mark a movie as seen by the requester, idempotent.
//	@Tags			Movies
//	@Param			tmdbId	path	int	true	"tmdbId"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movies/:tmdbId/seen [post]
func (h *MovieHandler) MarkSeen(c *fiber.Ctx) error {
	return h.toggleSeen(c, true)
}

// UnmarkSeen godoc
//
//	@Summary		Unmark Seen
//	@Description	remove the requester's seen mark from a movie, idempotent.
//	@Tags			Movies
//	@Param			tmdbId	path	int	true	"tmdbId"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movies/:tmdbId/seen [delete]
func (h *MovieHandler) UnmarkSeen(c *fiber.Ctx) error {
	return h.toggleSeen(c, false)
}

func (h *MovieHandler) toggleSeen(c *fiber.Ctx, seen bool) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	tmdbId, err := c.ParamsInt("tmdbId", 0)
	if err != nil || tmdbId <= 0 {
		return response.ResponseError(c, "Invalid tmdbId", fiber.StatusBadRequest)
	}

	err = h.movieService.ToggleSeen(jwtUserData.UserId, int64(tmdbId), seen)
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("%v %v failed: %v", c.Method(), c.Path(), err), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}
