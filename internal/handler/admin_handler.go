package handler

import (
	"errors"
	"fmt"
	"movieclub_api/internal/service"
	"movieclub_api/model"
	errorHandler "movieclub_api/pkg/error"
	"movieclub_api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IAdminHandler interface {
	GetMeetups(c *fiber.Ctx) error
	CreateMeetup(c *fiber.Ctx) error
	UpdateMeetup(c *fiber.Ctx) error
	DeleteMeetup(c *fiber.Ctx) error
	PickMovie(c *fiber.Ctx) error
	UpsertAward(c *fiber.Ctx) error
}

type AdminHandler struct {
	meetupService service.IMeetupService
	movieService  service.IMovieService
}

func NewAdminHandler(meetupService service.IMeetupService, movieService service.IMovieService) *AdminHandler {
	return &AdminHandler{
		meetupService: meetupService,
		movieService:  movieService,
	}
}

//------------------------------------------
//------------------------------------------

// GetMeetups godoc
//
//	@Summary		Meetups
//	@Description	get all meetups, newest date first.
//	@Tags			Admin
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=[]model.Meetup}
//	@Failure		401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/meetups [get]
func (h *AdminHandler) GetMeetups(c *fiber.Ctx) error {
	res, err := h.meetupService.GetMeetups()
	if err != nil {
		return adminErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// CreateMeetup godoc
//
//	@Summary		Create Meetup
//	@Description	schedule a meetup, it opens for nominations immediately.
//	@Tags			Admin
//	@Param			body	body	model.CreateMeetupReq	true	"meetup"
//	@Success		201			{object}	response.ResponseOKWithDataModel{data=model.Meetup}
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/meetups [post]
func (h *AdminHandler) CreateMeetup(c *fiber.Ctx) error {
	var req model.CreateMeetupReq
	if err := c.BodyParser(&req); err != nil || req.Date.IsZero() {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.meetupService.CreateMeetup(req.Date)
	if err != nil {
		return adminErrorResponse(c, err)
	}
	return response.ResponseCreated(c, res)
}

// UpdateMeetup godoc
//
//	@Summary		Update Meetup
//	@Description	change the date, link a list manually or clear the link.
//	@Tags			Admin
//	@Param			id		path	int						true	"meetupId"
//	@Param			body	body	model.UpdateMeetupReq	true	"meetup"
//	@Success		200					{object}	response.ResponseOKModel
//	@Failure		400,401,403,404,409	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/meetups/:id [patch]
func (h *AdminHandler) UpdateMeetup(c *fiber.Ctx) error {
	meetupId, err := c.ParamsInt("id", 0)
	if err != nil || meetupId <= 0 {
		return response.ResponseError(c, "Invalid meetupId", fiber.StatusBadRequest)
	}

	var req model.UpdateMeetupReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	err = h.meetupService.UpdateMeetup(int64(meetupId), &req)
	if err != nil {
		// linking a list that already belongs to another meetup is a conflict
		if errors.Is(err, service.ErrListLinked) {
			return response.ResponseError(c, response.ListLinked, fiber.StatusConflict)
		}
		return adminErrorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// DeleteMeetup godoc
//
//	@Summary		Delete Meetup
//	@Description	delete a meetup with its votes and nominations.
//	@Tags			Admin
//	@Param			id	path	int	true	"meetupId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/meetups/:id [delete]
func (h *AdminHandler) DeleteMeetup(c *fiber.Ctx) error {
	meetupId, err := c.ParamsInt("id", 0)
	if err != nil || meetupId <= 0 {
		return response.ResponseError(c, "Invalid meetupId", fiber.StatusBadRequest)
	}

	err = h.meetupService.DeleteMeetup(int64(meetupId))
	if err != nil {
		return adminErrorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

// PickMovie godoc
//
//	@Summary		Pick Movie
//	@Description	close the polls for the next open meetup now, ignoring the cutoff.
//	@Tags			Admin
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=model.PickMovieRes}
//	@Failure		401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/pick-movie [post]
func (h *AdminHandler) PickMovie(c *fiber.Ctx) error {
	res := h.meetupService.ClosePolls(0, true)
	return response.ResponseOKWithData(c, res)
}

// UpsertAward godoc
//
//	@Summary		Upsert Awards
//	@Description	set the awards summary shown on a movie.
//	@Tags			Admin
//	@Param			tmdbId	path	int						true	"tmdbId"
//	@Param			body	body	model.UpsertAwardReq	true	"awards"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/awards/:tmdbId [put]
func (h *AdminHandler) UpsertAward(c *fiber.Ctx) error {
	tmdbId, err := c.ParamsInt("tmdbId", 0)
	if err != nil || tmdbId <= 0 {
		return response.ResponseError(c, "Invalid tmdbId", fiber.StatusBadRequest)
	}

	var req model.UpsertAwardReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	err = h.movieService.UpsertAward(int64(tmdbId), &req)
	if err != nil {
		return adminErrorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

func adminErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrMeetupNotFound):
		return response.ResponseError(c, response.MeetupNotFound, fiber.StatusNotFound)
	case errors.Is(err, service.ErrListNotFound):
		return response.ResponseError(c, response.ListNotFound, fiber.StatusNotFound)
	case errors.Is(err, service.ErrInvalidInput):
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	default:
		errorHandler.SaveError(fmt.Sprintf("%v %v failed: %v", c.Method(), c.Path(), err), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
}
