package handler

import (
	"errors"
	"fmt"
	"movieclub_api/internal/service"
	"movieclub_api/model"
	errorHandler "movieclub_api/pkg/error"
	"movieclub_api/pkg/response"
	"movieclub_api/util"

	"github.com/gofiber/fiber/v2"
)

type IListHandler interface {
	GetLists(c *fiber.Ctx) error
	GetArchivedLists(c *fiber.Ctx) error
	GetNominatedLists(c *fiber.Ctx) error
	GetList(c *fiber.Ctx) error
	CreateList(c *fiber.Ctx) error
	UpdateList(c *fiber.Ctx) error
	DeleteList(c *fiber.Ctx) error
	CastVote(c *fiber.Ctx) error
	RetractVote(c *fiber.Ctx) error
	Nominate(c *fiber.Ctx) error
	RetractNomination(c *fiber.Ctx) error
	GetComments(c *fiber.Ctx) error
	AddComment(c *fiber.Ctx) error
	DeleteComment(c *fiber.Ctx) error
}

type ListHandler struct {
	listService   service.IListService
	meetupService service.IMeetupService
}

func NewListHandler(listService service.IListService, meetupService service.IMeetupService) *ListHandler {
	return &ListHandler{
		listService:   listService,
		meetupService: meetupService,
	}
}

//------------------------------------------
//------------------------------------------

// GetLists godoc
//
//	@Summary		Open Lists
//	@Description	get lists not linked to a meetup yet, enriched for the requester.
//	@Tags			Lists
//	@Success		200	{object}	response.ResponseOKWithDataModel{data=[]model.ListRes}
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists [get]
func (h *ListHandler) GetLists(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	res, err := h.listService.GetOpenLists(jwtUserData.UserId)
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetArchivedLists godoc
//
//	@Summary		Archived Lists
//	@Description	get lists watched at past meetups, newest meetup first.
//	@Tags			Lists
//	@Success		200	{object}	response.ResponseOKWithDataModel{data=[]model.ListRes}
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/archive [get]
func (h *ListHandler) GetArchivedLists(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	res, err := h.listService.GetArchivedLists(jwtUserData.UserId)
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetNominatedLists godoc
//
//	@Summary		Nominated Lists
//	@Description	get lists nominated for the current open meetup, sorted by current votes.
//	@Tags			Lists
//	@Success		200	{object}	response.ResponseOKWithDataModel{data=[]model.ListRes}
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/nominated [get]
func (h *ListHandler) GetNominatedLists(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	res, err := h.listService.GetNominatedLists(jwtUserData.UserId)
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetList godoc
//
//	@Summary		Single List
//	@Description	get one list with its ranked movies and aggregates.
//	@Tags			Lists
//	@Param			id	path	int	true	"listId"
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=model.ListRes}
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/:id [get]
func (h *ListHandler) GetList(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	listId, err := c.ParamsInt("id", 0)
	if err != nil || listId <= 0 {
		return response.ResponseError(c, "Invalid listId", fiber.StatusBadRequest)
	}

	res, err := h.listService.GetList(jwtUserData.UserId, int64(listId))
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

// CreateList godoc
//
//	@Summary		Create List
//	@Description	create a ranked movie list, metadata hydrates in the background.
//	@Tags			Lists
//	@Param			body		body		model.CreateListReq	true	"list"
//	@Success		201			{object}	response.ResponseOKWithDataModel{data=model.ListRes}
//	@Failure		400,401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists [post]
func (h *ListHandler) CreateList(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.CreateListReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.listService.CreateList(jwtUserData.UserId, &req)
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseCreated(c, res)
}

// UpdateList godoc
//
//	@Summary		Update List
//	@Description	replace title, description and ranked movies. creator or admin only.
//	@Tags			Lists
//	@Param			id			path		int					true	"listId"
//	@Param			body		body		model.CreateListReq	true	"list"
//	@Success		200			{object}	response.ResponseOKWithDataModel{data=model.ListRes}
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/:id [put]
func (h *ListHandler) UpdateList(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	listId, err := c.ParamsInt("id", 0)
	if err != nil || listId <= 0 {
		return response.ResponseError(c, "Invalid listId", fiber.StatusBadRequest)
	}

	var req model.CreateListReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.listService.UpdateList(jwtUserData.UserId, jwtUserData.IsAdmin, int64(listId), &req)
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// DeleteList godoc
//
//	@Summary		Delete List
//	@Description	delete a list. blocked while other members' votes back its nomination.
//	@Tags			Lists
//	@Param			id	path	int	true	"listId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/:id [delete]
func (h *ListHandler) DeleteList(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	listId, err := c.ParamsInt("id", 0)
	if err != nil || listId <= 0 {
		return response.ResponseError(c, "Invalid listId", fiber.StatusBadRequest)
	}

	err = h.listService.DeleteList(jwtUserData.UserId, jwtUserData.IsAdmin, int64(listId))
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

// CastVote godoc
//
//	@Summary		Cast Vote
//	@Description	spend one vote of the per-meetup budget on a list.
//	@Tags			Voting
//	@Param			id	path	int	true	"listId"
//	@Success		200			{object}	response.ResponseOKWithDataModel{data=model.VoteRes}
//	@Failure		400,401,409	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/:id/vote [post]
func (h *ListHandler) CastVote(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	listId, err := c.ParamsInt("id", 0)
	if err != nil || listId <= 0 {
		return response.ResponseError(c, "Invalid listId", fiber.StatusBadRequest)
	}

	res, err := h.meetupService.CastVote(jwtUserData.UserId, int64(listId))
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// RetractVote godoc
//
//	@Summary		Retract Vote
//	@Description	remove the requester's vote for the current open meetup, idempotent.
//	@Tags			Voting
//	@Param			id	path	int	true	"listId"
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=model.VoteRes}
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/:id/vote [delete]
func (h *ListHandler) RetractVote(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	listId, err := c.ParamsInt("id", 0)
	if err != nil || listId <= 0 {
		return response.ResponseError(c, "Invalid listId", fiber.StatusBadRequest)
	}

	res, err := h.meetupService.RetractVote(jwtUserData.UserId, int64(listId))
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// Nominate godoc
//
//	@Summary		Nominate List
//	@Description	propose a list for the next open meetup, swapping any earlier nomination.
//	@Tags			Voting
//	@Param			id	path	int	true	"listId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/:id/nominate [post]
func (h *ListHandler) Nominate(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	listId, err := c.ParamsInt("id", 0)
	if err != nil || listId <= 0 {
		return response.ResponseError(c, "Invalid listId", fiber.StatusBadRequest)
	}

	err = h.meetupService.Nominate(jwtUserData.UserId, int64(listId))
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// RetractNomination godoc
//
//	@Summary		Retract Nomination
//	@Description	withdraw the requester's nomination unless other members voted for it.
//	@Tags			Voting
//	@Param			id	path	int	true	"listId"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/:id/nominate [delete]
func (h *ListHandler) RetractNomination(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	listId, err := c.ParamsInt("id", 0)
	if err != nil || listId <= 0 {
		return response.ResponseError(c, "Invalid listId", fiber.StatusBadRequest)
	}

	err = h.meetupService.RetractNomination(jwtUserData.UserId, int64(listId))
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

// GetComments godoc
//
//	@Summary		List Comments
//	@Description	get comments of one list, oldest first.
//	@Tags			Comments
//	@Param			id	path	int	true	"listId"
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=[]model.Comment}
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/:id/comments [get]
func (h *ListHandler) GetComments(c *fiber.Ctx) error {
	listId, err := c.ParamsInt("id", 0)
	if err != nil || listId <= 0 {
		return response.ResponseError(c, "Invalid listId", fiber.StatusBadRequest)
	}

	res, err := h.listService.GetComments(int64(listId))
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// AddComment godoc
//
//	@Summary		Add Comment
//	@Description	append a comment to a list.
//	@Tags			Comments
//	@Param			id		path		int						true	"listId"
//	@Param			body	body		model.CreateCommentReq	true	"comment"
//	@Success		201			{object}	response.ResponseOKWithDataModel{data=model.Comment}
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/lists/:id/comments [post]
func (h *ListHandler) AddComment(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	listId, err := c.ParamsInt("id", 0)
	if err != nil || listId <= 0 {
		return response.ResponseError(c, "Invalid listId", fiber.StatusBadRequest)
	}

	var req model.CreateCommentReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.listService.AddComment(jwtUserData.UserId, int64(listId), req.Body)
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseCreated(c, res)
}

// DeleteComment godoc
//
//	@Summary		Delete Comment
//	@Description	delete a comment. author or admin only.
//	@Tags			Comments
//	@Param			id	path	int	true	"commentId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/comments/:id [delete]
func (h *ListHandler) DeleteComment(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	commentId, err := c.ParamsInt("id", 0)
	if err != nil || commentId <= 0 {
		return response.ResponseError(c, "Invalid commentId", fiber.StatusBadRequest)
	}

	err = h.listService.DeleteComment(jwtUserData.UserId, jwtUserData.IsAdmin, int64(commentId))
	if err != nil {
		return listErrorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

func listErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNoOpenMeetup):
		return response.ResponseError(c, response.NoOpenMeetup, fiber.StatusBadRequest)
	case errors.Is(err, service.ErrVoteLimitReached):
		return response.ResponseError(c, response.VoteLimitReached, fiber.StatusConflict)
	case errors.Is(err, service.ErrListLocked):
		return response.ResponseError(c, response.ListLocked, fiber.StatusBadRequest)
	case errors.Is(err, service.ErrListLinked):
		return response.ResponseError(c, response.ListLinked, fiber.StatusBadRequest)
	case errors.Is(err, service.ErrListNotFound):
		return response.ResponseError(c, response.ListNotFound, fiber.StatusNotFound)
	case errors.Is(err, service.ErrCommentNotFound):
		return response.ResponseError(c, response.CommentNotFound, fiber.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		return response.ResponseError(c, response.NotListOwner, fiber.StatusForbidden)
	case errors.Is(err, service.ErrInvalidInput):
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	default:
		errorHandler.SaveError(fmt.Sprintf("%v %v failed: %v", c.Method(), c.Path(), err), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
}
