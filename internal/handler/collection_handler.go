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

type ICollectionHandler interface {
	GetCollections(c *fiber.Ctx) error
	GetCollection(c *fiber.Ctx) error
	CreateCollection(c *fiber.Ctx) error
	UpdateCollection(c *fiber.Ctx) error
	DeleteCollection(c *fiber.Ctx) error
	SyncCollection(c *fiber.Ctx) error
}

type CollectionHandler struct {
	collectionService service.ICollectionService
}

func NewCollectionHandler(collectionService service.ICollectionService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
	}
}

//------------------------------------------
//------------------------------------------

// GetCollections godoc
//
//	@Summary		Collections
//	@Description	get global collections plus the requester's own.
//	@Tags			Collections
//	@Success		200	{object}	response.ResponseOKWithDataModel{data=[]model.Collection}
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/collections [get]
func (h *CollectionHandler) GetCollections(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	res, err := h.collectionService.GetCollections(jwtUserData.UserId)
	if err != nil {
		return collectionErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetCollection godoc
//
//	@Summary		Single Collection
//	@Description	get one collection with its movies enriched for the requester.
//	@Tags			Collections
//	@Param			id	path	int	true	"collectionId"
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=model.CollectionRes}
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/collections/:id [get]
func (h *CollectionHandler) GetCollection(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	collectionId, err := c.ParamsInt("id", 0)
	if err != nil || collectionId <= 0 {
		return response.ResponseError(c, "Invalid collectionId", fiber.StatusBadRequest)
	}

	res, err := h.collectionService.GetCollection(jwtUserData.UserId, int64(collectionId))
	if err != nil {
		return collectionErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

// CreateCollection godoc
//
//	@Summary		Create Collection
//	@Description	create a collection, only admins can mark one global.
//	@Tags			Collections
//	@Param			body	body	model.CreateCollectionReq	true	"collection"
//	@Success		201			{object}	response.ResponseOKWithDataModel{data=model.Collection}
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/collections [post]
func (h *CollectionHandler) CreateCollection(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.CreateCollectionReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.collectionService.CreateCollection(jwtUserData.UserId, jwtUserData.IsAdmin, &req)
	if err != nil {
		return collectionErrorResponse(c, err)
	}
	return response.ResponseCreated(c, res)
}

// UpdateCollection godoc
//
//	@Summary		Update Collection
//	@Description	update title, description and source of a collection. creator or admin only.
//	@Tags			Collections
//	@Param			id		path	int							true	"collectionId"
//	@Param			body	body	model.CreateCollectionReq	true	"collection"
//	@Success		200				{object}	response.ResponseOKModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/collections/:id [put]
func (h *CollectionHandler) UpdateCollection(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	collectionId, err := c.ParamsInt("id", 0)
	if err != nil || collectionId <= 0 {
		return response.ResponseError(c, "Invalid collectionId", fiber.StatusBadRequest)
	}

	var req model.CreateCollectionReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	err = h.collectionService.UpdateCollection(jwtUserData.UserId, jwtUserData.IsAdmin, int64(collectionId), &req)
	if err != nil {
		return collectionErrorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// DeleteCollection godoc
//
//	@Summary		Delete Collection
//	@Description	delete a collection and its movie links. creator or admin only.
//	@Tags			Collections
//	@Param			id	path	int	true	"collectionId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/collections/:id [delete]
func (h *CollectionHandler) DeleteCollection(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	collectionId, err := c.ParamsInt("id", 0)
	if err != nil || collectionId <= 0 {
		return response.ResponseError(c, "Invalid collectionId", fiber.StatusBadRequest)
	}

	err = h.collectionService.DeleteCollection(jwtUserData.UserId, jwtUserData.IsAdmin, int64(collectionId))
	if err != nil {
		return collectionErrorResponse(c, err)
	}
	return response.ResponseOK(c, "")
}

// SyncCollection godoc
//
//	@Summary		Sync Collection
//	@Description	re-pull the collection movies from its external list source.
//	@Tags			Collections
//	@Param			id	path	int	true	"collectionId"
//	@Success		200					{object}	response.ResponseOKWithDataModel{data=model.SyncRes}
//	@Failure		400,401,403,404,502	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/collections/:id/sync [post]
func (h *CollectionHandler) SyncCollection(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	collectionId, err := c.ParamsInt("id", 0)
	if err != nil || collectionId <= 0 {
		return response.ResponseError(c, "Invalid collectionId", fiber.StatusBadRequest)
	}

	res, err := h.collectionService.SyncCollection(jwtUserData.UserId, jwtUserData.IsAdmin, int64(collectionId))
	if err != nil {
		return collectionErrorResponse(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

func collectionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCollectionNotFound):
		return response.ResponseError(c, response.CollectionNotFound, fiber.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		return response.ResponseError(c, response.NotCollectionOwner, fiber.StatusForbidden)
	case errors.Is(err, service.ErrInvalidInput):
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	case errors.Is(err, service.ErrNotSyncable):
		return response.ResponseError(c, response.CollectionNotSyncable, fiber.StatusBadRequest)
	case errors.Is(err, service.ErrExternalSource):
		return response.ResponseError(c, response.ExternalSourceFailed, fiber.StatusBadGateway)
	default:
		errorHandler.SaveError(fmt.Sprintf("%v %v failed: %v", c.Method(), c.Path(), err), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
}
