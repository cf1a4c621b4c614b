package handlers

import (
	"errors"
	"net/http"

	request "collecte_service/internal/adapter/http/dto/request"
	response "collecte_service/internal/adapter/http/dto/response"
	"collecte_service/internal/adapter/http/middleware"
	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase"
	"collecte_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStorePayload = pkg.NewDomainErrorSimple("INVALID_STORE_INPUT", "Invalid store payload", http.StatusBadRequest)

type StoreHandler struct {
	usecase usecase.IStoreUseCase
}

func NewStoreHandler(uc usecase.IStoreUseCase) *StoreHandler {
	return &StoreHandler{usecase: uc}
}

func (h *StoreHandler) Create(c *gin.Context) {
	var payload request.CreateStoreRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	store, err := h.usecase.Create(c.Request.Context(), usecase.CreateStoreInput{
		CenterID:    payload.CenterID,
		Name:        payload.Name,
		Address:     payload.Address,
		City:        payload.City,
		PostalCode:  payload.PostalCode,
		Phone:       payload.Phone,
		ContactName: payload.ContactName,
	})
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStore(store))
}

func (h *StoreHandler) Update(c *gin.Context) {
	var payload request.UpdateStoreRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	store, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateStoreInput{
		Name:        payload.Name,
		Address:     payload.Address,
		City:        payload.City,
		PostalCode:  payload.PostalCode,
		Phone:       payload.Phone,
		ContactName: payload.ContactName,
	})
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) MarkUnavailable(c *gin.Context) {
	var payload request.StoreStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	store, err := h.usecase.MarkUnavailable(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID), payload.Reason)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) MarkAvailable(c *gin.Context) {
	store, err := h.usecase.MarkAvailable(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) Close(c *gin.Context) {
	var payload request.StoreStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	store, err := h.usecase.Close(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID), payload.Reason)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) AddImage(c *gin.Context) {
	var payload request.StoreImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	store, err := h.usecase.AddImage(c.Request.Context(), c.Param("id"), payload.URL, payload.IsPrimary)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) RemoveImage(c *gin.Context) {
	var payload request.StoreImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	store, err := h.usecase.RemoveImage(c.Request.Context(), c.Param("id"), payload.URL)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) SetPrimaryImage(c *gin.Context) {
	var payload request.StoreImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	store, err := h.usecase.SetPrimaryImage(c.Request.Context(), c.Param("id"), payload.URL)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) GenerateImageUploadToken(c *gin.Context) {
	var payload request.StoreImageUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	token, err := h.usecase.GenerateImageUploadToken(c.Request.Context(), c.Param("id"), payload.FileName, payload.ContentType)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUploadToken(token))
}

func (h *StoreHandler) GetByID(c *gin.Context) {
	store, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) ListByCenter(c *gin.Context) {
	stores, err := h.usecase.ListByCenter(c.Request.Context(), c.Param("center_id"))
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStores(stores))
}

func mapStoreError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreInput),
		errors.Is(err, entities.ErrInvalidID),
		errors.Is(err, entities.ErrInvalidImageURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrStatusReasonNeeded):
		return pkg.NewDomainErrorSimple("STATUS_REASON_NEEDED", "A reason is required for this status change", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCenterNotFound):
		return pkg.NewDomainErrorSimple("CENTER_NOT_FOUND", "Center not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrStoreImageNotFound):
		return pkg.NewDomainErrorSimple("STORE_IMAGE_NOT_FOUND", "Store image not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreAddressTaken):
		return pkg.NewDomainErrorSimple("STORE_ADDRESS_TAKEN", "A store already exists at this address for this center", http.StatusConflict)
	case errors.Is(err, entities.ErrStoreAlreadyClosed):
		return pkg.NewDomainErrorSimple("STORE_CLOSED", "Store is closed", http.StatusConflict)
	case errors.Is(err, entities.ErrCenterInactive):
		return pkg.NewDomainErrorSimple("CENTER_INACTIVE", "Center is inactive", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
