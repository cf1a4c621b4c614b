package handlers

import (
	"errors"
	"net/http"

	request "collecte_service/internal/adapter/http/dto/request"
	response "collecte_service/internal/adapter/http/dto/response"
	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase"
	"collecte_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCenterPayload = pkg.NewDomainErrorSimple("INVALID_CENTER_INPUT", "Invalid center payload", http.StatusBadRequest)

type CenterHandler struct {
	usecase usecase.ICenterUseCase
}

func NewCenterHandler(uc usecase.ICenterUseCase) *CenterHandler {
	return &CenterHandler{usecase: uc}
}

func (h *CenterHandler) Create(c *gin.Context) {
	var payload request.CenterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCenterPayload.HTTPStatus, errInvalidCenterPayload.ToHTTPError())
		return
	}

	center, err := h.usecase.Create(c.Request.Context(), usecase.CenterInfoInput{
		Name:       payload.Name,
		Address:    payload.Address,
		City:       payload.City,
		PostalCode: payload.PostalCode,
	})
	if err != nil {
		appErr := mapCenterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCenter(center))
}

func (h *CenterHandler) Update(c *gin.Context) {
	var payload request.CenterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCenterPayload.HTTPStatus, errInvalidCenterPayload.ToHTTPError())
		return
	}

	center, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.CenterInfoInput{
		Name:       payload.Name,
		Address:    payload.Address,
		City:       payload.City,
		PostalCode: payload.PostalCode,
	})
	if err != nil {
		appErr := mapCenterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCenter(center))
}

func (h *CenterHandler) Activate(c *gin.Context) {
	center, err := h.usecase.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCenterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCenter(center))
}

func (h *CenterHandler) Deactivate(c *gin.Context) {
	center, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCenterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCenter(center))
}

func (h *CenterHandler) GetByID(c *gin.Context) {
	center, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCenterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCenter(center))
}

func (h *CenterHandler) List(c *gin.Context) {
	centers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCenterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCenters(centers))
}

func mapCenterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCenterInput), errors.Is(err, entities.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCenterNotFound):
		return pkg.NewDomainErrorSimple("CENTER_NOT_FOUND", "Center not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCenterInactive):
		return pkg.NewDomainErrorSimple("CENTER_INACTIVE", "Center is inactive", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
