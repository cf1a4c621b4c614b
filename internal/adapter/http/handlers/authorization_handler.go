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

var errInvalidAuthorizationPayload = pkg.NewDomainErrorSimple("INVALID_AUTHORIZATION_INPUT", "Invalid authorization payload", http.StatusBadRequest)

type AuthorizationHandler struct {
	usecase usecase.IAuthorizationUseCase
}

func NewAuthorizationHandler(uc usecase.IAuthorizationUseCase) *AuthorizationHandler {
	return &AuthorizationHandler{usecase: uc}
}

func (h *AuthorizationHandler) Authorize(c *gin.Context) {
	var payload request.AuthorizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthorizationPayload.HTTPStatus, errInvalidAuthorizationPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Authorize(c.Request.Context(), payload.CampaignID, payload.StoreID); err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthorizationHandler) Deactivate(c *gin.Context) {
	var payload request.AuthorizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthorizationPayload.HTTPStatus, errInvalidAuthorizationPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Deactivate(c.Request.Context(), payload.CampaignID, payload.StoreID); err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthorizationHandler) GetForStore(c *gin.Context) {
	authorization, err := h.usecase.GetForStore(c.Request.Context(), c.Param("campaign_id"), c.Param("store_id"))
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAuthorization(authorization))
}

func (h *AuthorizationHandler) ListForCenterCampaign(c *gin.Context) {
	views, err := h.usecase.ListForCenterCampaign(c.Request.Context(), c.Param("campaign_id"), c.Param("center_id"))
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStoreAuthorizationViews(views))
}

func mapAuthorizationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCenterNotFound):
		return pkg.NewDomainErrorSimple("CENTER_NOT_FOUND", "Center not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreNotAuthorized):
		return pkg.NewDomainErrorSimple("STORE_NOT_AUTHORIZED", "Store is not authorized for this campaign", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
