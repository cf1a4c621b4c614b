package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "collecte_service/internal/adapter/http/dto/request"
	response "collecte_service/internal/adapter/http/dto/response"
	"collecte_service/internal/adapter/http/middleware"
	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase"
	"collecte_service/internal/usecase/interfaces"
	"collecte_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCampaignPayload = pkg.NewDomainErrorSimple("INVALID_CAMPAIGN_INPUT", "Invalid campaign payload", http.StatusBadRequest)

// CampaignHandler handles HTTP requests for the campaign lifecycle.

type CampaignHandler struct {
	usecase usecase.ICampaignUseCase
}

func NewCampaignHandler(uc usecase.ICampaignUseCase) *CampaignHandler {
	return &CampaignHandler{usecase: uc}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var payload request.CreateCampaignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCampaignPayload.HTTPStatus, errInvalidCampaignPayload.ToHTTPError())
		return
	}

	campaign, err := h.usecase.Create(c.Request.Context(), usecase.CreateCampaignInput{
		Name:            payload.Name,
		Year:            payload.Year,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		GracePeriodDays: payload.GracePeriodDays,
		CreatedBy:       c.GetString(middleware.ContextUserID),
		Description:     payload.Description,
		Objectives:      payload.Objectives,
	})
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCampaign(campaign))
}

func (h *CampaignHandler) Update(c *gin.Context) {
	var payload request.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCampaignPayload.HTTPStatus, errInvalidCampaignPayload.ToHTTPError())
		return
	}

	campaign, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateCampaignInput{
		Name:               payload.Name,
		StartDate:          payload.StartDate,
		EndDate:            payload.EndDate,
		GracePeriodEndDate: payload.GracePeriodEndDate,
		Description:        payload.Description,
		Objectives:         payload.Objectives,
	})
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

func (h *CampaignHandler) Start(c *gin.Context) {
	h.transition(c, h.usecase.Start)
}

func (h *CampaignHandler) Complete(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

func (h *CampaignHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *CampaignHandler) Close(c *gin.Context) {
	campaign, err := h.usecase.Close(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

func (h *CampaignHandler) transition(c *gin.Context, apply func(ctx context.Context, id string) (entities.Campaign, error)) {
	campaign, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

func (h *CampaignHandler) GetByID(c *gin.Context) {
	campaign, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

func (h *CampaignHandler) GetCurrent(c *gin.Context) {
	campaign, err := h.usecase.GetCurrent(c.Request.Context())
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

func (h *CampaignHandler) List(c *gin.Context) {
	filter := interfaces.CampaignFilter{
		Status: entities.CampaignStatus(c.Query("status")),
	}
	if year := c.Query("year"); year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			filter.Year = y
		}
	}

	campaigns, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaigns(campaigns))
}

func mapCampaignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCampaignInput), errors.Is(err, entities.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidCampaignPeriod):
		return pkg.NewDomainErrorSimple("INVALID_CAMPAIGN_PERIOD", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCampaignYearExists):
		return pkg.NewDomainErrorSimple("CAMPAIGN_YEAR_EXISTS", "A campaign already exists for this year", http.StatusConflict)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCampaignNotModifiable):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_MODIFIABLE", "Only planned campaigns can be edited", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidStatusTransition),
		errors.Is(err, entities.ErrCannotCloseCampaign),
		errors.Is(err, entities.ErrCannotCancelClosedCampaign):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
