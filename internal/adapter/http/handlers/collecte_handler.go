package handlers

import (
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

var (
	errInvalidEntryPayload = pkg.NewDomainErrorSimple("INVALID_ENTRY_INPUT", "Invalid entry payload", http.StatusBadRequest)
	errInvalidItemIndex    = pkg.NewDomainErrorSimple("INVALID_ITEM_INDEX", "Item index must be a non-negative integer", http.StatusBadRequest)
)

type CollecteHandler struct {
	usecase usecase.ICollecteUseCase
}

func NewCollecteHandler(uc usecase.ICollecteUseCase) *CollecteHandler {
	return &CollecteHandler{usecase: uc}
}

func (h *CollecteHandler) CreateEntry(c *gin.Context) {
	var payload request.CreateEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEntryPayload.HTTPStatus, errInvalidEntryPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.CreateEntry(c.Request.Context(), usecase.CreateEntryInput{
		CampaignID:   payload.CampaignID,
		StoreID:      payload.StoreID,
		UserID:       c.GetString(middleware.ContextUserID),
		UserCenterID: c.GetString(middleware.ContextCenterID),
	})
	if err != nil {
		appErr := mapCollecteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEntry(entry))
}

func (h *CollecteHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEntryPayload.HTTPStatus, errInvalidEntryPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), usecase.AddItemInput{
		ProductRef: payload.ProductRef,
		WeightKg:   payload.WeightKg,
	})
	if err != nil {
		appErr := mapCollecteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEntry(entry))
}

func (h *CollecteHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidItemIndex.HTTPStatus, errInvalidItemIndex.ToHTTPError())
		return
	}

	entry, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		appErr := mapCollecteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEntry(entry))
}

func (h *CollecteHandler) Validate(c *gin.Context) {
	entry, err := h.usecase.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCollecteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEntry(entry))
}

func (h *CollecteHandler) GetEntry(c *gin.Context) {
	entry, err := h.usecase.GetEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCollecteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEntry(entry))
}

func (h *CollecteHandler) List(c *gin.Context) {
	filter, err := entryFilterFromQuery(c)
	if err != nil {
		appErr := mapCollecteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	entries, err := h.usecase.ListEntries(c.Request.Context(), filter)
	if err != nil {
		appErr := mapCollecteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEntries(entries))
}

func entryFilterFromQuery(c *gin.Context) (interfaces.EntryFilter, error) {
	var filter interfaces.EntryFilter

	if raw := c.Query("campaign_id"); raw != "" {
		id, err := entities.ParseCampaignID(raw)
		if err != nil {
			return interfaces.EntryFilter{}, err
		}
		filter.CampaignID = id
	}
	if raw := c.Query("store_id"); raw != "" {
		id, err := entities.ParseStoreID(raw)
		if err != nil {
			return interfaces.EntryFilter{}, err
		}
		filter.StoreID = id
	}
	if raw := c.Query("created_by"); raw != "" {
		id, err := entities.ParseUserID(raw)
		if err != nil {
			return interfaces.EntryFilter{}, err
		}
		filter.CreatedBy = id
	}
	return filter, nil
}

func mapCollecteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidWeight):
		return pkg.NewDomainErrorSimple("INVALID_WEIGHT", "Weight must be strictly positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEntryNotFound):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_FOUND", "Entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCenterNotFound):
		return pkg.NewDomainErrorSimple("CENTER_NOT_FOUND", "Center not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthorizedCenterAccess):
		return pkg.NewDomainErrorSimple("FORBIDDEN_CENTER", "Store belongs to another center", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCampaignClosedForEntries):
		return pkg.NewDomainErrorSimple("CAMPAIGN_CLOSED_FOR_ENTRIES", "Campaign is no longer accepting entries", http.StatusConflict)
	case errors.Is(err, entities.ErrEntryAlreadyValidated):
		return pkg.NewDomainErrorSimple("ENTRY_ALREADY_VALIDATED", "Entry is validated and can no longer change", http.StatusConflict)
	case errors.Is(err, entities.ErrEmptyEntry):
		return pkg.NewDomainErrorSimple("ENTRY_EMPTY", "Entry has no items to validate", http.StatusConflict)
	case errors.Is(err, entities.ErrEntryItemIndex):
		return pkg.NewDomainErrorSimple("ENTRY_ITEM_INDEX_OUT_OF_RANGE", "No item at this index", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductArchived):
		return pkg.NewDomainErrorSimple("PRODUCT_ARCHIVED", "Product is archived", http.StatusConflict)
	case errors.Is(err, entities.ErrCenterInactive):
		return pkg.NewDomainErrorSimple("CENTER_INACTIVE", "Center is inactive", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
