package handlers

import (
	"errors"
	"net/http"

	response "collecte_service/internal/adapter/http/dto/response"
	"collecte_service/internal/adapter/http/middleware"
	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase"
	"collecte_service/pkg"

	"github.com/gin-gonic/gin"
)

type VolunteerHandler struct {
	usecase usecase.IVolunteerUseCase
}

func NewVolunteerHandler(uc usecase.IVolunteerUseCase) *VolunteerHandler {
	return &VolunteerHandler{usecase: uc}
}

func (h *VolunteerHandler) ListAvailableStores(c *gin.Context) {
	views, err := h.usecase.ListAvailableStores(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapVolunteerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAvailableStores(views))
}

func mapVolunteerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrNoActiveCenter):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_CENTER", "Volunteer has no active center", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
