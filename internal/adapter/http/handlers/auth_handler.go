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

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid authentication payload", http.StatusBadRequest)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	out, err := h.usecase.Login(c.Request.Context(), usecase.LoginInput{
		Username: payload.Username,
		Password: payload.Password,
	})
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLogin(out))
}

func (h *AuthHandler) CreateVolunteer(c *gin.Context) {
	var payload request.CreateVolunteerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.CreateVolunteer(c.Request.Context(), usecase.CreateVolunteerInput{
		Username: payload.Username,
		Password: payload.Password,
		CenterID: payload.CenterID,
	})
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.GetUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.usecase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserInput), errors.Is(err, entities.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCenterNotFound):
		return pkg.NewDomainErrorSimple("CENTER_NOT_FOUND", "Center not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserExists):
		return pkg.NewDomainErrorSimple("USER_EXISTS", "A user with this username already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrCenterInactive):
		return pkg.NewDomainErrorSimple("CENTER_INACTIVE", "Center is inactive", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
