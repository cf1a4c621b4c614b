package routes

import (
	"collecte_service/internal/adapter/http/handlers"
	"collecte_service/internal/adapter/http/middleware"
	"collecte_service/internal/auth"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, issuer *auth.JWTIssuer, authHandler *handlers.AuthHandler) {
	group := rg.Group(PathAuth)
	{
		group.POST("/login", authHandler.Login)
		group.GET("/me", middleware.RequireAuth(issuer), authHandler.Me)
	}
}
