package routes

import (
	"collecte_service/internal/adapter/http/handlers"
	"collecte_service/internal/adapter/http/middleware"
	"collecte_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathCampaigns      = "/campaigns"
	PathCenters        = "/centers"
	PathStores         = "/stores"
	PathProducts       = "/products"
	PathAuthorizations = "/authorizations"
	PathVolunteers     = "/volunteers"
)

func addAdminRoutes(rg *gin.RouterGroup, centerHandler *handlers.CenterHandler, storeHandler *handlers.StoreHandler, campaignHandler *handlers.CampaignHandler, authorizationHandler *handlers.AuthorizationHandler, productHandler *handlers.ProductHandler, authHandler *handlers.AuthHandler) {
	admin := rg.Group("")
	admin.Use(middleware.RequireRole(string(entities.UserRoleAdmin)))

	campaigns := admin.Group(PathCampaigns)
	{
		campaigns.POST("", campaignHandler.Create)
		campaigns.PUT("/:id", campaignHandler.Update)
		campaigns.PATCH("/:id/start", campaignHandler.Start)
		campaigns.PATCH("/:id/complete", campaignHandler.Complete)
		campaigns.PATCH("/:id/close", campaignHandler.Close)
		campaigns.PATCH("/:id/cancel", campaignHandler.Cancel)
		campaigns.GET("/:id", campaignHandler.GetByID)
		campaigns.GET("", campaignHandler.List)
	}

	centers := admin.Group(PathCenters)
	{
		centers.POST("", centerHandler.Create)
		centers.PUT("/:id", centerHandler.Update)
		centers.PATCH("/:id/activate", centerHandler.Activate)
		centers.PATCH("/:id/deactivate", centerHandler.Deactivate)
		centers.GET("/:id", centerHandler.GetByID)
		centers.GET("", centerHandler.List)
	}

	stores := admin.Group(PathStores)
	{
		stores.POST("", storeHandler.Create)
		stores.PUT("/:id", storeHandler.Update)
		stores.PATCH("/:id/close", storeHandler.Close)
		stores.PATCH("/:id/unavailable", storeHandler.MarkUnavailable)
		stores.PATCH("/:id/available", storeHandler.MarkAvailable)
		stores.POST("/:id/images", storeHandler.AddImage)
		stores.DELETE("/:id/images", storeHandler.RemoveImage)
		stores.PATCH("/:id/images/primary", storeHandler.SetPrimaryImage)
		stores.POST("/:id/images/upload-token", storeHandler.GenerateImageUploadToken)
		stores.GET("/:id", storeHandler.GetByID)
		stores.GET("/center/:center_id", storeHandler.ListByCenter)
	}

	products := admin.Group(PathProducts)
	{
		products.POST("", productHandler.Create)
		products.PUT("/:reference", productHandler.Update)
		products.PATCH("/:reference/archive", productHandler.Archive)
		products.GET("/:reference", productHandler.GetByReference)
		products.GET("", productHandler.List)
	}

	authorizations := admin.Group(PathAuthorizations)
	{
		authorizations.POST("", authorizationHandler.Authorize)
		authorizations.PATCH("/deactivate", authorizationHandler.Deactivate)
		authorizations.GET("/:campaign_id/stores/:store_id", authorizationHandler.GetForStore)
		authorizations.GET("/:campaign_id/centers/:center_id", authorizationHandler.ListForCenterCampaign)
	}

	volunteers := admin.Group(PathVolunteers)
	{
		volunteers.POST("", authHandler.CreateVolunteer)
		volunteers.GET("/:id", authHandler.GetUser)
	}
}
