package routes

import (
	"collecte_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEntries         = "/entries"
	PathAvailableStores = "/stores/available"
)

// Volunteer-facing routes. Any authenticated user may record collections;
// center scoping is enforced inside the entry use case.
func addCollecteRoutes(rg *gin.RouterGroup, collecteHandler *handlers.CollecteHandler, volunteerHandler *handlers.VolunteerHandler, campaignHandler *handlers.CampaignHandler) {
	rg.GET(PathAvailableStores, volunteerHandler.ListAvailableStores)
	rg.GET("/campaigns/current", campaignHandler.GetCurrent)

	entries := rg.Group(PathEntries)
	{
		entries.POST("", collecteHandler.CreateEntry)
		entries.GET("", collecteHandler.List)
		entries.GET("/:id", collecteHandler.GetEntry)
		entries.POST("/:id/items", collecteHandler.AddItem)
		entries.DELETE("/:id/items/:index", collecteHandler.RemoveItem)
		entries.POST("/:id/validate", collecteHandler.Validate)
	}
}
