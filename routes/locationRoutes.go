package routes

import (
	"bolbharat-be/controllers"

	"github.com/gin-gonic/gin"
)

// LocationRoutes sets up the cascading location option routes
func LocationRoutes(r *gin.Engine) {
	locations := r.Group("/api/locations")
	{
		locations.GET("/states", controllers.GetStates)
		locations.GET("/districts", controllers.GetDistricts)
		locations.GET("/cities", controllers.GetCities)
		locations.GET("/villages", controllers.GetVillages)
	}
}
