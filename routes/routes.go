package routes

import (
	"go-beacon/coordinator"
	"go-beacon/handlers"
	"go-beacon/weather"

	"github.com/gin-gonic/gin"
)

func SetupRouter(coord *coordinator.Coordinator, weatherProvider weather.Provider) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Go Beacon!",
		})
	})

	// api routes
	api := r.Group("/api/beacon")
	{
		api.POST("/coordinate", func(c *gin.Context) {
			handlers.CoordinateResponse(c, coord)
		})
		api.POST("/evacuation", func(c *gin.Context) {
			handlers.PlanEvacuation(c, coord)
		})
		api.GET("/historical", func(c *gin.Context) {
			handlers.SearchHistorical(c, coord)
		})
		api.GET("/weathercheck", func(c *gin.Context) {
			handlers.WeatherCheck(c, weatherProvider)
		})
		api.POST("/briefing", handlers.GenerateBriefing)
	}

	return r
}
