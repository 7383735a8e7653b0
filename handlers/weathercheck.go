package handlers

import (
	"net/http"
	"strconv"

	"go-beacon/weather"
	"go-beacon/weatherrisk"

	"github.com/gin-gonic/gin"
)

// WeatherCheck handles GET /api/beacon/weathercheck?lat=&lon=. Diagnostic
// endpoint: current conditions plus the assessor's risk rating.
func WeatherCheck(c *gin.Context, provider weather.Provider) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon must be a number"})
		return
	}

	current, err := provider.GetCurrent(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider":   provider.Name(),
		"conditions": current,
		"risk":       weatherrisk.Assess(current),
	})
}
