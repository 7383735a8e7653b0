package handlers

import (
	"net/http"
	"strconv"

	"go-beacon/coordinator"
	"go-beacon/types"

	"github.com/gin-gonic/gin"
)

// SearchHistorical handles GET /api/beacon/historical?q=&type=&minSeverity=.
func SearchHistorical(c *gin.Context, coord *coordinator.Coordinator) {
	query := types.HistoricalQuery{
		Keywords:     c.Query("q"),
		IncidentType: types.IncidentType(c.Query("type")),
	}
	if query.IncidentType != "" && !query.IncidentType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown incident type " + string(query.IncidentType)})
		return
	}
	if raw := c.Query("minSeverity"); raw != "" {
		minSeverity, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minSeverity must be an integer"})
			return
		}
		query.MinSeverity = minSeverity
	}

	incidents := coord.SearchHistorical(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{
		"count":     len(incidents),
		"incidents": incidents,
	})
}
