package handlers

import (
	"net/http"

	"go-beacon/coordinator"
	"go-beacon/types"

	"github.com/gin-gonic/gin"
)

// PlanEvacuation handles POST /api/beacon/evacuation.
func PlanEvacuation(c *gin.Context, coord *coordinator.Coordinator) {
	var request struct {
		Zones    []types.EvacuationZone `json:"zones"`
		Shelters []string               `json:"shelters"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(request.Zones) == 0 || len(request.Shelters) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zones and shelters must not be empty"})
		return
	}

	plan, err := coord.PlanEvacuation(c.Request.Context(), request.Zones, request.Shelters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}
