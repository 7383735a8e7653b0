package handlers

import (
	"errors"
	"net/http"

	"go-beacon/coordinator"
	"go-beacon/types"

	"github.com/gin-gonic/gin"
)

// CoordinateResponse handles POST /api/beacon/coordinate: scenario in,
// response plan out.
func CoordinateResponse(c *gin.Context, coord *coordinator.Coordinator) {
	var scenario types.EmergencyScenario
	if err := c.ShouldBindJSON(&scenario); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := coord.CoordinateResponse(c.Request.Context(), scenario)
	if err != nil {
		var validationErr *types.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
		case errors.Is(err, types.ErrUnsupportedScenarioType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}
