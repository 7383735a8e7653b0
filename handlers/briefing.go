package handlers

import (
	"net/http"
	"os"

	"go-beacon/summarization"
	"go-beacon/types"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
)

// GenerateBriefing handles POST /api/beacon/briefing: a previously generated
// plan in, a short OpenAI-written operational briefing out.
func GenerateBriefing(c *gin.Context) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "briefing generation requires OPENAI_API_KEY"})
		return
	}

	var plan types.EmergencyResponsePlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := openai.NewClient(apiKey)
	briefing, err := summarization.GenerateBriefing(c.Request.Context(), plan, client)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"planId":   plan.PlanID,
		"briefing": briefing,
	})
}
