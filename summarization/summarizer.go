package summarization

import (
	"context"
	"fmt"
	"strings"

	"go-beacon/types"

	"github.com/sashabaranov/go-openai"
)

const maxMilestonesInPrompt = 8

// GenerateBriefing asks OpenAI for a short operational briefing of a
// generated plan. Optional path, never invoked during plan generation.
func GenerateBriefing(ctx context.Context, plan types.EmergencyResponsePlan, client *openai.Client) (string, error) {
	prompt := buildPrompt(plan)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an emergency management duty officer writing concise operational briefings.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // lower temperature for a focused briefing
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(plan types.EmergencyResponsePlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a 2-3 sentence operational briefing for this response plan.\n\n")
	fmt.Fprintf(&b, "Incident: %s severity %d at %s, %d people affected.\n",
		plan.Scenario.IncidentType, plan.Scenario.SeverityLevel, plan.Scenario.Location, plan.Scenario.PopulationAffected)
	fmt.Fprintf(&b, "Lead agency: %s. Supporting: %s.\n", plan.LeadAgency, strings.Join(plan.SupportingAgencies, ", "))
	fmt.Fprintf(&b, "Immediate actions: %s.\n", strings.Join(plan.ImmediateActions, "; "))

	b.WriteString("Milestones:")
	for i, m := range plan.KeyMilestones {
		if i >= maxMilestonesInPrompt {
			break
		}
		fmt.Fprintf(&b, " %s at +%.0fh;", m.Label, m.Offset.Hours())
	}
	b.WriteString("\n\nBriefing:")
	return b.String()
}
