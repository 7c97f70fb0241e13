package careai

import (
	"context"
	"fmt"

	"sporelia/models"
)

func orNone(s, none string) string {
	if s == "" {
		return none
	}
	return s
}

// CareInstructionsPrompt asks for a full care guide for a plant category.
func CareInstructionsPrompt(plantType string) string {
	return fmt.Sprintf(`Generate detailed care instructions for a %s plant, including:
- Watering schedule
- Light requirements
- Temperature preferences
- Humidity needs
- Fertilization schedule
- Common issues and solutions
- Propagation tips`, plantType)
}

// HealthAnalysisPrompt asks for an assessment of one plant's records.
func HealthAnalysisPrompt(p models.Plant) string {
	return fmt.Sprintf(`Analyze this plant's health based on the following data and provide recommendations:
Name: %s
Species: %s
Type: %s
Acquired: %s
Last Watered: %s
Notes: %s`,
		p.Name, p.Species, p.NormalizedType(), p.AcquisitionDate,
		orNone(p.LastWatered, "unknown"), orNone(p.Notes, "No notes"))
}

// DiagnosisPrompt asks for likely causes of the described symptoms.
func DiagnosisPrompt(p models.Plant, symptoms string) string {
	return fmt.Sprintf(`Diagnose potential issues for this plant based on the following information:
Plant: %s (%s)
Species: %s
Symptoms: %s
Last Watered: %s
Notes: %s`,
		p.Name, p.NormalizedType(), p.Species, symptoms,
		orNone(p.LastWatered, "unknown"), orNone(p.Notes, "No notes"))
}

// GenerateCareInstructions fetches a care guide for the plant's category.
func (c *Client) GenerateCareInstructions(ctx context.Context, plantType string) (string, error) {
	return c.Generate(ctx, CareInstructionsPrompt(plantType))
}

// AnalyzePlantHealth fetches a health assessment for one plant.
func (c *Client) AnalyzePlantHealth(ctx context.Context, p models.Plant) (string, error) {
	return c.Generate(ctx, HealthAnalysisPrompt(p))
}

// DiagnoseIssues fetches a diagnosis for the described symptoms.
func (c *Client) DiagnoseIssues(ctx context.Context, p models.Plant, symptoms string) (string, error) {
	return c.Generate(ctx, DiagnosisPrompt(p, symptoms))
}
