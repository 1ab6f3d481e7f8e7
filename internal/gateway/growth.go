package gateway

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"

	"verdant/internal/types"
)

// GrowthReport is the outcome of comparing two photos of the same plant.
type GrowthReport struct {
	Analysis string `json:"analysis"`
	Status   string `json:"status"`
}

// fallbackGrowthReport stands in when the model's comparison cannot be
// parsed. Timeline building must not fail on a single bad completion.
func fallbackGrowthReport() GrowthReport {
	return GrowthReport{Analysis: "Could not analyze growth.", Status: "Unknown"}
}

// CompareGrowth sends a past and a present photo of the same plant and
// returns the model's progress assessment. An unparseable response
// degrades to a fallback report rather than an error; only transport
// failures are reported as errors.
func (g *Gateway) CompareGrowth(ctx context.Context, oldImage, newImage string, lang types.Language) (GrowthReport, error) {
	oldPart, err := imagePart(oldImage)
	if err != nil {
		return GrowthReport{}, &SchemaViolationError{Op: "growth", Detail: err.Error()}
	}
	newPart, err := imagePart(newImage)
	if err != nil {
		return GrowthReport{}, &SchemaViolationError{Op: "growth", Detail: err.Error()}
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			oldPart,
			newPart,
			genai.NewPartFromText(growthPrompt),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ThinkingConfig:   noThinking(),
	}

	text, err := g.gen.generate(ctx, g.model, contents, cfg)
	if err != nil {
		return GrowthReport{}, &CallError{Op: "growth", Err: err}
	}

	var report GrowthReport
	if err := json.Unmarshal([]byte(repairJSON(text)), &report); err != nil || report.Analysis == "" {
		g.log.Warn("growth comparison returned unusable payload, using fallback")
		return fallbackGrowthReport(), nil
	}
	return report, nil
}
