package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"verdant/internal/types"
)

// AnalyzeTool runs one specialist tool against a photo. The tool's own
// system prompt sets the persona; the shared tool schema shapes the
// answer. The returned result carries a fresh ID, timestamp, the image
// and the tool's display name.
func (g *Gateway) AnalyzeTool(ctx context.Context, imageDataURL string, tool types.ToolDefinition, lang types.Language) (types.ToolResult, error) {
	part, err := imagePart(imageDataURL)
	if err != nil {
		return types.ToolResult{}, &SchemaViolationError{Op: "tool", Detail: err.Error()}
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			part,
			genai.NewPartFromText(toolUserPrompt),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(toolSystemPrompt(tool.SystemPrompt, lang), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    toolSchema,
		ThinkingConfig:    noThinking(),
	}

	text, err := g.gen.generate(ctx, g.model, contents, cfg)
	if err != nil {
		return types.ToolResult{}, &CallError{Op: "tool", Err: err}
	}

	// Score is optional in the schema; absence means "no numeric axis"
	// rather than zero.
	var payload struct {
		Score      *int     `json:"score"`
		Status     string   `json:"status"`
		Analysis   string   `json:"analysis"`
		ActionPlan []string `json:"actionPlan"`
		Prediction string   `json:"prediction"`
	}
	if err := json.Unmarshal([]byte(repairJSON(text)), &payload); err != nil {
		return types.ToolResult{}, &SchemaViolationError{Op: "tool", Detail: "JSON parse failed: " + err.Error()}
	}
	if payload.Status == "" || payload.Analysis == "" {
		return types.ToolResult{}, &SchemaViolationError{Op: "tool", Detail: "missing status or analysis"}
	}

	score := types.ScoreNotApplicable
	if payload.Score != nil && *payload.Score >= 0 {
		score = clampScore(*payload.Score)
	}

	result := types.ToolResult{
		ToolID:     uuid.NewString(),
		Title:      tool.Name,
		Timestamp:  time.Now().UnixMilli(),
		ImageRef:   imageDataURL,
		Score:      score,
		Status:     payload.Status,
		Analysis:   payload.Analysis,
		ActionPlan: payload.ActionPlan,
		Prediction: payload.Prediction,
	}

	g.log.Info("tool analysis complete",
		zap.String("tool", tool.ID),
		zap.String("status", result.Status),
		zap.Int("score", result.Score))
	return result, nil
}
