package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"verdant/internal/imaging"
	"verdant/internal/types"
)

// RescueThreshold is the health score below which a rescue plan is
// mandatory.
const RescueThreshold = 60

// identifyTemperature keeps identification output stable across runs.
const identifyTemperature = float32(0.4)

// Identify analyzes a plant photo and returns a complete identification
// record. The input is a normalized data URL; the returned record
// carries a fresh ID, timestamp, the image itself, and empty
// sub-collections ready for augmentation.
func (g *Gateway) Identify(ctx context.Context, imageDataURL string, lang types.Language) (*types.Identification, error) {
	part, err := imagePart(imageDataURL)
	if err != nil {
		return nil, &SchemaViolationError{Op: "identify", Detail: err.Error()}
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			part,
			genai.NewPartFromText(identifyUserPrompt),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(identifySystemPrompt(lang), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    plantSchema,
		Temperature:       genai.Ptr(identifyTemperature),
		ThinkingConfig:    noThinking(),
	}

	start := time.Now()
	text, err := g.gen.generate(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, &CallError{Op: "identify", Err: err}
	}
	if text == "" {
		return nil, &SchemaViolationError{Op: "identify", Detail: "empty response"}
	}

	var rec types.Identification
	if err := json.Unmarshal([]byte(repairJSON(text)), &rec); err != nil {
		return nil, &SchemaViolationError{Op: "identify", Detail: "JSON parse failed: " + err.Error()}
	}

	if err := finalizeIdentification(&rec, imageDataURL, lang); err != nil {
		return nil, err
	}

	g.log.Info("identified plant",
		zap.String("scientific_name", rec.ScientificName),
		zap.Int("health_score", rec.HealthScore),
		zap.Duration("elapsed", time.Since(start)))
	return &rec, nil
}

// finalizeIdentification attaches app-side metadata and enforces the
// record's invariants: scores clamp to 0-100, the diagnostic status is
// always a known value, and the rescue plan agrees with the health score.
func finalizeIdentification(rec *types.Identification, imageDataURL string, lang types.Language) error {
	rec.ID = uuid.NewString()
	rec.CapturedAt = time.Now().UnixMilli()
	rec.Language = lang
	rec.ImageRef = imageDataURL
	rec.Confidence = clampScore(rec.Confidence)
	rec.HealthScore = clampScore(rec.HealthScore)
	if !rec.Diagnostics.Status.Valid() {
		rec.Diagnostics.Status = types.StatusUnknown
	}

	if rec.HealthScore >= RescueThreshold {
		// A healthy plant never carries an active rescue plan, no
		// matter what the model said.
		if rec.RescuePlan != nil {
			rec.RescuePlan.IsNeeded = false
		}
	} else {
		p := rec.RescuePlan
		if p == nil || !p.IsNeeded || p.Step1 == "" || p.Step2 == "" || p.Step3 == "" {
			return &SchemaViolationError{
				Op:     "identify",
				Detail: "health score below rescue threshold without a complete 3-day rescue plan",
			}
		}
	}

	// Sub-collections start empty, never nil, so augmenters and
	// serialization treat fresh and loaded records the same way.
	if rec.Updates == nil {
		rec.Updates = []types.TimelineUpdate{}
	}
	if rec.ChatHistory == nil {
		rec.ChatHistory = []types.ChatTurn{}
	}
	if rec.ToolHistory == nil {
		rec.ToolHistory = []types.ToolResult{}
	}
	return nil
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// imagePart converts a data URL (or bare base64) into an inline image
// part for transmission.
func imagePart(imageDataURL string) (*genai.Part, error) {
	mediaType, data, err := imaging.ParseDataURL(imageDataURL)
	if err != nil {
		return nil, err
	}
	return genai.NewPartFromBytes(data, mediaType), nil
}
