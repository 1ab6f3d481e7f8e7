package gateway

import (
	"context"

	"google.golang.org/genai"

	"verdant/internal/types"
)

// chatFallback covers the rare empty completion so the conversation
// never stalls on a blank bubble.
const chatFallback = "I couldn't understand that. Could you rephrase?"

// Chat answers one free-form question about a specific plant. The
// record's full chat history is replayed, and the new question travels
// inside a context block carrying the plant's name, health and care
// numbers so the answer stays grounded in this plant.
func (g *Gateway) Chat(ctx context.Context, plant *types.Identification, message string, lang types.Language) (string, error) {
	contents := make([]*genai.Content, 0, len(plant.ChatHistory)+1)
	for _, turn := range plant.ChatHistory {
		var role genai.Role = genai.RoleUser
		if turn.Role == types.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(chatContextPrompt(plant, message, lang), genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemPrompt, genai.RoleUser),
		ThinkingConfig:    noThinking(),
	}

	text, err := g.gen.generate(ctx, g.model, contents, cfg)
	if err != nil {
		return "", &CallError{Op: "chat", Err: err}
	}
	if text == "" {
		return chatFallback, nil
	}
	return text, nil
}
