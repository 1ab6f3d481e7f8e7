package gateway

import (
	"fmt"

	"verdant/internal/types"
)

// languageDirective tells the model which language every textual field
// must come back in.
func languageDirective(lang types.Language) string {
	if lang == types.LanguageBengali {
		return "Output ALL textual descriptions in BENGALI (Bangla script). Keep it SIMPLE."
	}
	return "Output in English. Use simple, beginner-friendly language."
}

// languageName is the human-readable form used inside chat prompts.
func languageName(lang types.Language) string {
	if lang == types.LanguageBengali {
		return "Bengali"
	}
	return "English"
}

// identifySystemPrompt is the persona and checklist for a full
// identification pass.
func identifySystemPrompt(lang types.Language) string {
	return fmt.Sprintf(`You are Botanix, an expert AI Botanist and Phytopathologist.
%s

ANALYZE THE IMAGE FOR:
1. Identification (Species)
2. Health Score (0-100): Be critical. Brown spots = low score. Wilting = low score.
3. Pot Size: Look at the ratio of plant to pot. Is it root bound?
4. Water Needs: Estimate exact ml based on plant size/type (e.g. "200ml").
5. Personality: Give it a fun "character" based on its known behavior (e.g. Fittonias are dramatic when dry).

If health < 60, fill the 'rescuePlan' with a 3-day emergency guide.

Strictly follow JSON schema.`, languageDirective(lang))
}

const identifyUserPrompt = "Identify this plant, analyze its health score (0-100), assign a personality, and prescribe precise care."

const chatSystemPrompt = "You are a helpful plant expert assistant."

// chatContextPrompt grounds a chat turn in the plant's own record so
// answers stay specific to it. It rides along as the newest user turn.
func chatContextPrompt(plant *types.Identification, message string, lang types.Language) string {
	return fmt.Sprintf(`You are a friendly expert Botanist discussing a specific plant with a user.
PLANT: %s
HEALTH SCORE: %d/100
PERSONALITY: %s
CARE: Water %s %s.

USER QUESTION: %q

Respond in %s. Be helpful and reference the specific plant's health.`,
		plant.DisplayName(), plant.HealthScore, plant.Personality,
		plant.Care.WaterAmount, plant.Care.WaterFrequency,
		message, languageName(lang))
}

const growthPrompt = `Compare these two images of the SAME plant. Image 1 is past, Image 2 is present.
Analyze growth, health changes, and predict next milestone.
Output JSON: { "analysis": "text", "status": "Improving/Declining" }`

const toolUserPrompt = "Analyze this image according to your expert persona."

// toolSystemPrompt composes a tool's persona with the language directive.
func toolSystemPrompt(instruction string, lang types.Language) string {
	if lang == types.LanguageBengali {
		return instruction + " Output in Bengali."
	}
	return instruction + " Output in English."
}
