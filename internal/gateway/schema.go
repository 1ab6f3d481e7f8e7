package gateway

import "google.golang.org/genai"

// plantSchema constrains identification responses. It mirrors the
// Identification record field for field so decoded output drops
// straight into the struct.
var plantSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"scientificName": {Type: genai.TypeString, Description: "Scientific Latin name"},
		"commonNames": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of common names in the requested language",
		},
		"confidence": {
			Type:        genai.TypeNumber,
			Description: "Confidence score between 0 and 100",
		},
		"description": {Type: genai.TypeString, Description: "A simple, easy-to-understand description of the plant."},
		"benefits": {
			Type:        genai.TypeString,
			Description: "Health benefits for the human body (digestion, skin, immunity) or environmental benefits.",
		},
		"reasoning": {Type: genai.TypeString, Description: "Identification reasoning"},
		"taxonomy": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"genus":  {Type: genai.TypeString},
				"family": {Type: genai.TypeString},
				"order":  {Type: genai.TypeString},
			},
		},
		"morphology": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"leaves":  {Type: genai.TypeString},
				"flowers": {Type: genai.TypeString},
				"fruits":  {Type: genai.TypeString},
				"stems":   {Type: genai.TypeString},
				"roots":   {Type: genai.TypeString},
				"nectar":  {Type: genai.TypeString},
			},
		},
		"care": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"waterAmount":        {Type: genai.TypeString, Description: "Exact water amount in ml (e.g., '250ml') based on estimated pot size."},
				"waterFrequency":     {Type: genai.TypeString, Description: "Specific frequency (e.g., 'Every 4-5 days')."},
				"sunlightLux":        {Type: genai.TypeString, Description: "Ideal lux range or descriptive light level."},
				"soilMix":            {Type: genai.TypeString, Description: "Optimal soil composition."},
				"potSizeAnalysis":    {Type: genai.TypeString, Description: "Analyze if the current pot looks too small, too big, or correct from the image."},
				"fertilizerSchedule": {Type: genai.TypeString},
				"pruning":            {Type: genai.TypeString},
				"temperature":        {Type: genai.TypeString, Description: "Ideal temperature range."},
			},
		},
		"ecology": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"nativeRegion": {Type: genai.TypeString},
				"habitat":      {Type: genai.TypeString},
				"role":         {Type: genai.TypeString},
				"companions":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
		},
		"safety": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"isPoisonous":   {Type: genai.TypeBoolean},
				"poisonDetails": {Type: genai.TypeString},
				"consumption":   {Type: genai.TypeString, Description: "Edibility, taste, or toxicity symptoms."},
				"isInvasive":    {Type: genai.TypeBoolean},
				"isEndangered":  {Type: genai.TypeBoolean},
				"isMedicinal":   {Type: genai.TypeBoolean},
				"medicinalUses": {Type: genai.TypeString},
				"notes":         {Type: genai.TypeString},
			},
		},
		"diagnostics": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"status": {
					Type: genai.TypeString,
					Enum: []string{"Healthy", "Diseased", "Pest Infested", "Nutrient Deficient", "Unknown"},
				},
				"details":    {Type: genai.TypeString, Description: "Visible signs of disease, pests, or deficiency."},
				"treatment":  {Type: genai.TypeString, Description: "Organic treatment steps."},
				"prevention": {Type: genai.TypeString},
			},
		},
		"healthScore": {
			Type:        genai.TypeNumber,
			Description: "0-100 score based on visual health (greenness, perkiness).",
		},
		"personality": {
			Type:        genai.TypeString,
			Description: "A fun personality archetype for this plant (e.g., 'The Drama Queen', 'The Survivor', 'Chill Buddy').",
		},
		"lifespanPrediction": {
			Type:        genai.TypeString,
			Description: "Prediction of survival likelihood for next 30 days based on current health.",
		},
		"rescuePlan": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"isNeeded": {Type: genai.TypeBoolean},
				"step1":    {Type: genai.TypeString, Description: "Day 1 Rescue Task"},
				"step2":    {Type: genai.TypeString, Description: "Day 2 Rescue Task"},
				"step3":    {Type: genai.TypeString, Description: "Day 3 Rescue Task"},
			},
		},
		"folklore": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"origin":  {Type: genai.TypeString},
				"stories": {Type: genai.TypeString},
			},
		},
		"similarSpecies": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":       {Type: genai.TypeString},
					"difference": {Type: genai.TypeString},
				},
			},
		},
	},
	Required: []string{
		"scientificName", "commonNames", "confidence", "description",
		"care", "safety", "diagnostics", "healthScore", "personality",
	},
}

// toolSchema constrains every specialist-tool response to the shared
// score/status/analysis/actionPlan shape.
var toolSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score": {
			Type:        genai.TypeNumber,
			Description: "0-100 score relevant to the tool (e.g. Drainage Score, Risk Score). Return -1 if N/A.",
		},
		"status": {
			Type:        genai.TypeString,
			Description: "Short status (e.g. 'Excellent', 'Critical', 'High Risk')",
		},
		"analysis": {
			Type:        genai.TypeString,
			Description: "Detailed analysis of the visual evidence.",
		},
		"actionPlan": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "3-4 specific actionable steps.",
		},
		"prediction": {
			Type:        genai.TypeString,
			Description: "Future prediction (e.g. 'Will root in 2 weeks').",
		},
	},
	Required: []string{"status", "analysis", "actionPlan"},
}
