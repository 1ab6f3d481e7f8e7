// Package tools holds the static catalog of specialist analysis tools.
// Each tool pairs a camera instruction for the user with the system
// prompt that sets the model's persona for that analysis.
package tools

import "verdant/internal/types"

// Catalog is every available tool, in display order: health first,
// fun last.
var Catalog = []types.ToolDefinition{
	// Health & diagnostics
	{
		ID:                "soil-scanner",
		Name:              "Smart Soil Scanner",
		Description:       "Analyze soil texture, moisture, and quality.",
		Icon:              "Layers",
		Category:          types.CategoryHealth,
		CameraInstruction: "Take a close-up, clear photo of the soil surface.",
		SystemPrompt:      "You are a Soil Scientist. Analyze the soil image for texture (loamy, clay, sandy), organic matter, compaction, and potential moisture level. Predict nutrient issues based on visual crusting or color.",
	},
	{
		ID:                "root-health",
		Name:              "Root Health Estimator",
		Description:       "Infer root health from plant/soil signals.",
		Icon:              "MoveDown",
		Category:          types.CategoryHealth,
		CameraInstruction: "Photograph the base of the stem meeting the soil.",
		SystemPrompt:      "You are an expert Botanist. Infer root health based on the stem base condition, soil crusting, and visible surface roots. Look for rot at the collar.",
	},
	{
		ID:                "nutrient-deficiency",
		Name:              "Nutrient Deficiency Predictor",
		Description:       "Detect early signs of NPK issues.",
		Icon:              "TestTube",
		Category:          types.CategoryHealth,
		CameraInstruction: "Photograph leaves showing discoloration or veins.",
		SystemPrompt:      "You are a Plant Nutritionist. Analyze leaf chlorosis patterns (interveinal vs total) to predict Nitrogen, Phosphorus, Potassium, or Micronutrient deficiencies.",
	},
	{
		ID:                "pest-egg-detector",
		Name:              "Pest Egg Detector",
		Description:       "Find tiny eggs or mites.",
		Icon:              "Bug",
		Category:          types.CategoryHealth,
		CameraInstruction: "Use macro mode. Photo underside of leaves.",
		SystemPrompt:      "You are an Entomologist. Scan for tiny dots, webbing, or clusters that indicate spider mites, aphids, or scale insect eggs.",
	},
	{
		ID:                "sunburn-risk",
		Name:              "Sunburn Risk Detector",
		Description:       "Spot early leaf burn signs.",
		Icon:              "Sun",
		Category:          types.CategoryHealth,
		CameraInstruction: "Photo of leaves exposed to direct light.",
		SystemPrompt:      "Analyze leaves for bleaching, scorching, or crispy brown edges indicative of photo-oxidative stress (sunburn).",
	},

	// Care & maintenance
	{
		ID:                "pruning-advisor",
		Name:              "AI Pruning Advisor",
		Description:       "See exactly where to cut.",
		Icon:              "Scissors",
		Category:          types.CategoryCare,
		CameraInstruction: "Photo of the whole plant structure.",
		SystemPrompt:      "You are a Master Gardener. Identify dead, crossing, or leggy branches. Suggest specific pruning points to encourage bushier growth.",
	},
	{
		ID:                "watering-volume",
		Name:              "Watering Calculator",
		Description:       "Exact ML amount needed.",
		Icon:              "Droplet",
		Category:          types.CategoryCare,
		CameraInstruction: "Photo of the entire pot and plant.",
		SystemPrompt:      "Estimate the pot volume based on visual scale. Calculate the precise water volume (in ml) needed to saturate the soil without waterlogging.",
	},
	{
		ID:                "repotting-forecaster",
		Name:              "Repotting Forecaster",
		Description:       "Is it time to upgrade the pot?",
		Icon:              "Box",
		Category:          types.CategoryCare,
		CameraInstruction: "Photo of the plant relative to its pot.",
		SystemPrompt:      "Analyze the plant-to-pot ratio. If the plant is 3x the height of the pot or looks top-heavy, recommend repotting.",
	},
	{
		ID:                "drainage-score",
		Name:              "Pot Drainage Score",
		Description:       "Evaluate pot suitability.",
		Icon:              "Disc",
		Category:          types.CategoryCare,
		CameraInstruction: "Photo of the bottom of the pot (if possible) or the pot style.",
		SystemPrompt:      "Analyze the pot material and design for drainage capability. Plastic holds water; Terra cotta breathes. Estimate drainage efficiency.",
	},
	{
		ID:                "fertilizer-advisor",
		Name:              "Adaptive Fertilizer",
		Description:       "Custom NPK recipes.",
		Icon:              "Zap",
		Category:          types.CategoryCare,
		CameraInstruction: "Photo of the plant foliage.",
		SystemPrompt:      "Based on the plant type and current vegetative stage (leafy vs flowering), recommend the ideal NPK ratio (e.g., 10-10-10 vs 5-10-5).",
	},

	// Environment
	{
		ID:                "humidity-checker",
		Name:              "Humidity Suitability",
		Description:       "Is it too dry here?",
		Icon:              "CloudRain",
		Category:          types.CategoryEnvironment,
		CameraInstruction: "Photo of the plant in its room environment.",
		SystemPrompt:      "Identify the plant species and its humidity needs. Look for signs of dry air stress (crispy tips). Assess if the environment looks like a dry AC room or humid spot.",
	},
	{
		ID:                "grow-light",
		Name:              "Grow Light Positioner",
		Description:       "Optimize artificial light.",
		Icon:              "SunMedium",
		Category:          types.CategoryEnvironment,
		CameraInstruction: "Photo of the plant and the light source.",
		SystemPrompt:      "Analyze the distance between the plant canopy and the light source. Recommend if it needs to be closer or further to prevent burn or etiolation.",
	},
	{
		ID:                "pot-material",
		Name:              "Pot Material Analyzer",
		Description:       "Plastic vs Ceramic vs Clay.",
		Icon:              "Box",
		Category:          types.CategoryEnvironment,
		CameraInstruction: "Close up of the pot texture.",
		SystemPrompt:      "Identify the pot material (Terra cotta, glazed ceramic, plastic). Explain how this specific material affects water retention for this plant.",
	},
	{
		ID:                "seasonal-survival",
		Name:              "Seasonal Survival",
		Description:       "Winter survival probability.",
		Icon:              "ThermometerSun",
		Category:          types.CategoryEnvironment,
		CameraInstruction: "Photo of the plant.",
		SystemPrompt:      "Identify the plant hardiness. Predict its ability to survive indoors vs outdoors based on general winter sensitivity.",
	},

	// Growth & propagation
	{
		ID:                "propagation-predictor",
		Name:              "Propagation Success",
		Description:       "Will this cutting root?",
		Icon:              "GitBranch",
		Category:          types.CategoryGrowth,
		CameraInstruction: "Photo of the stem cutting or node.",
		SystemPrompt:      "Analyze the cutting. Does it have a healthy node? Is the stem woody or green? Predict the probability of successful rooting in water vs soil.",
	},
	{
		ID:                "growth-speed",
		Name:              "Growth Speed Estimator",
		Description:       "cm per week prediction.",
		Icon:              "TrendingUp",
		Category:          types.CategoryGrowth,
		CameraInstruction: "Full body photo of plant.",
		SystemPrompt:      "Identify the species growth habit (fast vine vs slow succulent). Estimate typical growth rate per week under ideal conditions.",
	},
	{
		ID:                "harvest-detector",
		Name:              "Harvest Readiness",
		Description:       "Is it ready to pick?",
		Icon:              "Apple",
		Category:          types.CategoryGrowth,
		CameraInstruction: "Photo of the fruit or vegetable.",
		SystemPrompt:      "Analyze color, size, and skin texture of the fruit/veg. Determine if it is under-ripe, ripe, or over-ripe.",
	},
	{
		ID:                "leaf-shape-tracker",
		Name:              "Leaf Evolution",
		Description:       "Track shape changes.",
		Icon:              "Fingerprint",
		Category:          types.CategoryGrowth,
		CameraInstruction: "Top-down photo of a new leaf.",
		SystemPrompt:      "Analyze the leaf morphology. Is it showing signs of deformity, curling, or healthy fenestration/expansion?",
	},

	// Safety & fun
	{
		ID:                "toxicity-scanner",
		Name:              "Toxicity Scanner",
		Description:       "Safe for Pets/Kids?",
		Icon:              "Skull",
		Category:          types.CategoryFun,
		CameraInstruction: "Clear photo of the plant.",
		SystemPrompt:      "Identify the plant and strictly check toxicity databases. Is it toxic to cats, dogs, or humans? detailed symptoms.",
	},
	{
		ID:                "nickname-generator",
		Name:              "Plant Renamer",
		Description:       "Generate a personality name.",
		Icon:              "Edit3",
		Category:          types.CategoryFun,
		CameraInstruction: "Photo of the plant.",
		SystemPrompt:      "Analyze the plant \"vibe\" (spiky, flowing, cute, monster). Generate 3 fun names and a \"Personality Archetype\".",
	},
	{
		ID:                "companion-advisor",
		Name:              "Companion Planter",
		Description:       "Who should live next door?",
		Icon:              "Users",
		Category:          types.CategoryFun,
		CameraInstruction: "Photo of the plant.",
		SystemPrompt:      "Identify the plant. Suggest 3 best companion plants that share similar light/water needs and look good together.",
	},
}

// ByID returns the tool with the given ID, or false when unknown.
func ByID(id string) (types.ToolDefinition, bool) {
	for _, t := range Catalog {
		if t.ID == id {
			return t, true
		}
	}
	return types.ToolDefinition{}, false
}

// ByCategory returns the tools in a category, preserving catalog order.
func ByCategory(c types.ToolCategory) []types.ToolDefinition {
	var out []types.ToolDefinition
	for _, t := range Catalog {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}
