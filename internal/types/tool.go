package types

// ToolCategory groups catalog tools for presentation.
type ToolCategory string

const (
	CategoryHealth      ToolCategory = "health"
	CategoryCare        ToolCategory = "care"
	CategoryEnvironment ToolCategory = "environment"
	CategoryGrowth      ToolCategory = "growth"
	CategoryFun         ToolCategory = "fun"
)

// ToolCategories lists every category in display order.
var ToolCategories = []ToolCategory{
	CategoryHealth,
	CategoryCare,
	CategoryEnvironment,
	CategoryGrowth,
	CategoryFun,
}

// ToolDefinition is a static catalog entry: a camera-framing instruction
// paired with the specialist system prompt that parameterizes the gateway
// call. This is fixed configuration data, not runtime state.
type ToolDefinition struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Icon              string       `json:"iconName"`
	Category          ToolCategory `json:"category"`
	CameraInstruction string       `json:"cameraInstruction"`
	SystemPrompt      string       `json:"aiSystemPrompt"`
}
