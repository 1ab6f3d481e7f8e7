// Package types defines the domain records shared across verdant: the
// identification record produced by the AI gateway, its append-only
// sub-collections, and the static tool catalog entry.
package types

// Language selects the output language for every gateway operation.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBengali Language = "bn"
)

// HealthStatus is the coarse diagnostic verdict for a plant.
type HealthStatus string

const (
	StatusHealthy           HealthStatus = "Healthy"
	StatusDiseased          HealthStatus = "Diseased"
	StatusPestInfested      HealthStatus = "Pest Infested"
	StatusNutrientDeficient HealthStatus = "Nutrient Deficient"
	StatusUnknown           HealthStatus = "Unknown"
)

// Valid reports whether s is one of the known diagnostic statuses.
func (s HealthStatus) Valid() bool {
	switch s {
	case StatusHealthy, StatusDiseased, StatusPestInfested, StatusNutrientDeficient, StatusUnknown:
		return true
	}
	return false
}

// Taxonomy is the botanical classification returned by the gateway.
type Taxonomy struct {
	Genus  string `json:"genus"`
	Family string `json:"family"`
	Order  string `json:"order"`
}

// Morphology describes the visible plant structures. All fields are
// free text and may be empty when not visible in the photo.
type Morphology struct {
	Leaves  string `json:"leaves,omitempty"`
	Flowers string `json:"flowers,omitempty"`
	Fruits  string `json:"fruits,omitempty"`
	Stems   string `json:"stems,omitempty"`
	Roots   string `json:"roots,omitempty"`
	Nectar  string `json:"nectar,omitempty"`
}

// CarePlan holds the prescriptive care parameters. WaterAmount is an
// explicit volume (e.g. "250ml") estimated from the pot size in the photo.
type CarePlan struct {
	WaterAmount        string `json:"waterAmount"`
	WaterFrequency     string `json:"waterFrequency"`
	SunlightLux        string `json:"sunlightLux"`
	SoilMix            string `json:"soilMix"`
	PotSizeAnalysis    string `json:"potSizeAnalysis"`
	FertilizerSchedule string `json:"fertilizerSchedule"`
	Pruning            string `json:"pruning"`
	Temperature        string `json:"temperature"`
}

// Ecology describes where the species comes from and what grows well
// alongside it.
type Ecology struct {
	NativeRegion string   `json:"nativeRegion"`
	Habitat      string   `json:"habitat"`
	Role         string   `json:"role"`
	Companions   []string `json:"companions,omitempty"`
}

// SafetyProfile flags toxicity, invasiveness and medicinal properties.
type SafetyProfile struct {
	IsPoisonous   bool   `json:"isPoisonous"`
	PoisonDetails string `json:"poisonDetails,omitempty"`
	Consumption   string `json:"consumption,omitempty"`
	IsInvasive    bool   `json:"isInvasive"`
	IsEndangered  bool   `json:"isEndangered"`
	IsMedicinal   bool   `json:"isMedicinal"`
	MedicinalUses string `json:"medicinalUses,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Diagnostics is the visual health assessment.
type Diagnostics struct {
	Status     HealthStatus `json:"status"`
	Details    string       `json:"details,omitempty"`
	Treatment  string       `json:"treatment,omitempty"`
	Prevention string       `json:"prevention,omitempty"`
}

// RescuePlan is a three-day emergency care guide. The gateway populates
// it whenever the health score drops below 60.
type RescuePlan struct {
	IsNeeded bool   `json:"isNeeded"`
	Step1    string `json:"step1,omitempty"`
	Step2    string `json:"step2,omitempty"`
	Step3    string `json:"step3,omitempty"`
}

// Folklore carries cultural background for the species.
type Folklore struct {
	Origin  string `json:"origin,omitempty"`
	Stories string `json:"stories,omitempty"`
}

// SimilarSpecies names a look-alike and how to tell it apart.
type SimilarSpecies struct {
	Name       string `json:"name"`
	Difference string `json:"difference"`
}

// ChatTurn is one message in a plant's conversation. Role uses the
// Gemini vocabulary: "user" or "model".
type ChatTurn struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Chat roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// TimelineUpdate is one growth-timeline entry, created by the
// growth-comparison flow and immutable afterwards.
type TimelineUpdate struct {
	ID             string `json:"id"`
	Timestamp      int64  `json:"timestamp"`
	ImageRef       string `json:"imageUrl"`
	GrowthAnalysis string `json:"growthAnalysis"`
	HealthStatus   string `json:"healthStatus"`
}

// ToolResult is the structured answer of a single tool invocation.
// Score is 0-100, or ScoreNotApplicable when the tool has no numeric axis.
type ToolResult struct {
	ToolID     string   `json:"toolId"`
	Title      string   `json:"title"`
	Timestamp  int64    `json:"timestamp"`
	ImageRef   string   `json:"imageUrl"`
	Score      int      `json:"score"`
	Status     string   `json:"status"`
	Analysis   string   `json:"analysis"`
	ActionPlan []string `json:"actionPlan"`
	Prediction string   `json:"prediction,omitempty"`
}

// ScoreNotApplicable is the sentinel a tool returns when a 0-100 score
// makes no sense for it.
const ScoreNotApplicable = -1

// Identification is the central record: one completed plant scan plus
// everything accumulated against it afterwards. The AI-derived fields
// are never altered after creation; only the three sub-collections grow,
// and always by whole-record replacement through the history store.
type Identification struct {
	ID         string   `json:"id"`
	CapturedAt int64    `json:"timestamp"`
	Language   Language `json:"language"`
	ImageRef   string   `json:"imageUrl"`

	ScientificName string           `json:"scientificName"`
	CommonNames    []string         `json:"commonNames"`
	Confidence     int              `json:"confidence"`
	Description    string           `json:"description"`
	Benefits       string           `json:"benefits,omitempty"`
	Reasoning      string           `json:"reasoning,omitempty"`
	Taxonomy       Taxonomy         `json:"taxonomy"`
	Morphology     Morphology       `json:"morphology"`
	Care           CarePlan         `json:"care"`
	Ecology        Ecology          `json:"ecology"`
	Safety         SafetyProfile    `json:"safety"`
	Diagnostics    Diagnostics      `json:"diagnostics"`
	HealthScore    int              `json:"healthScore"`
	Personality    string           `json:"personality"`
	Lifespan       string           `json:"lifespanPrediction,omitempty"`
	RescuePlan     *RescuePlan      `json:"rescuePlan,omitempty"`
	Folklore       *Folklore        `json:"folklore,omitempty"`
	SimilarSpecies []SimilarSpecies `json:"similarSpecies,omitempty"`

	Updates     []TimelineUpdate `json:"updates"`
	ChatHistory []ChatTurn       `json:"chatHistory"`
	ToolHistory []ToolResult     `json:"toolHistory"`
}

// DisplayName returns the first common name, falling back to the
// scientific name for species without one.
func (p *Identification) DisplayName() string {
	if len(p.CommonNames) > 0 && p.CommonNames[0] != "" {
		return p.CommonNames[0]
	}
	return p.ScientificName
}

// LatestImage returns the most recent photo of the plant: the newest
// timeline update's image if any, otherwise the original scan.
func (p *Identification) LatestImage() string {
	if n := len(p.Updates); n > 0 {
		return p.Updates[n-1].ImageRef
	}
	return p.ImageRef
}

// AppendUpdate adds a timeline entry. Entries keep append order, which
// is also timestamp order.
func (p *Identification) AppendUpdate(u TimelineUpdate) {
	p.Updates = append(p.Updates, u)
}

// AppendChatExchange adds a completed user/model turn pair, preserving
// the existing order.
func (p *Identification) AppendChatExchange(user, model ChatTurn) {
	p.ChatHistory = append(p.ChatHistory, user, model)
}

// AppendToolResult adds a tool invocation result.
func (p *Identification) AppendToolResult(r ToolResult) {
	p.ToolHistory = append(p.ToolHistory, r)
}

// NeedsRescue reports whether the record carries an active rescue plan.
func (p *Identification) NeedsRescue() bool {
	return p.RescuePlan != nil && p.RescuePlan.IsNeeded
}
