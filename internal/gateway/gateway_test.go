package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"verdant/internal/types"
)

// fakeGenerator records the last call and plays back a canned response.
type fakeGenerator struct {
	response string
	err      error

	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
	calls        int
}

func (f *fakeGenerator) generate(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	f.calls++
	f.lastModel = model
	f.lastContents = contents
	f.lastConfig = cfg
	return f.response, f.err
}

func newTestGateway(fake *fakeGenerator) *Gateway {
	return &Gateway{gen: fake, model: DefaultModel, log: zap.NewNop()}
}

func testImage() string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("not a real jpeg"))
}

const healthyPlantJSON = `{
	"scientificName": "Epipremnum aureum",
	"commonNames": ["Golden Pothos", "Devil's Ivy"],
	"confidence": 94,
	"description": "A hardy trailing vine.",
	"care": {"waterAmount": "250ml", "waterFrequency": "Every 5 days"},
	"safety": {"isPoisonous": true},
	"diagnostics": {"status": "Healthy"},
	"healthScore": 85,
	"personality": "Chill Buddy",
	"rescuePlan": {"isNeeded": true, "step1": "bogus"}
}`

func TestIdentifyParsesFencedResponse(t *testing.T) {
	fake := &fakeGenerator{response: "Sure! Here is the analysis:\n```json\n" + healthyPlantJSON + "\n```"}
	g := newTestGateway(fake)

	rec, err := g.Identify(context.Background(), testImage(), types.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, "Epipremnum aureum", rec.ScientificName)
	assert.Equal(t, "Golden Pothos", rec.DisplayName())
	assert.Equal(t, 85, rec.HealthScore)
	assert.NotEmpty(t, rec.ID)
	assert.NotZero(t, rec.CapturedAt)
	assert.Equal(t, testImage(), rec.ImageRef)
	assert.Equal(t, types.LanguageEnglish, rec.Language)

	// Sub-collections start empty, not nil.
	assert.NotNil(t, rec.Updates)
	assert.NotNil(t, rec.ChatHistory)
	assert.NotNil(t, rec.ToolHistory)
	assert.Empty(t, rec.Updates)

	// A healthy plant never keeps an active rescue plan.
	assert.False(t, rec.NeedsRescue())
}

func TestIdentifyRequestShape(t *testing.T) {
	fake := &fakeGenerator{response: healthyPlantJSON}
	g := newTestGateway(fake)

	_, err := g.Identify(context.Background(), testImage(), types.LanguageBengali)
	require.NoError(t, err)

	require.NotNil(t, fake.lastConfig)
	assert.Equal(t, DefaultModel, fake.lastModel)
	assert.Equal(t, "application/json", fake.lastConfig.ResponseMIMEType)
	assert.Same(t, plantSchema, fake.lastConfig.ResponseSchema)
	require.NotNil(t, fake.lastConfig.Temperature)
	assert.InDelta(t, 0.4, float64(*fake.lastConfig.Temperature), 0.001)
	require.NotNil(t, fake.lastConfig.ThinkingConfig)
	assert.Equal(t, int32(0), *fake.lastConfig.ThinkingConfig.ThinkingBudget)

	// System prompt carries the Bengali directive.
	sys := fake.lastConfig.SystemInstruction
	require.NotNil(t, sys)
	require.NotEmpty(t, sys.Parts)
	assert.Contains(t, sys.Parts[0].Text, "BENGALI")
}

func TestIdentifySickPlantRequiresCompletePlan(t *testing.T) {
	tests := []struct {
		name    string
		rescue  string
		wantErr bool
	}{
		{"no plan at all", ``, true},
		{"plan not flagged needed", `"rescuePlan": {"isNeeded": false, "step1": "a", "step2": "b", "step3": "c"},`, true},
		{"missing step", `"rescuePlan": {"isNeeded": true, "step1": "a", "step2": "b"},`, true},
		{"complete plan", `"rescuePlan": {"isNeeded": true, "step1": "Trim dead leaves", "step2": "Water 200ml", "step3": "Move to bright shade"},`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := fmt.Sprintf(`{
				"scientificName": "Fittonia albivenis", "commonNames": ["Nerve Plant"],
				"confidence": 88, "description": "d",
				"care": {}, "safety": {},
				"diagnostics": {"status": "Diseased"},
				%s
				"healthScore": 40, "personality": "The Drama Queen"
			}`, tt.rescue)
			g := newTestGateway(&fakeGenerator{response: payload})

			rec, err := g.Identify(context.Background(), testImage(), types.LanguageEnglish)
			if tt.wantErr {
				assert.True(t, IsSchemaViolation(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, rec.NeedsRescue())
		})
	}
}

func TestIdentifyClampsScoresAndStatus(t *testing.T) {
	payload := `{
		"scientificName": "x", "commonNames": ["y"], "confidence": 150,
		"description": "d", "care": {}, "safety": {},
		"diagnostics": {"status": "Thriving"},
		"healthScore": 120, "personality": "p"
	}`
	g := newTestGateway(&fakeGenerator{response: payload})

	rec, err := g.Identify(context.Background(), testImage(), types.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, 100, rec.Confidence)
	assert.Equal(t, 100, rec.HealthScore)
	assert.Equal(t, types.StatusUnknown, rec.Diagnostics.Status)
}

func TestIdentifyTransportFailure(t *testing.T) {
	g := newTestGateway(&fakeGenerator{err: errors.New("connection refused")})

	_, err := g.Identify(context.Background(), testImage(), types.LanguageEnglish)
	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "identify", callErr.Op)
}

func TestIdentifyUnparseableResponse(t *testing.T) {
	g := newTestGateway(&fakeGenerator{response: "I am unable to identify this plant."})

	_, err := g.Identify(context.Background(), testImage(), types.LanguageEnglish)
	assert.True(t, IsSchemaViolation(err))
}

func chatTestPlant() *types.Identification {
	return &types.Identification{
		ID:          "p1",
		CommonNames: []string{"Golden Pothos"},
		HealthScore: 72,
		Personality: "Chill Buddy",
		Care:        types.CarePlan{WaterAmount: "250ml", WaterFrequency: "Every 5 days"},
		ChatHistory: []types.ChatTurn{
			{Role: types.RoleUser, Text: "Why are the tips brown?"},
			{Role: types.RoleModel, Text: "Usually underwatering or dry air."},
		},
	}
}

func TestChatReplaysHistoryAndAppendsContext(t *testing.T) {
	fake := &fakeGenerator{response: "Mist it every morning."}
	g := newTestGateway(fake)

	reply, err := g.Chat(context.Background(), chatTestPlant(), "How do I fix it?", types.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Mist it every morning.", reply)

	// Two history turns plus the context-wrapped question.
	require.Len(t, fake.lastContents, 3)
	assert.EqualValues(t, genai.RoleUser, fake.lastContents[0].Role)
	assert.EqualValues(t, genai.RoleModel, fake.lastContents[1].Role)

	last := fake.lastContents[2]
	assert.EqualValues(t, genai.RoleUser, last.Role)
	require.NotEmpty(t, last.Parts)
	assert.Contains(t, last.Parts[0].Text, "Golden Pothos")
	assert.Contains(t, last.Parts[0].Text, "72/100")
	assert.Contains(t, last.Parts[0].Text, "How do I fix it?")

	// Chat is free-form: no schema, no forced JSON.
	assert.Empty(t, fake.lastConfig.ResponseMIMEType)
	assert.Nil(t, fake.lastConfig.ResponseSchema)
}

func TestChatFallbackOnEmptyCompletion(t *testing.T) {
	g := newTestGateway(&fakeGenerator{response: ""})

	reply, err := g.Chat(context.Background(), chatTestPlant(), "hello", types.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, chatFallback, reply)
}

func TestCompareGrowthHappyPath(t *testing.T) {
	fake := &fakeGenerator{response: `{"analysis": "Two new leaves since last photo.", "status": "Improving"}`}
	g := newTestGateway(fake)

	report, err := g.CompareGrowth(context.Background(), testImage(), testImage(), types.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Improving", report.Status)
	assert.Equal(t, "Two new leaves since last photo.", report.Analysis)

	// Both photos plus the prompt ride in a single user turn.
	require.Len(t, fake.lastContents, 1)
	assert.Len(t, fake.lastContents[0].Parts, 3)
}

func TestCompareGrowthFallsBackOnGarbage(t *testing.T) {
	g := newTestGateway(&fakeGenerator{response: "the plant looks fine to me"})

	report, err := g.CompareGrowth(context.Background(), testImage(), testImage(), types.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Could not analyze growth.", report.Analysis)
	assert.Equal(t, "Unknown", report.Status)
}

func TestCompareGrowthTransportFailure(t *testing.T) {
	g := newTestGateway(&fakeGenerator{err: errors.New("timeout")})

	_, err := g.CompareGrowth(context.Background(), testImage(), testImage(), types.LanguageEnglish)
	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "growth", callErr.Op)
}

func testTool() types.ToolDefinition {
	return types.ToolDefinition{
		ID:           "pot-doctor",
		Name:         "Pot Doctor",
		SystemPrompt: "You are a drainage expert.",
	}
}

func TestAnalyzeToolAttachesMetadata(t *testing.T) {
	fake := &fakeGenerator{response: `{"score": 82, "status": "Excellent", "analysis": "Good drainage holes.", "actionPlan": ["Keep as is"]}`}
	g := newTestGateway(fake)

	result, err := g.AnalyzeTool(context.Background(), testImage(), testTool(), types.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Pot Doctor", result.Title)
	assert.Equal(t, 82, result.Score)
	assert.Equal(t, "Excellent", result.Status)
	assert.NotEmpty(t, result.ToolID)
	assert.NotZero(t, result.Timestamp)
	assert.Equal(t, testImage(), result.ImageRef)
	assert.Same(t, toolSchema, fake.lastConfig.ResponseSchema)
}

func TestAnalyzeToolScoreDefaultsToNotApplicable(t *testing.T) {
	g := newTestGateway(&fakeGenerator{response: `{"status": "Noted", "analysis": "No numeric axis here.", "actionPlan": ["a"]}`})

	result, err := g.AnalyzeTool(context.Background(), testImage(), testTool(), types.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, types.ScoreNotApplicable, result.Score)
}

func TestAnalyzeToolMissingRequiredFields(t *testing.T) {
	g := newTestGateway(&fakeGenerator{response: `{"score": 10}`})

	_, err := g.AnalyzeTool(context.Background(), testImage(), testTool(), types.LanguageEnglish)
	assert.True(t, IsSchemaViolation(err))
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), "", DefaultModel)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
