package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verdant/internal/types"
)

func TestCatalogIsComplete(t *testing.T) {
	assert.Len(t, Catalog, 21)

	seen := make(map[string]bool)
	for _, tool := range Catalog {
		assert.NotEmpty(t, tool.ID)
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.CameraInstruction, "tool %s", tool.ID)
		assert.NotEmpty(t, tool.SystemPrompt, "tool %s", tool.ID)
		assert.Contains(t, types.ToolCategories, tool.Category, "tool %s", tool.ID)
		assert.False(t, seen[tool.ID], "duplicate tool id %s", tool.ID)
		seen[tool.ID] = true
	}
}

func TestByID(t *testing.T) {
	tool, ok := ByID("soil-scanner")
	require.True(t, ok)
	assert.Equal(t, "Smart Soil Scanner", tool.Name)

	_, ok = ByID("leaf-blower")
	assert.False(t, ok)
}

func TestByCategoryCoversCatalog(t *testing.T) {
	total := 0
	for _, c := range types.ToolCategories {
		total += len(ByCategory(c))
	}
	assert.Equal(t, len(Catalog), total)

	health := ByCategory(types.CategoryHealth)
	require.NotEmpty(t, health)
	assert.Equal(t, "soil-scanner", health[0].ID)
}
