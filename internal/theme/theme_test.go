package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLookup(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	require.Len(t, catalog, 20)

	neon, ok := catalog.Lookup("neon")
	require.True(t, ok)
	assert.Equal(t, "Neon", neon.Name)
	assert.Nil(t, neon.CustomColors)

	_, ok = catalog.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestCatalogIDsAreUniqueAndOrdered(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	seen := make(map[string]bool)
	for _, id := range catalog.IDs() {
		assert.False(t, seen[id], "duplicate theme id %s", id)
		seen[id] = true
	}
	assert.Equal(t, "modern", catalog.IDs()[0])
}

func TestApplyColorsDoesNotMutateBase(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	base, ok := catalog.Lookup("ocean")
	require.True(t, ok)

	customized := ApplyColors(base, CustomColors{Text: "#fff", Background: "#000"})
	require.NotNil(t, customized.CustomColors)
	assert.Equal(t, "#fff", customized.CustomColors.Text)

	// The base stays clean so other sessions can layer their own
	// overrides on the same catalog entry.
	assert.Nil(t, base.CustomColors)
	fresh, _ := catalog.Lookup("ocean")
	assert.Nil(t, fresh.CustomColors)
}

func TestApplyColorsCopiesTheOverride(t *testing.T) {
	t.Parallel()

	colors := CustomColors{Text: "#abc"}
	themed := ApplyColors(Theme{ID: "x"}, colors)

	colors.Text = "#def"
	assert.Equal(t, "#abc", themed.CustomColors.Text)
}

func TestExtractColorsCoversWholeCatalog(t *testing.T) {
	t.Parallel()

	fallback := ExtractColors("unknown-id")
	for _, id := range DefaultCatalog().IDs() {
		colors := ExtractColors(id)
		assert.NotEmpty(t, colors.Text, "theme %s", id)
		assert.NotEmpty(t, colors.Background, "theme %s", id)
		assert.NotEmpty(t, colors.Button, "theme %s", id)
		assert.NotEmpty(t, colors.Font, "theme %s", id)
		assert.NotEqual(t, fallback, colors, "theme %s should have its own palette", id)
	}
}

func TestSeedColors(t *testing.T) {
	t.Parallel()

	base := Theme{ID: "neon"}
	assert.Equal(t, ExtractColors("neon"), SeedColors(base))

	customized := ApplyColors(base, CustomColors{Text: "#123"})
	assert.Equal(t, "#123", SeedColors(customized).Text)
}

func TestGradientTakesPrecedence(t *testing.T) {
	t.Parallel()

	colors := ExtractColors("neon")
	assert.Equal(t, colors.ButtonGradient, colors.EffectiveButton())
	assert.Equal(t, colors.Text, colors.EffectiveText())

	aurora := ExtractColors("aurora")
	assert.Equal(t, aurora.TextGradient, aurora.EffectiveText())

	plain := CustomColors{Text: "#111", Background: "#fff", Button: "#00f", Header: "#111"}
	assert.Equal(t, "#111", plain.EffectiveText())
	assert.Equal(t, "#fff", plain.EffectiveBackground())
	assert.Equal(t, "#00f", plain.EffectiveButton())
	assert.Equal(t, "#111", plain.EffectiveHeader())
}
