package catalogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cyberui/pkg/catalogs"
)

func embeddedCatalog(t *testing.T) *catalogs.Catalog {
	t.Helper()
	cat, err := catalogs.NewEmbedded()
	require.NoError(t, err)
	return cat
}

func ids(components []catalogs.Component) []string {
	out := make([]string, len(components))
	for i, c := range components {
		out[i] = c.ID
	}
	return out
}

var declarationOrder = []string{
	"button", "card", "input", "badge", "toggle", "modal", "tabs", "avatar",
	"tooltip", "progress", "alert", "select", "glitch-text", "scan-line", "cyber-grid",
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	cat := embeddedCatalog(t)

	assert.Equal(t, len(declarationOrder), cat.Len())
	assert.Equal(t, declarationOrder, ids(cat.Components()))

	for _, c := range cat.Components() {
		assert.NotEmpty(t, c.Name, c.ID)
		assert.NotEmpty(t, c.Description, c.ID)
		assert.NotEmpty(t, c.Code, c.ID)
	}
}

func TestComponentLookup(t *testing.T) {
	cat := embeddedCatalog(t)

	for _, want := range cat.Components() {
		got, ok := cat.Component(want.ID)
		require.True(t, ok, want.ID)
		assert.Equal(t, want, got)
	}

	_, ok := cat.Component("does-not-exist")
	assert.False(t, ok)

	_, ok = cat.Component("")
	assert.False(t, ok)

	// ids are exact, not case-folded
	_, ok = cat.Component("Button")
	assert.False(t, ok)
}

func TestComponentsStableAndIsolated(t *testing.T) {
	cat := embeddedCatalog(t)

	first := cat.Components()
	first[0].Name = "mutated"
	first[0].Variants[0] = "mutated"
	first[0].Props[0].Name = "mutated"

	second := cat.Components()
	assert.Equal(t, declarationOrder, ids(second))
	assert.Equal(t, "Button", second[0].Name)
	assert.Equal(t, "primary", second[0].Variants[0])
	assert.Equal(t, "variant", second[0].Props[0].Name)

	got, _ := cat.Component("button")
	got.Variants[0] = "mutated"
	again, _ := cat.Component("button")
	assert.Equal(t, "primary", again.Variants[0])
}

func TestCategories(t *testing.T) {
	cat := embeddedCatalog(t)
	categories := cat.Categories()

	require.Len(t, categories, 3)
	assert.Equal(t, "all", categories[0].Slug)
	assert.Equal(t, "usable", categories[1].Slug)
	assert.Equal(t, "experimental", categories[2].Slug)

	all, usable, experimental := categories[0], categories[1], categories[2]
	assert.Equal(t, cat.Len(), all.Count)
	assert.Equal(t, 12, usable.Count)
	assert.Equal(t, 3, experimental.Count)
	assert.Equal(t, all.Count, usable.Count+experimental.Count)

	var usableSlugs []string
	for _, s := range usable.Subcategories {
		usableSlugs = append(usableSlugs, s.Slug)
	}
	assert.Equal(t, []string{"buttons", "inputs", "cards", "navigation", "media"}, usableSlugs)
	assert.True(t, experimental.HasSubcategory("text-effects"))
	assert.True(t, experimental.HasSubcategory("backgrounds"))
	assert.False(t, experimental.HasSubcategory("buttons"))
	assert.Empty(t, all.Subcategories)
}

func TestNeighbors(t *testing.T) {
	cat := embeddedCatalog(t)

	prev, next := cat.Neighbors("button")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "card", next.ID)

	prev, next = cat.Neighbors("input")
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "card", prev.ID)
	assert.Equal(t, "badge", next.ID)

	prev, next = cat.Neighbors("cyber-grid")
	require.NotNil(t, prev)
	assert.Equal(t, "scan-line", prev.ID)
	assert.Nil(t, next)

	prev, next = cat.Neighbors("missing")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestDefaultVariant(t *testing.T) {
	cat := embeddedCatalog(t)

	button, ok := cat.Component("button")
	require.True(t, ok)
	assert.Equal(t, "primary", button.DefaultVariant())
	assert.True(t, button.HasVariant("ghost"))
	assert.False(t, button.HasVariant("danger"))

	input, ok := cat.Component("input")
	require.True(t, ok)
	assert.Equal(t, "", input.DefaultVariant())
}

func TestNewWithRecords(t *testing.T) {
	cat, err := catalogs.New(
		catalogs.WithComponents(
			catalogs.Component{ID: "a", Name: "A", Category: catalogs.CategoryUsable, Description: "first", Code: "<A />"},
			catalogs.Component{ID: "b", Name: "B", Category: catalogs.CategoryExperimental, Description: "second", Code: "<B />"},
		),
		catalogs.WithCategories(
			catalogs.Category{Name: "All", Slug: "all"},
			catalogs.Category{Name: "Usable", Slug: "usable"},
		),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, ids(cat.Components()))
	categories := cat.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, 2, categories[0].Count)
	assert.Equal(t, 1, categories[1].Count)
}

func TestNewEmpty(t *testing.T) {
	cat, err := catalogs.New()
	require.NoError(t, err)

	assert.Equal(t, 0, cat.Len())
	assert.NotNil(t, cat.Components())
	assert.NotNil(t, cat.Filter("all", ""))
	assert.Empty(t, cat.Categories())
}
