package tooling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPICreation(t *testing.T) {
	api := NewAPI()
	require.NotNil(t, api)
	assert.NotNil(t, api.documents)
	assert.NotNil(t, api.settings)
	require.NotNil(t, api.config)
	assert.Equal(t, DefaultMaxProblems, api.config.MaxProblems)
}

func TestAPIWithCustomConfig(t *testing.T) {
	api := NewAPIWithConfig(&Config{MaxProblems: 50})
	require.NotNil(t, api)
	assert.Equal(t, 50, api.config.MaxProblems)
	assert.Equal(t, DocumentSettings{MaxProblems: 50}, api.DefaultSettings())
}

func TestAPIWithInvalidConfig(t *testing.T) {
	api := NewAPIWithConfig(&Config{MaxProblems: -1})
	assert.Equal(t, DefaultMaxProblems, api.config.MaxProblems)
}

func TestDocumentLifecycle(t *testing.T) {
	api := NewAPI()

	doc := api.OpenDocument("prog.8xp", ":Disp X")
	require.NotNil(t, doc)
	assert.Equal(t, "prog.8xp", doc.URI)
	assert.Equal(t, ":Disp X", doc.Content)
	assert.Equal(t, 1, doc.Version)

	cached, exists := api.GetDocument("prog.8xp")
	require.True(t, exists)
	assert.Same(t, doc, cached)

	updated := api.UpdateDocument("prog.8xp", ":Disp Y", 2)
	assert.Equal(t, ":Disp Y", updated.Content)
	assert.Equal(t, 2, updated.Version)

	api.CloseDocument("prog.8xp")
	_, exists = api.GetDocument("prog.8xp")
	assert.False(t, exists)
}

func TestUpdateUnknownDocumentOpens(t *testing.T) {
	api := NewAPI()

	doc := api.UpdateDocument("late.8xp", ":Pause", 3)
	require.NotNil(t, doc)
	assert.Equal(t, 3, doc.Version)

	_, exists := api.GetDocument("late.8xp")
	assert.True(t, exists)
}

func TestOpenURIs(t *testing.T) {
	api := NewAPI()
	assert.Empty(t, api.OpenURIs())

	api.OpenDocument("a.8xp", "")
	api.OpenDocument("b.8xp", "")
	assert.ElementsMatch(t, []string{"a.8xp", "b.8xp"}, api.OpenURIs())

	api.CloseDocument("a.8xp")
	assert.Equal(t, []string{"b.8xp"}, api.OpenURIs())
}

func TestSettingsCache(t *testing.T) {
	api := NewAPI()

	_, exists := api.SettingsFor("prog.8xp")
	assert.False(t, exists)

	api.SetSettings("prog.8xp", DocumentSettings{MaxProblems: 10})
	s, exists := api.SettingsFor("prog.8xp")
	require.True(t, exists)
	assert.Equal(t, 10, s.MaxProblems)
}

func TestSetSettingsRejectsNonPositiveCap(t *testing.T) {
	api := NewAPI()

	api.SetSettings("prog.8xp", DocumentSettings{MaxProblems: 0})
	s, exists := api.SettingsFor("prog.8xp")
	require.True(t, exists)
	assert.Equal(t, DefaultMaxProblems, s.MaxProblems)
}

func TestCloseDocumentRemovesSettings(t *testing.T) {
	api := NewAPI()
	api.OpenDocument("prog.8xp", "")
	api.SetSettings("prog.8xp", DocumentSettings{MaxProblems: 10})

	api.CloseDocument("prog.8xp")

	_, exists := api.SettingsFor("prog.8xp")
	assert.False(t, exists, "settings must not outlive the document")
}

func TestClearSettings(t *testing.T) {
	api := NewAPI()
	api.SetSettings("a.8xp", DocumentSettings{MaxProblems: 10})
	api.SetSettings("b.8xp", DocumentSettings{MaxProblems: 20})

	api.ClearSettings()

	_, exists := api.SettingsFor("a.8xp")
	assert.False(t, exists)
	_, exists = api.SettingsFor("b.8xp")
	assert.False(t, exists)
}

func TestGetDiagnosticsUnknownDocument(t *testing.T) {
	api := NewAPI()
	assert.Nil(t, api.GetDiagnostics("missing.8xp"))
}
