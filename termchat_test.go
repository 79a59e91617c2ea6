package termchat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saimedhP-gif/termchat/model"
)

func TestDefaultRegistryResolvesKnownModels(t *testing.T) {
	r := DefaultRegistry()

	m, err := r.Resolve("gpt-4")
	require.NoError(t, err)
	assert.Equal(t, "OpenAI", m.Info().Provider)

	m, err = r.Resolve("gemini-pro")
	require.NoError(t, err)
	assert.Equal(t, "Google", m.Info().Provider)

	m, err = r.Resolve("claude-3-5-sonnet-latest")
	require.NoError(t, err)
	assert.Equal(t, "Anthropic", m.Info().Provider)
}

func TestDefaultRegistryUnsupportedModelNamesFullCatalog(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Resolve("not-a-model")
	require.Error(t, err)
	assert.True(t, model.IsUnsupportedModel(err))
	assert.Contains(t, err.Error(), "not-a-model")
	for _, name := range r.Identifiers() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestDefaultRegistryCatalogOrder(t *testing.T) {
	catalog := DefaultRegistry().Catalog()
	require.Len(t, catalog, 3)
	assert.Equal(t, "OpenAI", catalog[0].Name)
	assert.Equal(t, "Google", catalog[1].Name)
	assert.Equal(t, "Anthropic", catalog[2].Name)
	assert.Equal(t, []string{"gpt-3.5-turbo", "gpt-4", "gpt-4-turbo"}, catalog[0].Models)
}

func TestCatalogsDoNotOverlap(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range DefaultRegistry().Identifiers() {
		assert.False(t, seen[name], "duplicate identifier %s", name)
		seen[name] = true
	}
}

func TestNewAppWiresComponents(t *testing.T) {
	app, err := New(func(o *Options) {
		o.Model = "gemini-pro"
		o.SystemMessage = "Be brief."
		o.ConfigFile = t.TempDir() + "/config.json"
		o.ConversationDir = t.TempDir()
	})
	require.NoError(t, err)
	assert.Equal(t, "gemini-pro", app.Engine.ModelName())
	assert.Equal(t, "Be brief.", app.Engine.SystemMessage())
	assert.NotNil(t, app.Store)
	assert.NotNil(t, app.CLI)
}

func TestNewAppUnsupportedModelFails(t *testing.T) {
	_, err := New(func(o *Options) {
		o.Model = "not-a-model"
		o.ConfigFile = t.TempDir() + "/config.json"
		o.ConversationDir = t.TempDir()
	})
	require.Error(t, err)
	assert.True(t, model.IsUnsupportedModel(err))
}
