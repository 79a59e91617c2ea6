package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return NewRegistry(
		Provider{
			Name:   "Alpha",
			Models: []string{"alpha-large", "alpha-small"},
			New: func(name string) (Model, error) {
				return NewMockModel(name, "Alpha"), nil
			},
		},
		Provider{
			Name:   "Beta",
			Models: []string{"beta-1"},
			New: func(name string) (Model, error) {
				return NewMockModel(name, "Beta"), nil
			},
		},
	)
}

func TestRegistryResolve(t *testing.T) {
	r := testRegistry()

	m, err := r.Resolve("beta-1")
	require.NoError(t, err)
	assert.Equal(t, "beta-1", m.Info().Name)
	assert.Equal(t, "Beta", m.Info().Provider)
}

func TestRegistryResolveIsExactMatch(t *testing.T) {
	r := testRegistry()

	_, err := r.Resolve("Alpha-Large")
	assert.Error(t, err)
}

func TestRegistryResolveUnsupported(t *testing.T) {
	r := testRegistry()

	_, err := r.Resolve("not-a-model")
	require.Error(t, err)
	assert.True(t, IsUnsupportedModel(err))
	// The error names the offender and the full identifier union.
	assert.Contains(t, err.Error(), "not-a-model")
	assert.Contains(t, err.Error(), "alpha-large, alpha-small, beta-1")
}

func TestRegistryCatalogOrder(t *testing.T) {
	r := testRegistry()

	catalog := r.Catalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, "Alpha", catalog[0].Name)
	assert.Equal(t, "Beta", catalog[1].Name)
	assert.Equal(t, []string{"alpha-large", "alpha-small"}, catalog[0].Models)

	assert.Equal(t, []string{"alpha-large", "alpha-small", "beta-1"}, r.Identifiers())
}
