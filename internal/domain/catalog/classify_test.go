package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

func TestClassify_Table(t *testing.T) {
	cases := map[ServiceName]CategoryName{
		ServicePlumbing:    CategoryHomeRepairs,
		ServiceElectrician: CategoryHomeRepairs,
		ServiceHandyman:    CategoryHomeRepairs,
		ServiceCleaning:    CategoryCleaning,
		ServicePainting:    CategoryCleaning,
		ServiceGardening:   CategoryGardening,
		ServiceWelding:     CategoryGardening,
	}

	for name, want := range cases {
		got, err := Classify(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestClassify_IsTotalOverServices(t *testing.T) {
	for _, name := range Services() {
		cat, err := Classify(name)
		require.NoError(t, err, name)
		assert.True(t, cat.Valid(), name)
	}
}

func TestClassify_UnknownName(t *testing.T) {
	_, err := Classify(ServiceName("carpentry"))
	require.Error(t, err)
	assert.Equal(t, httperr.KindInvalidServiceName, httperr.KindOf(err))
}

func TestClassifyName_NormalizesInput(t *testing.T) {
	cat, err := ClassifyName("  Plumbing ")
	require.NoError(t, err)
	assert.Equal(t, CategoryHomeRepairs, cat)

	_, err = ClassifyName("")
	assert.Equal(t, httperr.KindInvalidServiceName, httperr.KindOf(err))
}

func TestParseCategoryName(t *testing.T) {
	got, err := ParseCategoryName("Cleaning")
	require.NoError(t, err)
	assert.Equal(t, CategoryCleaning, got)

	_, err = ParseCategoryName("plumbing")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestSeeds(t *testing.T) {
	cats := CategorySeeds()
	require.Len(t, cats, len(Categories()))
	for _, c := range cats {
		assert.NotEmpty(t, c.Description, c.Name)
	}

	services, err := ServiceSeeds()
	require.NoError(t, err)
	require.Len(t, services, len(Services()))

	for _, s := range services {
		want, err := Classify(s.Name)
		require.NoError(t, err)
		assert.Equal(t, want, s.Category, s.Name)
		assert.NotEmpty(t, s.Description, s.Name)
	}
}
