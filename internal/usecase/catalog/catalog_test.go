package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/db/dbtest"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// memoryCache is a Cache backed by a map of JSON blobs.
type memoryCache struct {
	data   map[string][]byte
	gets   int
	hits   int
	failed bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	m.gets++
	if m.failed {
		return false, errors.New("cache down")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(raw, dst)
}

func (m *memoryCache) Set(_ context.Context, key string, value any) error {
	if m.failed {
		return errors.New("cache down")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func seeded(t *testing.T) *repository.CatalogGormRepository {
	t.Helper()

	repo := repository.NewCatalogGormRepository(dbtest.Open(t))
	require.NoError(t, NewSeed(repo).Execute(context.Background()))
	return repo
}

func TestSeed_Idempotent(t *testing.T) {
	db := dbtest.Open(t)
	repo := repository.NewCatalogGormRepository(db)
	seed := NewSeed(repo)

	require.NoError(t, seed.Execute(context.Background()))
	require.NoError(t, seed.Execute(context.Background()))

	assert.EqualValues(t, 3, dbtest.Count(t, db, &models.Category{}))
	assert.EqualValues(t, 7, dbtest.Count(t, db, &models.Service{}))
}

func TestSeed_ServicesLandInTheirCategory(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	for _, name := range domain.Services() {
		service, err := repo.GetServiceByName(ctx, name)
		require.NoError(t, err, name)

		want, err := domain.Classify(name)
		require.NoError(t, err)

		cat, err := repo.GetCategoryByName(ctx, want)
		require.NoError(t, err)
		assert.Equal(t, cat.ID, service.CategoryID, name)
	}
}

func TestListCategories(t *testing.T) {
	repo := seeded(t)

	cats, err := NewListCategories(repo, nil).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "home_repairs", cats[0].Name)
	assert.Equal(t, "cleaning", cats[1].Name)
	assert.Equal(t, "gardening", cats[2].Name)
}

func TestGetCategory(t *testing.T) {
	repo := seeded(t)
	uc := NewGetCategory(repo)

	cat, err := uc.Execute(context.Background(), "gardening")
	require.NoError(t, err)
	assert.Equal(t, "gardening", cat.Name)

	_, err = uc.Execute(context.Background(), "cooking")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestListServices(t *testing.T) {
	repo := seeded(t)
	uc := NewListServices(repo, nil)
	ctx := context.Background()

	all, err := uc.Execute(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 7)

	home, err := uc.Execute(ctx, "home_repairs")
	require.NoError(t, err)
	names := []string{}
	for _, s := range home {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"plumbing", "electrician", "handyman"}, names)

	_, err = uc.Execute(ctx, "cooking")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestGetService(t *testing.T) {
	repo := seeded(t)
	uc := NewGetService(repo)

	s, err := uc.Execute(context.Background(), "welding")
	require.NoError(t, err)
	assert.Equal(t, "welding", s.Name)

	_, err = uc.Execute(context.Background(), "carpentry")
	assert.Equal(t, httperr.KindInvalidServiceName, httperr.KindOf(err))
}

func TestListServices_UsesCache(t *testing.T) {
	repo := seeded(t)
	cache := newMemoryCache()
	uc := NewListServices(repo, cache)
	ctx := context.Background()

	first, err := uc.Execute(ctx, "cleaning")
	require.NoError(t, err)
	assert.Zero(t, cache.hits)
	assert.Contains(t, cache.data, "catalog:services:cleaning")

	second, err := uc.Execute(ctx, "cleaning")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first, second)
}

func TestListCategories_CacheFailureFallsBack(t *testing.T) {
	repo := seeded(t)
	cache := newMemoryCache()
	cache.failed = true

	cats, err := NewListCategories(repo, cache).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 3)
	assert.Equal(t, 1, cache.gets)
}
