package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Cache is a best-effort read-through store for catalog listings. A miss or
// any cache error falls back to the repository.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

const (
	keyCategories = "catalog:categories"
	keyServices   = "catalog:services"
)

func servicesKey(category string) string {
	if category == "" {
		return keyServices
	}
	return keyServices + ":" + category
}

func cached[T any](
	ctx context.Context,
	cache Cache,
	key string,
	load func() (T, error),
) (T, error) {

	if cache == nil {
		return load()
	}

	var out T
	hit, err := cache.Get(ctx, key, &out)
	if err != nil {
		zap.L().Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return out, nil
	}

	out, err = load()
	if err != nil {
		return out, err
	}

	if err := cache.Set(ctx, key, out); err != nil {
		zap.L().Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}
