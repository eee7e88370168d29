package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/hearthside/chronicle/pkg/internal/cache"
)

// The rendered index is shared by every viewer: the cache key only varies by
// page number, never by user or query string, so everyone inside the TTL
// window sees the same snapshot, including an author who just posted.
const (
	IndexCacheTTL       = 20 * time.Second
	indexCacheKeyPrefix = "index_page"
)

func indexCacheKey(page int) string {
	return fmt.Sprintf("%s#%d", indexCacheKeyPrefix, page)
}

func GetCachedIndexPage(page int) ([]byte, bool) {
	cacheManager := cache.New[[]byte](localCache.S)
	data, err := cacheManager.Get(context.Background(), indexCacheKey(page))
	if err != nil {
		return nil, false
	}
	return data, true
}

func SetCachedIndexPage(page int, data []byte) {
	cacheManager := cache.New[[]byte](localCache.S)
	_ = cacheManager.Set(
		context.Background(),
		indexCacheKey(page),
		data,
		store.WithExpiration(IndexCacheTTL),
		store.WithTags([]string{indexCacheKeyPrefix}),
	)

	// Ristretto applies writes asynchronously; wait so the next request
	// inside the TTL window is guaranteed to hit.
	localCache.R.Wait()
}

// FlushIndexPages is the explicit invalidation hook for the index snapshot.
func FlushIndexPages() error {
	cacheManager := cache.New[[]byte](localCache.S)
	err := cacheManager.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{indexCacheKeyPrefix}),
	)
	localCache.R.Wait()
	return err
}
