package services

import (
	"context"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"

	localCache "github.com/limelight-agency/limelight/pkg/internal/cache"
)

// InvalidateRoutes drops every cached view carrying one of the given tags.
// Mutations call this after a successful write so listing and detail routes
// re-render from the store.
func InvalidateRoutes(tags ...string) {
	if localCache.S == nil {
		return
	}

	cacheManager := cache.New[any](localCache.S)
	if err := cacheManager.Invalidate(context.Background(), store.WithInvalidateTags(tags)); err != nil {
		log.Warn().Err(err).Strs("tags", tags).Msg("An error occurred when invalidating cached routes...")
	}
}

func routeMarshaler() *marshaler.Marshaler {
	return marshaler.New(cache.New[any](localCache.S))
}
