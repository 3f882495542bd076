package shared

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"transbook/shared/cache"
	"transbook/shared/dto"
)

// BuildCacheKey joins a cache prefix with an identifying suffix.
func BuildCacheKey(prefix, suffix string) string {
	return fmt.Sprintf("%s:%s", prefix, suffix)
}

// BuildCacheKeyWithQuery derives a deterministic cache key from the listing
// parameters and filters applied to a query.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("p%d:l%d:s%s %s", params.Page, params.Limit, params.SortBy, params.SortDir))
	builder.WriteString(":" + where)

	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		builder.WriteString(fmt.Sprintf(":%s=%v", key, args[key]))
	}

	return BuildCacheKey(prefix, builder.String())
}

// InvalidateCaches clears every cache entry under the given prefix, logging
// failures without propagating them; a stale cache miss is preferable to a
// failed mutation.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
