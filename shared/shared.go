package shared

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BuildCacheKey joins the prefix and non-empty parts with colons.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part != "" {
			key = append(key, part)
		}
	}

	return strings.Join(key, cacheKeySeparator)
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate returns the 1-based page of items. Out of range pages are empty.
func Paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}

	if page < 1 {
		page = 1
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end]
}
