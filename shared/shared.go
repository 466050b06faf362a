package shared

import (
	"context"
	"fmt"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// ConvertStringToInt parses a path or query value, failing with a bad request.
func ConvertStringToInt(value string) (int, error) {
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid number: %q", value)) //nolint:wrapcheck
	}

	return number, nil
}

func ConvertStringToDate(value string) (time.Time, error) {
	date, err := timezone.ParseDate(value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid date: %q, expected YYYY-MM-DD", value)) //nolint:wrapcheck
	}

	return date, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate returns the page-th window of items, pages starting at 1.
func Paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 || page <= 0 {
		return items
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end]
}

// RoundMoney rounds an amount to two decimal places, half away from zero.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100 //nolint:mnd
}

// FormatMoney renders an amount with exactly two decimal places.
func FormatMoney(amount float64) string {
	return fmt.Sprintf(constant.MoneyFormat, RoundMoney(amount))
}

// BuildCacheKey joins prefix and parts into a redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// InvalidateCaches removes every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
