package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"hotelbook/shared/cache"
	"hotelbook/shared/constant"
	"hotelbook/shared/dto"
	"hotelbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeySeparator = ":"

	// generationWindow keeps a generation counter alive for 30 days after its first bump.
	generationWindow = 30 * 24 * 60 * 60
	firstGeneration  = "0"
)

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

func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", value, err)
	}

	return res, nil
}

func ConvertStringToInt64(value string) (int64, error) {
	res, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", value, err)
	}

	return res, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
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

// FilterByFields builds an AND group of equality filters, skipping empty values.
func FilterByFields(table string, fields map[string]any) dto.FilterGroup {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for field, value := range fields {
		if value == nil || value == constant.Empty {
			continue
		}

		group.Filters = append(group.Filters, dto.Filter{
			Field:    field,
			Value:    value,
			Operator: dto.FilterOperatorEq,
			Table:    table,
		})
	}

	return group
}

// BuildCacheKey joins a prefix and its parts into a redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from the query parameters and filters of a list call.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Where  string          `json:"where"`
		Args   map[string]any  `json:"args"`
	}{params, where, args})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key query")

		return BuildCacheKey(prefix, fmt.Sprintf("%+v", params))
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under the prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// CacheGeneration reads the counter bumped by BumpGeneration. A counter that was never bumped is "0".
func CacheGeneration(ctx context.Context, redisCache cache.RedisCache, key string) (string, error) {
	var generation string

	err := redisCache.Get(ctx, key, &generation)
	if errors.Is(err, cache.Nil) {
		return firstGeneration, nil
	}

	if err != nil {
		return constant.Empty, fmt.Errorf("failed to read cache generation: %w", err)
	}

	return generation, nil
}

// BumpGeneration moves the counter forward so entries keyed with an older generation are never read again,
// then clears the prefix.
func BumpGeneration(ctx context.Context, redisCache cache.RedisCache, key, prefix string) {
	if _, err := redisCache.Increment(ctx, key, generationWindow); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to bump cache generation")
	}

	InvalidateCaches(ctx, redisCache, prefix)
}
