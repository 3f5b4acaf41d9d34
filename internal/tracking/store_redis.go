package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/2beens/smarttrack/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const contributionsKey = "smarttrack::contributions"

// RedisStore keeps contributions in a single redis hash, one field per day.
type RedisStore struct {
	redisClient *redis.Client
}

var _ ContributionStore = (*RedisStore)(nil)

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Publish(ctx context.Context, contributions map[string]*Contribution) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.contributions.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", len(contributions)))

	dateKeys := make([]string, 0, len(contributions))
	for dateKey := range contributions {
		dateKeys = append(dateKeys, dateKey)
	}
	sort.Strings(dateKeys)

	values := make([]interface{}, 0, 2*len(dateKeys))
	for _, dateKey := range dateKeys {
		contributionJson, err := json.Marshal(contributions[dateKey])
		if err != nil {
			return fmt.Errorf("marshal contribution [%s]: %w", dateKey, err)
		}
		values = append(values, dateKey, string(contributionJson))
	}

	if _, err := s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, contributionsKey)
		if len(values) > 0 {
			pipe.HSet(ctx, contributionsKey, values...)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("publish contributions: %w", err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, dateKey string) (_ *Contribution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.contributions.get")
	defer func() {
		if errors.Is(err, ErrContributionNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	contributionJson, err := s.redisClient.HGet(ctx, contributionsKey, dateKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrContributionNotFound
		}
		return nil, fmt.Errorf("get contribution [%s]: %w", dateKey, err)
	}

	var contribution Contribution
	if err := json.Unmarshal([]byte(contributionJson), &contribution); err != nil {
		return nil, fmt.Errorf("unmarshal contribution [%s]: %w", dateKey, err)
	}
	return &contribution, nil
}

func (s *RedisStore) All(ctx context.Context) (_ map[string]*Contribution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.contributions.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	fields, err := s.redisClient.HGetAll(ctx, contributionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("get all contributions: %w", err)
	}

	contributions := make(map[string]*Contribution, len(fields))
	for dateKey, contributionJson := range fields {
		var contribution Contribution
		if err := json.Unmarshal([]byte(contributionJson), &contribution); err != nil {
			return nil, fmt.Errorf("unmarshal contribution [%s]: %w", dateKey, err)
		}
		contributions[dateKey] = &contribution
	}
	return contributions, nil
}
