package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/redis/go-redis/v9"

	"loan-amortization/internal/model"
)

// fakeRedis implements the subset of redis.Cmdable the store uses.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	lastTTL time.Duration
	failGet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if f.failGet != nil {
		cmd.SetErr(f.failGet)
		return cmd
	}
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key)
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.lastTTL = expiration
	cmd.SetVal("OK")
	return cmd
}

func TestRedisStore_RoundTrip(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	fake := newFakeRedis()
	s := NewRedisStoreWithClient(fake, 30*time.Minute)

	entry := &Entry{
		ID:    "id-1",
		Name:  "car",
		Terms: model.LoanTerms{Principal: 1200, AnnualRatePercent: 12, TermPeriods: 12},
		Schedule: model.Schedule{
			{Period: 1, Principal: 94.5, Interest: 12, Total: 106.5, RemainingBalance: 1105.5},
		},
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	is.NoErr(s.Set(ctx, entry))
	is.Equal(fake.lastTTL, 30*time.Minute)
	_, stored := fake.data[redisKeyPrefix+"id-1"]
	is.True(stored)

	got, ok, err := s.Get(ctx, "id-1")
	is.NoErr(err)
	is.True(ok)
	is.Equal(got, entry)
}

func TestRedisStore_Missing(t *testing.T) {
	is := is.New(t)

	s := NewRedisStoreWithClient(newFakeRedis(), time.Minute)
	got, ok, err := s.Get(context.Background(), "nope")
	is.NoErr(err)
	is.True(!ok)
	is.True(got == nil)
}

func TestRedisStore_BackendError(t *testing.T) {
	is := is.New(t)

	fake := newFakeRedis()
	fake.failGet = errors.New("connection refused")
	s := NewRedisStoreWithClient(fake, time.Minute)

	_, _, err := s.Get(context.Background(), "x")
	is.True(errors.Is(err, fake.failGet))
}

func TestRedisStore_CorruptValue(t *testing.T) {
	is := is.New(t)

	fake := newFakeRedis()
	fake.data[redisKeyPrefix+"bad"] = "{not json"
	s := NewRedisStoreWithClient(fake, time.Minute)

	_, ok, err := s.Get(context.Background(), "bad")
	is.True(err != nil)
	is.True(!ok)
}
