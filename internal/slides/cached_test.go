package slides

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/five82/carousel/internal/cache"
	"github.com/five82/carousel/internal/carousel"
)

// MockLoader is a testify mock for Loader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context) ([]carousel.SlideSource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]carousel.SlideSource), args.Error(1)
}

func newRedis(t *testing.T) (*cache.RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })
	return adapter, mr
}

func TestCachedLoader_MissThenHit(t *testing.T) {
	redis, mr := newRedis(t)
	inner := new(MockLoader)
	ctx := context.Background()
	want := []carousel.SlideSource{{Title: "Banner"}}
	inner.On("Load", ctx).Return(want, nil).Once()

	l := NewCachedLoader(inner, redis, "", time.Minute)

	got, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, mr.Exists(DefaultCacheKey))

	got, err = l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	inner.AssertExpectations(t)
}

func TestCachedLoader_TTLExpiryReloads(t *testing.T) {
	redis, mr := newRedis(t)
	inner := new(MockLoader)
	ctx := context.Background()
	inner.On("Load", ctx).Return([]carousel.SlideSource{{Title: "v1"}}, nil).Once()
	inner.On("Load", ctx).Return([]carousel.SlideSource{{Title: "v2"}}, nil).Once()

	l := NewCachedLoader(inner, redis, "slides", time.Second)
	first, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", first[0].Title)

	mr.FastForward(2 * time.Second)

	second, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v2", second[0].Title)
	inner.AssertExpectations(t)
}

func TestCachedLoader_CorruptEntryFallsThrough(t *testing.T) {
	redis, mr := newRedis(t)
	require.NoError(t, mr.Set("slides", "not json"))
	inner := new(MockLoader)
	ctx := context.Background()
	inner.On("Load", ctx).Return([]carousel.SlideSource{{Title: "fresh"}}, nil).Once()

	got, err := NewCachedLoader(inner, redis, "slides", 0).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got[0].Title)

	stored, err := redis.Get(ctx, "slides")
	require.NoError(t, err)
	var decoded []carousel.SlideSource
	require.NoError(t, json.Unmarshal(stored, &decoded))
	assert.Equal(t, "fresh", decoded[0].Title)
}

func TestCachedLoader_CacheDownStillLoads(t *testing.T) {
	redis, mr := newRedis(t)
	mr.Close()
	inner := new(MockLoader)
	ctx := context.Background()
	inner.On("Load", ctx).Return([]carousel.SlideSource{{Title: "direct"}}, nil).Once()

	got, err := NewCachedLoader(inner, redis, "slides", 0).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "direct", got[0].Title)
}

func TestCachedLoader_InnerErrorPropagates(t *testing.T) {
	redis, _ := newRedis(t)
	inner := new(MockLoader)
	ctx := context.Background()
	inner.On("Load", ctx).Return(nil, errors.New("feed down")).Once()

	_, err := NewCachedLoader(inner, redis, "slides", 0).Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feed down")
}

func TestCachedLoader_Invalidate(t *testing.T) {
	redis, mr := newRedis(t)
	require.NoError(t, mr.Set("slides", "[]"))

	require.NoError(t, NewCachedLoader(new(MockLoader), redis, "slides", 0).Invalidate(context.Background()))
	assert.False(t, mr.Exists("slides"))
}
