package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-breed-cache/breed"
	"github.com/goliatone/go-breed-cache/cache"
	"github.com/goliatone/go-breed-cache/internal/cacheinfra"
	"github.com/goliatone/go-breed-cache/pkg/testsupport"
)

func TestNewContainerWithDefaults(t *testing.T) {
	container, err := NewContainerWithDefaults()
	require.NoError(t, err)
	require.NotNil(t, container)

	assert.NotNil(t, container.Fetcher())
	assert.NotNil(t, container.CacheService())
	assert.NotNil(t, container.KeySerializer())

	_, isMemory := container.CacheService().(*cacheinfra.MemoryService[[]string])
	assert.True(t, isMemory, "default container should use the permanent store")
	assert.Equal(t, DefaultConfig(), container.Config())
}

func TestNewContainer_Bounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bounded = true
	cfg.Cache.TTL = 10 * time.Minute

	container, err := NewContainer(cfg)
	require.NoError(t, err)

	_, isSturdyc := container.CacheService().(*cacheinfra.SturdycService[[]string])
	assert.True(t, isSturdyc)
	assert.Equal(t, 10*time.Minute, container.Config().Cache.TTL)
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	t.Run("bounded cache", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Bounded = true
		cfg.Cache = cache.Config{}

		container, err := NewContainer(cfg)
		assert.Error(t, err)
		assert.Nil(t, container)
	})

	t.Run("dog api", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DogAPI.BaseURL = ""

		container, err := NewContainer(cfg)
		assert.Error(t, err)
		assert.Nil(t, container)
	})

	t.Run("bounded settings ignored when unbounded", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Cache = cache.Config{}

		_, err := NewContainer(cfg)
		assert.NoError(t, err)
	})
}

func TestContainer_WithBaseFetcher(t *testing.T) {
	calls := 0
	base := breed.FetcherFunc(func(ctx context.Context, b string) ([]string, error) {
		calls++
		return []string{"x"}, nil
	})

	container, err := NewContainerWithDefaults(WithBaseFetcher(base))
	require.NoError(t, err)

	f := container.Fetcher()
	for i := 0; i < 3; i++ {
		_, err := f.GetSubBreeds(context.Background(), "Pug")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(1), f.CallsMade())
}

func TestContainer_EndToEndOverHTTP(t *testing.T) {
	srv := testsupport.NewAPIServer(t, map[string]testsupport.Route{
		"/api/breed/affenpinscher/list": {Body: []byte(`{"status":"success","message":[]}`)},
		"/api/breed/hound/list":         {Body: []byte(`{"status":"success","message":["afghan","basset"]}`)},
	})

	cfg := DefaultConfig()
	cfg.DogAPI.BaseURL = srv.URL

	container, err := NewContainer(cfg)
	require.NoError(t, err)
	f := container.Fetcher()
	ctx := context.Background()

	subs, err := f.GetSubBreeds(ctx, "Hound")
	require.NoError(t, err)
	assert.Equal(t, []string{"afghan", "basset"}, subs)

	_, err = f.GetSubBreeds(ctx, " hound ")
	require.NoError(t, err)

	_, err = f.GetSubBreeds(ctx, "unicorn")
	assert.True(t, breed.IsNotFound(err))

	_, err = f.GetSubBreeds(ctx, "unicorn")
	assert.True(t, breed.IsNotFound(err))

	subs, err = f.GetSubBreeds(ctx, "affenpinscher")
	require.NoError(t, err)
	assert.Empty(t, subs)

	assert.Equal(t, int64(4), f.CallsMade())
	assert.Equal(t, 4, srv.Hits())
	assert.Equal(t, []string{
		"/api/breed/hound/list",
		"/api/breed/unicorn/list",
		"/api/breed/unicorn/list",
		"/api/breed/affenpinscher/list",
	}, srv.Paths())
}
