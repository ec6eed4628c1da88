package di

import (
	"fmt"

	"github.com/apex/log"

	"github.com/goliatone/go-breed-cache/breed"
	"github.com/goliatone/go-breed-cache/cache"
	"github.com/goliatone/go-breed-cache/dogapi"
	"github.com/goliatone/go-breed-cache/fetchercache"
)

// Config selects how the container wires the fetcher stack.
type Config struct {
	// DogAPI configures the HTTP fetcher.
	DogAPI dogapi.Config

	// Bounded switches from the permanent in-memory store to the sturdyc
	// store configured by Cache.
	Bounded bool

	// Cache configures the bounded store. Ignored unless Bounded is set.
	Cache cache.Config
}

// DefaultConfig returns the public API with the permanent store.
func DefaultConfig() Config {
	return Config{
		DogAPI: dogapi.DefaultConfig(),
		Cache:  cache.DefaultConfig(),
	}
}

// Container provides dependency injection for the caching fetcher stack.
// It owns a single CachingFetcher wrapping the dog.ceo client.
type Container struct {
	cacheService  cache.CacheService[[]string]
	keySerializer cache.KeySerializer
	fetcher       *fetchercache.CachingFetcher
	config        Config
}

// Option tweaks container wiring.
type Option func(*options)

type options struct {
	base       breed.Fetcher
	logger     log.Interface
	clientOpts []dogapi.Option
}

// WithBaseFetcher replaces the dog.ceo client with another fetch source.
func WithBaseFetcher(f breed.Fetcher) Option {
	return func(o *options) {
		o.base = f
	}
}

// WithLogger sets the logger shared by the client and the decorator.
func WithLogger(logger log.Interface) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClientOptions forwards extra options to dogapi.New.
func WithClientOptions(opts ...dogapi.Option) Option {
	return func(o *options) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

// NewContainer creates a new DI container from config.
func NewContainer(config Config, opts ...Option) (*Container, error) {
	o := &options{logger: log.Log}
	for _, opt := range opts {
		opt(o)
	}

	base := o.base
	if base == nil {
		clientOpts := append([]dogapi.Option{
			dogapi.WithConfig(config.DogAPI),
			dogapi.WithLogger(o.logger),
		}, o.clientOpts...)

		client, err := dogapi.New(clientOpts...)
		if err != nil {
			return nil, err
		}
		base = client
	}

	var cacheService cache.CacheService[[]string]
	if config.Bounded {
		svc, err := cache.NewCacheService[[]string](config.Cache)
		if err != nil {
			return nil, fmt.Errorf("bounded cache: %w", err)
		}
		cacheService = svc
	} else {
		cacheService = cache.NewMemoryService[[]string]()
	}

	keySerializer := cache.NewDefaultKeySerializer()

	fetcher := fetchercache.New(base,
		fetchercache.WithCacheService(cacheService),
		fetchercache.WithKeySerializer(keySerializer),
		fetchercache.WithLogger(o.logger),
	)

	return &Container{
		cacheService:  cacheService,
		keySerializer: keySerializer,
		fetcher:       fetcher,
		config:        config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using default configuration.
func NewContainerWithDefaults(opts ...Option) (*Container, error) {
	return NewContainer(DefaultConfig(), opts...)
}

// Fetcher returns the caching fetcher.
func (c *Container) Fetcher() *fetchercache.CachingFetcher {
	return c.fetcher
}

// CacheService returns the store backing the caching fetcher.
func (c *Container) CacheService() cache.CacheService[[]string] {
	return c.cacheService
}

// KeySerializer returns the key serializer used by the caching fetcher.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Config returns a copy of the configuration used by this container.
func (c *Container) Config() Config {
	return c.config
}
