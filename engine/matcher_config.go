package engine

import (
	"github.com/arloliu/textfmt/internal/options"
)

// MatcherConfig handles matcher configuration.
type MatcherConfig struct {
	cache *Cache
}

// NewMatcherConfig creates a MatcherConfig with defaults: no program cache.
func NewMatcherConfig() *MatcherConfig {
	return &MatcherConfig{}
}

// MatcherOption is a functional option for configuring a Matcher.
type MatcherOption = options.Option[*MatcherConfig]

// WithScanCache attaches a compiled-program cache. Repeated format strings
// skip parsing. A single cache may be shared between any number of
// matchers and formatters.
func WithScanCache(cache *Cache) MatcherOption {
	return options.NoError(func(cfg *MatcherConfig) {
		cfg.cache = cache
	})
}
