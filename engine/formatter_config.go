package engine

import (
	"github.com/arloliu/textfmt/internal/options"
)

// FormatterConfig handles formatter configuration.
//
// The formatter itself is stateless between calls; the configuration only
// selects shared collaborators.
type FormatterConfig struct {
	cache *Cache
}

// NewFormatterConfig creates a FormatterConfig with defaults: no program
// cache, so every call compiles its format string.
func NewFormatterConfig() *FormatterConfig {
	return &FormatterConfig{}
}

// FormatterOption is a functional option for configuring a Formatter.
type FormatterOption = options.Option[*FormatterConfig]

// WithFormatCache attaches a compiled-program cache. Repeated format
// strings skip parsing. A single cache may be shared between any number
// of formatters and matchers.
func WithFormatCache(cache *Cache) FormatterOption {
	return options.NoError(func(cfg *FormatterConfig) {
		cfg.cache = cache
	})
}
