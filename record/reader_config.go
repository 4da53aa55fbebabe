package record

import (
	"fmt"

	"github.com/arloliu/textfmt/engine"
	"github.com/arloliu/textfmt/internal/options"
)

// ReaderConfig handles record reader configuration.
type ReaderConfig struct {
	matcher *engine.Matcher
}

// NewReaderConfig creates a ReaderConfig with defaults: a fresh uncached
// matcher for ScanRecord.
func NewReaderConfig() *ReaderConfig {
	return &ReaderConfig{}
}

// ReaderOption is a functional option for configuring a Reader.
type ReaderOption = options.Option[*ReaderConfig]

// WithMatcher supplies the matcher used by ScanRecord, typically one
// sharing a program cache with the rest of the application.
func WithMatcher(matcher *engine.Matcher) ReaderOption {
	return options.New(func(cfg *ReaderConfig) error {
		if matcher == nil {
			return fmt.Errorf("matcher must not be nil")
		}

		cfg.matcher = matcher

		return nil
	})
}
