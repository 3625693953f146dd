package mlio

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/mlnet/core"
)

// DefaultSeparator separates fields of an edge list.
const DefaultSeparator = ','

type readConfig struct {
	sep     rune
	header  bool
	trim    bool
	netOpts []core.NetworkOption
}

// ReadOption configures ReadEdgeList.
type ReadOption func(*readConfig)

// CheckSeparator reports whether r can separate edge-list fields. The
// comment rune '#', the quote, line breaks and invalid runes are rejected
// with ErrBadSeparator.
func CheckSeparator(r rune) error {
	switch r {
	case '#', '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("%w: %q", ErrBadSeparator, r)
	}
	if !utf8.ValidRune(r) {
		return fmt.Errorf("%w: %q", ErrBadSeparator, r)
	}

	return nil
}

// WithSeparator sets the field separator. Panics when CheckSeparator
// rejects r; callers handling user input check first.
func WithSeparator(r rune) ReadOption {
	if err := CheckSeparator(r); err != nil {
		panic("mlio: WithSeparator: " + err.Error())
	}
	return func(c *readConfig) { c.sep = r }
}

// WithHeader skips the first record.
func WithHeader() ReadOption {
	return func(c *readConfig) { c.header = true }
}

// WithTrimSpace trims surrounding whitespace of every field.
func WithTrimSpace() ReadOption {
	return func(c *readConfig) { c.trim = true }
}

// WithNetworkOptions passes options to core.NewNetwork.
func WithNetworkOptions(opts ...core.NetworkOption) ReadOption {
	return func(c *readConfig) { c.netOpts = append(c.netOpts, opts...) }
}

func gatherReadOptions(opts ...ReadOption) readConfig {
	cfg := readConfig{sep: DefaultSeparator}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
