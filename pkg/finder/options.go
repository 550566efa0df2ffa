package finder

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type options struct {
	caseSensitive bool
}

// Option configures a finder at construction.
type Option func(*options)

// WithCaseSensitive controls whether grid and query words are compared as-is (the default)
// or lower-cased first. The policy applies to every strategy alike.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(o *options) {
		o.caseSensitive = caseSensitive
	}
}

func newOptions(opts []Option) options {
	o := options{caseSensitive: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// folder returns the normalisation applied to indexed and queried words.
// A cases.Caser keeps state between calls, so every caller gets its own.
func (o options) folder() func(string) string {
	if o.caseSensitive {
		return func(s string) string { return s }
	}
	return cases.Lower(language.Und).String
}
