package argv

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// OptionKind records how an option was introduced on the command line:
// a single dash or a double dash. The scan reproduces the kind faithfully
// but attaches no meaning to it.
type OptionKind int

const (
	// Short marks an option introduced by a single dash.
	Short OptionKind = iota

	// Long marks an option introduced by a double dash.
	Long
)

// String returns the kind as a human-readable word.
func (k OptionKind) String() string {
	if k == Long {
		return "long"
	}

	return "short"
}

// Option is one named option accumulated during a scan: the kind it was
// first seen with, and its values in encounter order. Values come from
// inline `=value` syntax and from bare arguments trailing the option.
type Option struct {
	Kind   OptionKind
	Values []string
}

func newOption(tok token) *Option {
	opt := &Option{Kind: tok.kind}
	if tok.value != "" {
		opt.Values = []string{tok.value}
	}

	return opt
}

// Result is the outcome of one scan. Args holds the positional arguments in
// input order, duplicates preserved. Options maps each option key to its
// accumulated record; key order is not significant.
//
// A Result is exclusively owned by its caller once returned, and the package
// keeps no reference to it.
type Result struct {
	Args    []string
	Options map[string]*Option
}

// Has reports whether the scan saw an option with the given key.
func (r *Result) Has(key string) bool {
	_, ok := r.Options[key]

	return ok
}

// Get returns the accumulated values of the given option key, or nil if the
// key was never seen.
func (r *Result) Get(key string) []string {
	opt, ok := r.Options[key]
	if !ok {
		return nil
	}

	return opt.Values
}

// Value returns the first value recorded for the given option key,
// and a boolean indicating if such a value is present.
func (r *Result) Value(key string) (string, bool) {
	opt, ok := r.Options[key]
	if !ok || len(opt.Values) == 0 {
		return "", false
	}

	return opt.Values[0], true
}

// Keys returns the scanned option keys in sorted order.
func (r *Result) Keys() []string {
	keys := maps.Keys(r.Options)
	slices.Sort(keys)

	return keys
}
