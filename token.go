package argv

import "strings"

// tokenClass discriminates the two shapes a raw argument can take.
type tokenClass int

const (
	// tokenBare is an argument with no dash prefix.
	tokenBare tokenClass = iota

	// tokenOption is an argument introduced by one or two dashes,
	// optionally carrying an inline `=value`.
	tokenOption
)

// token is the classified form of a single raw argument. It only
// lives for the duration of one scan step.
type token struct {
	class tokenClass

	// Bare arguments keep their full text.
	text string

	// Option fields. The key runs up to the first `=`, the value is
	// everything after it (empty when there is no `=`).
	kind  OptionKind
	key   string
	value string
}

// classify turns one non-empty raw argument into a token. It is total:
// every string has exactly one classification, including degenerate
// arguments like `-` or `--`, which yield an option with an empty key.
func classify(arg string) token {
	if !strings.HasPrefix(arg, "-") {
		return token{class: tokenBare, text: arg}
	}

	kind, rest := Short, arg[1:]
	if strings.HasPrefix(rest, "-") {
		kind, rest = Long, rest[1:]
	}

	key, value, _ := strings.Cut(rest, "=")

	return token{class: tokenOption, kind: kind, key: key, value: value}
}
