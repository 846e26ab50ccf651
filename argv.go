// Package argv classifies flat command-line argument lists into positional
// arguments and named options, under a single ordering rule: every positional
// argument comes before the first option. Once an option has been seen, all
// later bare arguments accumulate as values of the most recently seen option.
// The package only classifies; it never judges whether the resulting options
// are legal for the calling program.
package argv

// scanPhase tracks where the scan is in the argument list: still collecting
// positional arguments, or accumulating options and their values. The
// transition to scanOptions is permanent for the remainder of the scan.
type scanPhase int

const (
	scanArgs scanPhase = iota
	scanOptions
)

// Parse scans args left to right in a single pass, no backtracking, and
// returns the classified result. The caller is expected to have stripped the
// leading program path (conventionally, pass os.Args[1:]); Parse performs no
// trimming of its own.
//
// Parse is total: it always returns a usable Result and never fails. Empty
// strings anywhere in args are skipped without affecting state or result.
// Calls share no state, so identical input always produces an identical
// Result.
func Parse(args []string) *Result {
	res := &Result{Options: map[string]*Option{}}

	phase := scanArgs
	lastKey := ""

	for _, arg := range args {
		if arg == "" {
			continue
		}

		tok := classify(arg)

		switch tok.class {
		case tokenBare:
			if phase == scanArgs {
				res.Args = append(res.Args, tok.text)

				continue
			}

			// Past the first option, bare arguments are values of
			// whichever option key was established last. The entry
			// always exists by construction; if it ever did not,
			// the value is dropped rather than invented.
			if opt, ok := res.Options[lastKey]; ok {
				opt.Values = append(opt.Values, tok.text)
			}

		case tokenOption:
			if phase == scanArgs {
				res.Options[tok.key] = newOption(tok)
			} else if opt, ok := res.Options[tok.key]; ok {
				// A re-keyed option merges its values into the
				// existing entry, which keeps the kind it was
				// first recorded with.
				if tok.value != "" {
					opt.Values = append(opt.Values, tok.value)
				}
			} else {
				res.Options[tok.key] = newOption(tok)
			}

			phase, lastKey = scanOptions, tok.key

		default:
			// Unclassifiable arguments degrade to no-ops rather
			// than aborting the scan.
		}
	}

	return res
}
