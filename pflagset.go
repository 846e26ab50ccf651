package argv

import (
	"fmt"

	"github.com/spf13/pflag"
)

// flagSet describes the interface that's implemented
// by the pflag library and required by Feed.
type flagSet interface {
	Lookup(name string) *pflag.Flag
	ShorthandLookup(name string) *pflag.Flag
	Set(name, value string) error
}

var _ flagSet = (*pflag.FlagSet)(nil)

// Feed pushes the scanned options onto dst, a set of already registered
// pflag flags. Long options resolve against flag names, short options first
// against single-letter shorthands. Keys with no registered flag are skipped
// entirely: deciding which options are legal remains the caller's business.
//
// An option that accumulated no values only sets its flag when the flag
// declares a NoOptDefVal, matching how pflag itself treats a bare flag.
// Keys are fed in sorted order, so a rejected value always fails on the
// same key.
func (r *Result) Feed(dst flagSet) error {
	for _, key := range r.Keys() {
		opt := r.Options[key]

		flag := lookupFlag(dst, key, opt.Kind)
		if flag == nil {
			continue
		}

		if len(opt.Values) == 0 {
			if flag.NoOptDefVal == "" {
				continue
			}

			if err := dst.Set(flag.Name, flag.NoOptDefVal); err != nil {
				return fmt.Errorf("%w: flag %s: %s", ErrFlagValue, flag.Name, err.Error())
			}

			continue
		}

		for _, value := range opt.Values {
			if err := dst.Set(flag.Name, value); err != nil {
				return fmt.Errorf("%w: flag %s: %s", ErrFlagValue, flag.Name, err.Error())
			}
		}
	}

	return nil
}

func lookupFlag(dst flagSet, key string, kind OptionKind) *pflag.Flag {
	// ShorthandLookup panics on anything longer than one character.
	if kind == Short && len(key) == 1 {
		if flag := dst.ShorthandLookup(key); flag != nil {
			return flag
		}
	}

	return dst.Lookup(key)
}
