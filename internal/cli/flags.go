package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/huegen/internal/colour"
)

// schemeValue is a pflag.Value that validates harmony scheme names at
// parse time, so a typo fails with the list of valid schemes before
// the command runs.
type schemeValue struct {
	scheme colour.Scheme
	set    bool
}

var _ pflag.Value = (*schemeValue)(nil)

func (v *schemeValue) String() string {
	if !v.set {
		return ""
	}
	return string(v.scheme)
}

func (v *schemeValue) Set(s string) error {
	scheme, err := colour.ParseScheme(s)
	if err != nil {
		return err
	}
	v.scheme = scheme
	v.set = true
	return nil
}

func (v *schemeValue) Type() string {
	return "scheme"
}

// Resolve returns the parsed scheme, falling back to the given name
// when the flag was not provided.
func (v *schemeValue) Resolve(fallback string) (colour.Scheme, error) {
	if v.set {
		return v.scheme, nil
	}
	return colour.ParseScheme(fallback)
}
