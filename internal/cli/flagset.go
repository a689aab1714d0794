package cli

import "github.com/spf13/pflag"

// NewFlagSet returns a ContinueOnError pflag set with every flag registered.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {}
	Register(fs)
	return fs
}
