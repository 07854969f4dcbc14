// internal/cli/options.go
package cli

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"kmereval/internal/cliutil"
	"kmereval/internal/config"
	"kmereval/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	ConfigPath string

	// Filter
	Theta float64

	// Output
	Output          string
	NoHeader        bool
	NoMatchExitCode int

	// Misc
	Verbose bool
	Quiet   bool
}

// Register wires all flags onto fs. Defaults mirror config.Default() so the
// help text shows the effective values of a plain run.
func Register(fs *pflag.FlagSet, o *Options) {
	def := config.Default()

	fs.StringVar(&o.ConfigPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")

	fs.Float64Var(&o.Theta, "theta", def.Theta, "keep entries whose count/total is strictly greater than this")

	fs.StringVarP(&o.Output, "output", "o", def.Output, "output: "+strings.Join(writers.Formats(), " | "))
	fs.BoolVar(&o.NoHeader, "no-header", !def.Header, "suppress header line in tsv output")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", def.NoMatchExitCode, "exit code when no entry passes in any file")

	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "log per-file details")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "log errors only")
}

// Apply merges explicitly set flags and positional inputs onto cfg.
// Flags left at their default do not override values from a config file.
func Apply(fs *pflag.FlagSet, o *Options, args []string, cfg *config.Config) error {
	if fs.Changed("theta") {
		cfg.Theta = o.Theta
	}
	if fs.Changed("output") {
		cfg.Output = o.Output
	}
	if fs.Changed("no-header") {
		cfg.Header = !o.NoHeader
	}
	if fs.Changed("no-match-exit-code") {
		cfg.NoMatchExitCode = o.NoMatchExitCode
	}
	if len(args) > 0 {
		inputs, err := cliutil.ExpandInputs(args)
		if err != nil {
			return err
		}
		cfg.Inputs = inputs
	}
	if cliutil.CountStdin(cfg.Inputs) > 1 {
		return errors.New("'-' (stdin) may be given only once")
	}
	return nil
}
