// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kmereval/internal/cli"
	"kmereval/internal/cmdutil"
	"kmereval/internal/config"
	"kmereval/internal/pipeline"
	"kmereval/internal/result"
	"kmereval/internal/version"
	"kmereval/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitEvalError = 1 // missing input, malformed line, zero total
	ExitUsage     = 2 // bad flags or configuration
	ExitWrite     = 3 // stdout failed
	ExitCancelled = 130
)

// writeError marks failures of the output side.
type writeError struct{ err error }

func (e *writeError) Error() string { return e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	var opts cli.Options

	cmd := &cobra.Command{
		Use:   "kmereval [flags] [result files...]",
		Short: "Filter k-mer query results by hit ratio",
		Long: `kmereval reads the tab-separated result files written by the k-mer query
tool and prints, per file, the samples whose hit ratio (count / total) is
strictly greater than --theta.

Without arguments it evaluates query_kmer.res and then query.res with
theta 0, printing one list per file. Positional arguments (globs allowed,
'-' for stdin, .gz transparently decompressed) replace the default inputs.`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = run(cmd.Context(), cmd, &opts, args, stdout, stderr)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cli.Register(cmd.Flags(), &opts)
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts *cli.Options, args []string, stdout, stderr io.Writer) int {
	log := cmdutil.NewLogger(stderr, opts.Verbose, opts.Quiet)
	defer func() { _ = log.Sync() }()

	cfg := config.Default()
	if path := config.Path(opts.ConfigPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Error("configuration", zap.Error(err))
			return ExitUsage
		}
		log.Debug("loaded config", zap.String("path", path))
		cfg = loaded
	}
	if err := cli.Apply(cmd.Flags(), opts, args, &cfg); err != nil {
		log.Error("arguments", zap.Error(err))
		return ExitUsage
	}
	if err := cfg.Validate(); err != nil {
		log.Error("configuration", zap.Error(err))
		return ExitUsage
	}

	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	w, err := writers.New(cfg.Output, outw, writers.Options{Header: cfg.Header})
	if err != nil {
		log.Error("configuration", zap.Error(err))
		return ExitUsage
	}

	st, err := pipeline.ForEachEvaluation(ctx,
		pipeline.Config{Inputs: cfg.Inputs, Theta: cfg.Theta},
		log,
		func(ev result.Evaluation) error {
			if err := w.Write(ev); err != nil {
				return &writeError{err}
			}
			if err := outw.Flush(); err != nil {
				return &writeError{err}
			}
			return nil
		},
	)
	if err != nil {
		return failure(ctx, log, err)
	}
	if err := w.Close(); err != nil {
		return failure(ctx, log, &writeError{err})
	}
	if err := outw.Flush(); err != nil {
		return failure(ctx, log, &writeError{err})
	}

	log.Debug("done", zap.Int("files", st.Files), zap.Int("matches", st.Matches))
	if st.Matches == 0 {
		return cfg.NoMatchExitCode
	}
	return ExitOK
}

// failure logs err and maps it to an exit code.
func failure(ctx context.Context, log *zap.Logger, err error) int {
	var we *writeError
	switch {
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return ExitCancelled
	case errors.As(err, &we):
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		log.Error("write output", zap.Error(err))
		return ExitWrite
	default:
		log.Error("evaluation failed", zap.Error(err))
		return ExitEvalError
	}
}

// RunContext executes the command line argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := ExitOK
	cmd := newRootCmd(stdout, stderr, &code)
	if argv == nil {
		// cobra falls back to os.Args on a nil slice
		argv = []string{}
	}
	cmd.SetArgs(argv)
	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(stderr, cmd.UsageString())
		return ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
