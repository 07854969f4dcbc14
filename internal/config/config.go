// Package config loads the optional YAML configuration file and holds the
// defaults that reproduce the plain evaluation run.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvConfig names a config file used when --config is not given.
const EnvConfig = "KMEREVAL_CONFIG"

// Default result files written by the query tool: k-mer query first, then
// l-mer (minimizer) query.
const (
	DefaultKmerResult = "query_kmer.res"
	DefaultLmerResult = "query.res"
)

// Config is the full run configuration. Flags and positional arguments are
// applied on top of it by the command layer.
type Config struct {
	Inputs          []string `yaml:"inputs" validate:"required,min=1,dive,required"`
	Theta           float64  `yaml:"theta"`
	Output          string   `yaml:"output" validate:"required,oneof=list text tsv json jsonl"`
	Header          bool     `yaml:"header"`
	NoMatchExitCode int      `yaml:"no_match_exit_code" validate:"gte=0,lte=255"`
}

// Default returns the configuration of a run without any file or flags.
func Default() Config {
	return Config{
		Inputs: []string{DefaultKmerResult, DefaultLmerResult},
		Theta:  0.0,
		Output: "list",
		Header: true,
	}
}

// Load reads path and merges it onto Default(). Keys absent from the file keep
// their default value. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config path is empty")
	}
	fh, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	defer fh.Close()

	dec := yaml.NewDecoder(fh)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Path resolves the config file to use: the explicit flag value, else
// $KMEREVAL_CONFIG, else none.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return strings.TrimSpace(os.Getenv(EnvConfig))
}

var validate = validator.New()

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("config error: %s", describe(verrs[0]))
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.StructField()
	switch {
	case strings.HasPrefix(field, "Inputs["):
		return "'inputs' contains an empty path"
	case field == "Inputs":
		return "at least one input result file is required"
	case field == "Output" && fe.Tag() == "oneof":
		return fmt.Sprintf("invalid output %q (want one of: %s)", fe.Value(), fe.Param())
	case field == "NoMatchExitCode":
		return "'no_match_exit_code' must be between 0 and 255"
	}
	return fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag())
}
