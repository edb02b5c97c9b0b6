// File: lixenwraith/params/convenience.go
package params

import (
	"fmt"
	"io"
	"slices"

	"github.com/BurntSushi/toml"
)

const (
	// ProgramName is shown in the usage line
	ProgramName = "KlustaKwik"
	// EnvPrefix is the environment variable prefix used by Setup
	EnvPrefix = "KK_"
)

// Setup is the program-level driver. It binds defaults, KK_-prefixed environment
// variables and args. When a help flag is present or fewer than the two
// positional arguments are given, it writes the usage line and the default
// parameter listing to w and returns ErrUsage.
func Setup(args []string, w io.Writer) (*Params, *Registry, error) {
	if slices.ContainsFunc(args, isHelp) || countPositionals(args) < len(Positional) {
		if err := PrintUsage(w); err != nil {
			return nil, nil, err
		}
		return nil, nil, ErrUsage
	}

	return NewBuilder().
		WithArgs(args).
		WithEnvPrefix(EnvPrefix).
		Build()
}

// PrintUsage writes the usage line followed by the default parameter listing.
func PrintUsage(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Usage: %s FileBase ElecNo [Arguments]\n\nDefault Parameters: \n", ProgramName); err != nil {
		return err
	}
	reg, err := NewRegistry(Defaults())
	if err != nil {
		return err
	}
	return reg.PrintParams(w)
}

// DumpTOML writes the live values as a flat TOML document.
func (r *Registry) DumpTOML(w io.Writer) error {
	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(r.Snapshot()); err != nil {
		return fmt.Errorf("failed to encode parameters as TOML: %w", err)
	}
	return nil
}

func countPositionals(args []string) int {
	n := 0
	for n < len(args) && !isFlag(args[n]) {
		n++
	}
	return n
}
