// FILE: lixenwraith/params/doc.go

// Package params provides a self-describing parameter registry that binds named
// values from the command line, the environment, or a flat parameter file to
// statically typed fields of a caller-owned struct.
//
// Features:
//   - A closed set of kinds (float, int, bool, string) with per-parameter storage width
//   - A single declarative table drives registration, parsing and documentation
//   - `-Name Value` command-line binding with leading positional slots
//   - Last-write-wins argument processing, left to right
//   - Fixed-format reference output that always shows the declared defaults
//   - Separate current-value dumps (plain text and TOML)
//   - Flat TOML, YAML and JSON parameter files and prefixed environment variables
//
// Quick Start:
//
//	p, reg, err := params.Setup(os.Args[1:], os.Stderr)
//	if errors.Is(err, params.ErrUsage) {
//	    os.Exit(1)
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine.Run(p)
//
// Reference output (PrintParams) is one record per parameter:
//
//	- MaxIter = 500
//	  Maximum number of iterations.
//
// Precedence (lowest to highest):
//  1. Declared defaults
//  2. Parameter file
//  3. Environment variables (KK_MaxIter=600)
//  4. Command-line arguments (-MaxIter 600)
//
// The registry is built once and sealed before any binding takes place. Binding
// is expected to finish before the clustering engine starts; the registry guards
// its own state with a read-write mutex but does not synchronize the target fields.
package params
