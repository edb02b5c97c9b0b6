// FILE: lixenwraith/params/loader.go
package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvTransformFunc maps a parameter name to an environment variable name.
type EnvTransformFunc func(name string) string

// LoadEnv applies every environment variable named prefix+Name, where Name is
// the exact parameter name (e.g. "KK_MaxIter").
func (b *Binder) LoadEnv(prefix string) error {
	return b.LoadEnvWith(func(name string) string { return prefix + name })
}

// LoadEnvWith applies environment variables named by transform. All failures
// are reported together.
func (b *Binder) LoadEnvWith(transform EnvTransformFunc) error {
	var errs []error
	for _, name := range b.reg.Names() {
		envVar := transform(name)
		if envVar == "" {
			continue
		}
		value, exists := os.LookupEnv(envVar)
		if !exists {
			continue
		}
		if err := b.ChangeParam(name, value); err != nil {
			errs = append(errs, fmt.Errorf("environment %s: %w", envVar, err))
		}
	}
	return errors.Join(errs...)
}

// LoadFile applies a flat parameter file. The format comes from the extension
// (.toml, .yaml, .yml, .json) or, failing that, from the content. Every value is
// rendered to text and goes through ChangeParam, so coercion matches the command line.
func (b *Binder) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to read parameter file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	values := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse TOML parameter file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&values); err != nil {
			return fmt.Errorf("failed to parse JSON parameter file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse YAML parameter file '%s': %w", path, err)
		}
	default:
		return fmt.Errorf("unable to determine format of parameter file '%s'", path)
	}

	// Map iteration order is random; apply in name order so errors are stable.
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	var errs []error
	for _, name := range names {
		raw, err := renderValue(values[name])
		if err != nil {
			errs = append(errs, &ParamError{Op: "load", Name: name, Err: err})
			continue
		}
		if err := b.ChangeParam(name, raw); err != nil {
			if b.unknown == UnknownWarn && isUnknown(err) {
				b.logger.Warn("ignoring unknown parameter in file", "file", path, "name", name)
				continue
			}
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("parameter file '%s': %w", path, errors.Join(errs...))
	}

	b.logger.Debug("parameter file applied", "file", path, "format", format, "count", len(names))
	return nil
}

// renderValue turns a decoded scalar into command-line text.
func renderValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		if val {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case json.Number:
		return val.String(), nil
	case map[string]any:
		return "", ErrNestedValue
	default:
		return "", fmt.Errorf("%w: unsupported value type %T", ErrTypeCoercion, v)
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// JSON first, YAML would accept it too
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
