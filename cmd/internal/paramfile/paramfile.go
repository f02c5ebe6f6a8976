// Package paramfile loads stack parameters from flat YAML files.
//
// Values may contain {{placeholder}} references that are resolved
// against a caller-supplied value map, so one parameter file can serve
// several deployments.
package paramfile

import (
	"os"
	"regexp"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var placeholderRe = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Load reads a YAML mapping of parameter name to value and resolves
// placeholders against values.
func Load(path string, values map[string]string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading parameter file %s", path)
	}
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "parsing parameter file %s", path)
	}
	return Resolve(raw, values)
}

// Resolve interpolates {{placeholder}} references in each parameter
// value. A reference with no matching entry in values is an error.
func Resolve(raw map[string]string, values map[string]string) (map[string]string, error) {
	resolved := make(map[string]string, len(raw))
	for k, v := range raw {
		val, err := interpolate(v, values)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %q", k)
		}
		resolved[k] = val
	}
	return resolved, nil
}

func interpolate(val string, values map[string]string) (string, error) {
	var resolveErr error
	result := placeholderRe.ReplaceAllStringFunc(val, func(match string) string {
		key := placeholderRe.FindStringSubmatch(match)[1]
		v, ok := values[key]
		if !ok {
			resolveErr = errors.Newf("unknown placeholder %q", key)
			return match
		}
		return v
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return result, nil
}
