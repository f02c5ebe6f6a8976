package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/skylift/cfn/cmd/internal/paramfile"
)

// parseKeyValues splits repeated key=value flags into a map.
func parseKeyValues(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, errors.Newf("expected key=value, got %q", pair)
		}
		out[k] = v
	}
	return out, nil
}

// stackParameters merges a parameter file with --param flags; flags win
// on conflict. --set values feed the file's placeholders.
func stackParameters(file string, set, params []string) (map[string]string, error) {
	values, err := parseKeyValues(set)
	if err != nil {
		return nil, errors.Wrap(err, "--set")
	}

	merged := make(map[string]string)
	if file != "" {
		fromFile, err := paramfile.Load(file, values)
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			merged[k] = v
		}
	}

	flags, err := parseKeyValues(params)
	if err != nil {
		return nil, errors.Wrap(err, "--param")
	}
	for k, v := range flags {
		merged[k] = v
	}
	return merged, nil
}
