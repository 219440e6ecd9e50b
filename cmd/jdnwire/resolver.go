package main

import (
	"fmt"
	"io"
	"strings"

	"cuelang.org/go/cue"
	"github.com/alecthomas/kong"
	"github.com/jdn-utils/jdnutils/pkg/config"
)

// cueLoader reads a YAML or JSON config file and resolves flag values
// from it. A flag is looked up under its command first (encode.s3_bucket),
// then at the top level (s3_bucket).
func cueLoader(r io.Reader) (kong.Resolver, error) {
	val, err := config.LoadValueFromReader(r)
	if err != nil {
		return nil, err
	}
	return cueResolver(val), nil
}

func cueResolver(val cue.Value) kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		name := strings.ReplaceAll(flag.Name, "-", "_")

		var paths []string
		if parent != nil && parent.Command != nil {
			paths = append(paths, parent.Command.Name+"."+name)
		}
		paths = append(paths, name)

		for _, p := range paths {
			v := val.LookupPath(cue.ParsePath(p))
			if !v.Exists() {
				continue
			}
			return scalar(v, p)
		}
		return nil, nil
	})
}

// scalar converts a concrete CUE leaf into a value kong's mappers accept.
func scalar(v cue.Value, path string) (any, error) {
	switch v.Kind() {
	case cue.BoolKind:
		return v.Bool()
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return nil, err
		}
		return fmt.Sprint(n), nil
	case cue.StringKind:
		return v.String()
	default:
		return nil, fmt.Errorf("config key %q: unsupported value %s", path, v.Kind())
	}
}
