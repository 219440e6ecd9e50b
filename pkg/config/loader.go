// Package config provides configuration loading for jdnutils tools.
// It supports YAML, JSON, and CUE file formats using CUE as the underlying parser.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/encoding/yaml"
)

// LoadValueFromReader loads configuration from an io.Reader and returns a CUE value.
// This parses the content as YAML (which is a superset of JSON).
// For .cue files with imports, use LoadValue instead.
func LoadValueFromReader(r io.Reader) (cue.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	return buildYAML(cuecontext.New(), data)
}

// LoadValue loads configuration from a file and returns a CUE value.
// This allows dynamic path-based lookups without requiring Go struct definitions.
//
// For .cue files: Uses CUE's load.Instances to support CUE packages with imports and modules.
// For .yaml/.yml/.json files: Uses direct parsing for standalone data files.
// For directories: Loads all .cue files as a package (supports imports between files).
func LoadValue(path string) (cue.Value, error) {
	return loadValue(cuecontext.New(), path)
}

// LoadFromFile loads configuration from a file or directory into the specified type.
//
// Examples:
//
//	cfg, err := LoadFromFile[Profiles]("profiles.yaml")
//	cfg, err := LoadFromFile[Profiles]("./config")  // loads .cue directory
func LoadFromFile[T any](path string) (*T, error) {
	val, err := LoadValue(path)
	if err != nil {
		return nil, err
	}

	var config T
	if err := val.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &config, nil
}

// loadValue loads path into ctx. Values that will be unified with each
// other must come from the same context.
func loadValue(ctx *cue.Context, path string) (cue.Value, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to stat path: %w", err)
	}

	if fileInfo.IsDir() || strings.HasSuffix(strings.ToLower(path), ".cue") {
		return loadInstance(ctx, path, fileInfo.IsDir())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		// JSON can be compiled directly
		val := ctx.CompileBytes(data)
		if err := val.Err(); err != nil {
			return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
		}
		return val, nil
	}

	// .yaml, .yml and anything else
	return buildYAML(ctx, data)
}

func loadInstance(ctx *cue.Context, path string, isDir bool) (cue.Value, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg := &load.Config{
		Dir:       filepath.Dir(absPath),
		DataFiles: true,
	}

	args := []string{absPath}
	if isDir {
		args = []string{path}
	}

	instances := load.Instances(args, cfg)
	if len(instances) == 0 {
		return cue.Value{}, fmt.Errorf("no instances loaded from %s", path)
	}

	inst := instances[0]
	if inst.Err != nil {
		return cue.Value{}, fmt.Errorf("failed to load config: %w", inst.Err)
	}

	val := ctx.BuildInstance(inst)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

func buildYAML(ctx *cue.Context, data []byte) (cue.Value, error) {
	file, err := yaml.Extract("", data)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to parse config: %w", err)
	}

	val := ctx.BuildFile(file)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}
