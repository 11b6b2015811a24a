// Package parser puts os.Args and environment into Config structure and validates it for any issues
package parser

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/UnendingLoop/minigrep/internal/model"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoArguments     = errors.New("No arguments provided")
	ErrMissingQuery    = errors.New("Didn't get a query string")
	ErrMissingFilePath = errors.New("Didn't get a file path")
)

// LookupEnv has the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// BuildConfig consumes args in order: program name (ignored), query, then file path.
// The file path is not read for the "help" query.
func BuildConfig(args []string, lookup LookupEnv) (model.Config, error) {
	next := argIterator(args)
	next() // имя программы

	query, ok := next()
	if !ok {
		return model.Config{}, ErrMissingQuery
	}

	var sourcePath string
	if query != model.HelpQuery {
		sourcePath, ok = next()
		if !ok {
			return model.Config{}, ErrMissingFilePath
		}
	}

	return model.Config{
		Query:      query,
		SourcePath: sourcePath,
		IgnoreCase: IgnoreCase(lookup),
	}, nil
}

// QueryFromArgs returns the first argument after the program name, pipe-mode needs nothing else.
func QueryFromArgs(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrNoArguments
	}
	return args[1], nil
}

// IgnoreCase is true only when IGNORE_CASE is "1" or "true"; mere presence is not enough.
func IgnoreCase(lookup LookupEnv) bool {
	if lookup == nil {
		return false
	}
	v, ok := lookup(model.EnvIgnoreCase)
	return ok && (v == "1" || v == "true")
}

func argIterator(args []string) func() (string, bool) {
	i := 0
	return func() (string, bool) {
		if i >= len(args) {
			return "", false
		}
		i++
		return args[i-1], true
	}
}

const (
	DefaultNodeAddress = ":8080"
	defaultLogFile     = "logs/minigrepd.log"
)

// InitNode parses minigrepd flags, then the optional YAML config. Flags given explicitly win over the file.
func InitNode(args []string) (*model.NodeConfig, error) {
	flagParser := flag.NewFlagSet("minigrepd", flag.ContinueOnError)
	addr := flagParser.String("address", "", fmt.Sprintf("search node listen address (default %q)", DefaultNodeAddress))
	cfgPath := flagParser.String("config", "", "path to YAML config file")
	env := flagParser.String("env", "", "'prod' for JSON logs into a rotated file, anything else for console logs")

	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	var nc model.NodeConfig
	if *cfgPath != "" {
		loaded, err := LoadNodeConfig(*cfgPath)
		if err != nil {
			return nil, err
		}
		nc = *loaded
	}

	if *addr != "" {
		nc.Address = *addr
	}
	if *env != "" {
		nc.Env = *env
	}

	setNodeDefaults(&nc)
	return &nc, nil
}

func LoadNodeConfig(path string) (*model.NodeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	var nc model.NodeConfig
	if err := yaml.Unmarshal(data, &nc); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return &nc, nil
}

func setNodeDefaults(nc *model.NodeConfig) {
	if nc.Address == "" {
		nc.Address = DefaultNodeAddress
	}
	if nc.Env == "" {
		nc.Env = "local"
	}
	if nc.Log.File == "" {
		nc.Log.File = defaultLogFile
	}
	if nc.Log.MaxSize <= 0 {
		nc.Log.MaxSize = 100
	}
	if nc.Log.MaxBackups <= 0 {
		nc.Log.MaxBackups = 3
	}
	if nc.Log.MaxAge <= 0 {
		nc.Log.MaxAge = 30
	}
}
