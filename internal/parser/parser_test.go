package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/stretchr/testify/require"
)

func envWith(vars map[string]string) parser.LookupEnv {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestBuildConfig(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		env     map[string]string
		want    model.Config
		wantErr error
	}{
		{
			name: "Positive - query and path",
			args: []string{"minigrep", "to", "poem.txt"},
			want: model.Config{Query: "to", SourcePath: "poem.txt"},
		},
		{
			name: "Positive - help needs no path",
			args: []string{"minigrep", "help"},
			want: model.Config{Query: "help"},
		},
		{
			name: "Positive - extra args are ignored",
			args: []string{"minigrep", "to", "poem.txt", "extra"},
			want: model.Config{Query: "to", SourcePath: "poem.txt"},
		},
		{
			name:    "Negative - no query",
			args:    []string{"minigrep"},
			wantErr: parser.ErrMissingQuery,
		},
		{
			name:    "Negative - empty args",
			args:    nil,
			wantErr: parser.ErrMissingQuery,
		},
		{
			name:    "Negative - no path",
			args:    []string{"minigrep", "foo"},
			wantErr: parser.ErrMissingFilePath,
		},
		{
			name: "Positive - IGNORE_CASE=1",
			args: []string{"minigrep", "to", "poem.txt"},
			env:  map[string]string{"IGNORE_CASE": "1"},
			want: model.Config{Query: "to", SourcePath: "poem.txt", IgnoreCase: true},
		},
		{
			name: "Positive - IGNORE_CASE=true",
			args: []string{"minigrep", "to", "poem.txt"},
			env:  map[string]string{"IGNORE_CASE": "true"},
			want: model.Config{Query: "to", SourcePath: "poem.txt", IgnoreCase: true},
		},
		{
			name: "Positive - IGNORE_CASE=yes stays sensitive",
			args: []string{"minigrep", "to", "poem.txt"},
			env:  map[string]string{"IGNORE_CASE": "yes"},
			want: model.Config{Query: "to", SourcePath: "poem.txt"},
		},
		{
			name: "Positive - empty IGNORE_CASE stays sensitive",
			args: []string{"minigrep", "to", "poem.txt"},
			env:  map[string]string{"IGNORE_CASE": ""},
			want: model.Config{Query: "to", SourcePath: "poem.txt"},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.BuildConfig(tt.args, envWith(tt.env))

			switch tt.wantErr {
			case nil:
				require.NoError(t, err)
				require.Equal(t, tt.want, cfg)
			default:
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIgnoreCaseNilLookup(t *testing.T) {
	require.False(t, parser.IgnoreCase(nil))
}

func TestQueryFromArgs(t *testing.T) {
	q, err := parser.QueryFromArgs([]string{"minigrep", "needle"})
	require.NoError(t, err)
	require.Equal(t, "needle", q)

	_, err = parser.QueryFromArgs([]string{"minigrep"})
	require.ErrorIs(t, err, parser.ErrNoArguments)
}

func TestInitNode(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "minigrepd.yaml")
	err := os.WriteFile(cfgFile, []byte("env: prod\naddress: \":9090\"\nlog:\n  file: /tmp/x.log\n  max_size: 5\n  compress: true\n"), 0o644)
	require.NoError(t, err)

	badFile := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badFile, []byte("env: [unclosed"), 0o644))

	cases := []struct {
		name    string
		args    []string
		want    *model.NodeConfig
		wantErr string
	}{
		{
			name: "Positive - defaults",
			args: nil,
			want: &model.NodeConfig{
				Env:     "local",
				Address: parser.DefaultNodeAddress,
				Log:     model.LogConfig{File: "logs/minigrepd.log", MaxSize: 100, MaxBackups: 3, MaxAge: 30},
			},
		},
		{
			name: "Positive - config file",
			args: []string{"-config", cfgFile},
			want: &model.NodeConfig{
				Env:     "prod",
				Address: ":9090",
				Log:     model.LogConfig{File: "/tmp/x.log", MaxSize: 5, MaxBackups: 3, MaxAge: 30, Compress: true},
			},
		},
		{
			name: "Positive - flags override config file",
			args: []string{"-config", cfgFile, "-address", ":7070", "-env", "local"},
			want: &model.NodeConfig{
				Env:     "local",
				Address: ":7070",
				Log:     model.LogConfig{File: "/tmp/x.log", MaxSize: 5, MaxBackups: 3, MaxAge: 30, Compress: true},
			},
		},
		{
			name:    "Negative - missing config file",
			args:    []string{"-config", filepath.Join(dir, "absent.yaml")},
			wantErr: "failed to read config",
		},
		{
			name:    "Negative - broken config file",
			args:    []string{"-config", badFile},
			wantErr: "failed to parse config",
		},
		{
			name:    "Negative - unknown flag",
			args:    []string{"-quorum", "3"},
			wantErr: "flag provided but not defined",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			nc, err := parser.InitNode(tt.args)

			switch tt.wantErr {
			case "":
				require.NoError(t, err)
				require.Equal(t, tt.want, nc)
			default:
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
