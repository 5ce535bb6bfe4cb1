package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codalotl/unidiff/internal/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every config env var for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range EnvVars {
		t.Setenv(v, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.False(t, c.Disable)
	assert.Equal(t, diff.DefaultContextSize, c.Context)
	assert.Equal(t, "myers", c.Algorithm)
	assert.Equal(t, diff.DefaultMaxCost, c.MaxCost)
	assert.False(t, c.MissingNewlineMarker)
	assert.Equal(t, Origin{SourceType: "default"}, c.OriginOf(KeyContext))
	assert.Equal(t, Origin{}, c.OriginOf("nope"))
}

func TestLoad_DefaultsOnly(t *testing.T) {
	clearEnv(t)
	c, err := Load(Options{NoSearch: true})
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	writeFile(t, path, `{"context": 5, "algorithm": "patience", "Max_Cost": 10, "unknown": [1, 2]}`)

	c, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, 5, c.Context)
	assert.Equal(t, "patience", c.Algorithm)
	assert.Equal(t, 10, c.MaxCost)
	assert.False(t, c.Disable)
	assert.Equal(t, Origin{SourceType: "json_file", SourceIdentifier: path}, c.OriginOf(KeyContext))
	assert.Equal(t, Origin{SourceType: "default"}, c.OriginOf(KeyDisable))

	t.Setenv("UNIDIFF_CONTEXT", " 1 ")
	t.Setenv("UNIDIFF_DISABLE", "true")
	c, err = Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Context)
	assert.True(t, c.Disable)
	assert.Equal(t, "patience", c.Algorithm)
	assert.Equal(t, Origin{SourceType: "env"}, c.OriginOf(KeyContext))
}

func TestLoad_MissingAndEmptyFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	c, err := Load(Options{File: filepath.Join(dir, "missing.json")})
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	empty := filepath.Join(dir, "empty.json")
	writeFile(t, empty, "  \n")
	c, err = Load(Options{File: empty})
	require.NoError(t, err)
	assert.Equal(t, diff.DefaultContextSize, c.Context)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{name: "bad json", file: `{"context": `, wantErr: "JSON File: "},
		{name: "not an object", file: `[1, 2]`, wantErr: "top-level JSON must be an object"},
		{name: "wrong type in file", file: `{"context": "lots"}`, wantErr: `context: cannot parse int from "lots"`},
		{name: "bool from object", file: `{"disable": {"x": 1}}`, wantErr: "disable: cannot coerce"},
		{name: "bad env", env: map[string]string{"UNIDIFF_MAX_COST": "many"}, wantErr: `ENV: max_cost: cannot parse int from "many"`},
		{name: "unknown algorithm", env: map[string]string{"UNIDIFF_ALGORITHM": "bogus"}, wantErr: `ENV: unknown diff algorithm "bogus"`},
		{name: "negative context", file: `{"context": -2}`, wantErr: "context: must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			opts := Options{NoSearch: true}
			if tt.file != "" {
				opts.File = filepath.Join(t.TempDir(), "conf.json")
				writeFile(t, opts.File, tt.file)
			}

			_, err := Load(opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_NearestFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), `{"algorithm": "dmp", "missing_newline_marker": true}`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	c, err := Load(Options{SearchFrom: nested})
	require.NoError(t, err)
	assert.Equal(t, "dmp", c.Algorithm)
	assert.True(t, c.MissingNewlineMarker)
	assert.Equal(t, filepath.Join(root, FileName), c.OriginOf(KeyAlgorithm).SourceIdentifier)

	// NoSearch ignores it.
	c, err = Load(Options{SearchFrom: nested, NoSearch: true})
	require.NoError(t, err)
	assert.Equal(t, "myers", c.Algorithm)
}

func TestConfig_Options(t *testing.T) {
	c := Default()
	c.Context = 0
	c.Algorithm = "patience"
	c.MissingNewlineMarker = true

	got := diff.Unified("a", "b", c.Context, c.Options()...)
	assert.Equal(t, "@@ -1,1 +1,1 @@\n-a\n\\ No newline at end of file\n+b\n\\ No newline at end of file\n", got)
}

func TestFindNearest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "x", "y")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, "", FindNearest("nope-"+FileName, nested))

	// Empty files are skipped in favor of a non-empty one further up.
	writeFile(t, filepath.Join(root, "cfg.json"), `{}`)
	writeFile(t, filepath.Join(root, "x", "cfg.json"), "")
	assert.Equal(t, filepath.Join(root, "cfg.json"), FindNearest("cfg.json", nested))

	// A file as the start point searches from its directory.
	file := filepath.Join(nested, "some.txt")
	writeFile(t, file, "hi")
	assert.Equal(t, filepath.Join(root, "cfg.json"), FindNearest("cfg.json", file))

	assert.Panics(t, func() { FindNearest(filepath.Join(root, "cfg.json"), nested) })
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, filepath.Clean(home), ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "a", "b.json"), ExpandPath("~/a/b.json"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "rel.json"), ExpandPath("rel.json"))

	// Only a bare "~" or "~" plus a separator means home.
	assert.Equal(t, filepath.Clean(home), ExpandPath("~/"))
	assert.Equal(t, filepath.Join(home, "c.json"), ExpandPath(`~\c.json`))
	assert.Equal(t, filepath.Join(wd, "~other", "d.json"), ExpandPath("~other/d.json"))
}
