package webstats_test

import (
	"bytes"
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/es-debug/webstats/internal/application/webstats"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	remoteLine = `127.0.0.1 - - [01/Jan/2020:00:00:00 -0700] "GET /x HTTP/1.1" 200 1048576`
	localLine  = `host.boisestate.edu - - [02/Jan/2020:00:00:00 -0700] "GET /y HTTP/1.1" 404 2097152`

	header = "      TYPE            gets       failed gets   MB transferred\n"
)

type deniedFs struct {
	afero.Fs
}

func (deniedFs) Open(name string) (afero.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func newEnv(t *testing.T, files map[string]string) (webstats.Env, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	memFs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(memFs, name, []byte(content), 0o600), "file must be created")
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	return webstats.Env{Fs: memFs, Stdout: stdout, Stderr: stderr}, stdout, stderr
}

func TestRun(t *testing.T) {
	env, stdout, stderr := newEnv(t, map[string]string{
		"/logs/a": remoteLine + "\n" + localLine + "\n",
		"/logs/b": localLine + "\n",
	})

	code := webstats.Run(context.Background(), []string{"/logs/a", "/logs/b"}, env)
	require.Equal(t, 0, code, stderr.String())

	output := stdout.String()
	assert.Empty(t, stderr.String())
	assert.Contains(t, output, "Starting date: 01/Jan/2020:00:00:00\n")
	assert.Contains(t, output, "Ending date: 02/Jan/2020:00:00:00\n")
	assert.Equal(t, 2, strings.Count(output, "Starting date: "))
	assert.True(t, strings.HasSuffix(output, header+
		"     local                2                2                4\n"+
		"     total                3                2                5\n"), output)
}

func TestRunErrors(t *testing.T) {
	tt := []struct {
		name   string
		args   []string
		stderr string
	}{
		{
			name:   "no files",
			args:   []string{},
			stderr: "Usage: webstats <access_log_file> {<access_log_file>}\n",
		},
		{
			name:   "only flags",
			args:   []string{"--format", "json"},
			stderr: "Usage: webstats <access_log_file> {<access_log_file>}\n",
		},
		{
			name:   "missing file next to a valid one",
			args:   []string{"/logs/a", "/logs/missing"},
			stderr: "Cannot read from file /logs/missing\n",
		},
		{
			name:   "unknown format",
			args:   []string{"--format", "xml", "/logs/a"},
			stderr: "Error: validate config: format: unknown output format xml\n",
		},
		{
			name:   "empty local pattern",
			args:   []string{"--local", "", "/logs/a"},
			stderr: "Error: validate config: local_patterns[0]: pattern is empty\n",
		},
		{
			name:   "missing config file",
			args:   []string{"--config", "/etc/missing.yaml", "/logs/a"},
			stderr: "Error: read config file: open /etc/missing.yaml: file does not exist\n",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			env, stdout, stderr := newEnv(t, map[string]string{"/logs/a": remoteLine + "\n"})

			code := webstats.Run(context.Background(), tc.args, env)

			assert.Equal(t, 1, code)
			assert.Equal(t, tc.stderr, stderr.String())
			assert.NotContains(t, stdout.String(), "TYPE")
		})
	}
}

func TestRunUnreadableFile(t *testing.T) {
	env, stdout, stderr := newEnv(t, map[string]string{"/logs/a": remoteLine + "\n"})
	env.Fs = deniedFs{env.Fs}

	code := webstats.Run(context.Background(), []string{"/logs/a"}, env)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Cannot open file /logs/a\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRunLocalFlag(t *testing.T) {
	env, stdout, _ := newEnv(t, map[string]string{"/logs/a": remoteLine + "\n" + localLine + "\n"})

	code := webstats.Run(context.Background(), []string{"-l", "127.0.0.1", "/logs/a"}, env)
	require.Equal(t, 0, code)

	assert.Contains(t, stdout.String(), "     local                1                0                1\n")
}

func TestRunConfigFile(t *testing.T) {
	config := `
local_patterns:
  - "127.0.0"
format: json
`

	t.Run("config values", func(t *testing.T) {
		env, stdout, stderr := newEnv(t, map[string]string{
			"/logs/a":            remoteLine + "\n",
			"/etc/webstats.yaml": config,
		})

		code := webstats.Run(context.Background(), []string{"-c", "/etc/webstats.yaml", "/logs/a"}, env)
		require.Equal(t, 0, code, stderr.String())

		assert.Contains(t, stdout.String(), `"type": "local"`)
		assert.Contains(t, stdout.String(), `"gets": 1`)
	})

	t.Run("flags override config", func(t *testing.T) {
		env, stdout, stderr := newEnv(t, map[string]string{
			"/logs/a":            remoteLine + "\n",
			"/etc/webstats.yaml": config,
		})

		code := webstats.Run(context.Background(),
			[]string{"-c", "/etc/webstats.yaml", "--format", "text", "/logs/a"}, env)
		require.Equal(t, 0, code, stderr.String())

		assert.Contains(t, stdout.String(), header)
		assert.Contains(t, stdout.String(), "     local                1                0                1\n")
	})
}

func TestRunLogLevel(t *testing.T) {
	env, _, stderr := newEnv(t, map[string]string{"/logs/a": remoteLine + "\n"})

	code := webstats.Run(context.Background(), []string{"--log-level", "info", "/logs/a"}, env)
	require.Equal(t, 0, code)

	assert.Contains(t, stderr.String(), "run_id=")
	assert.Contains(t, stderr.String(), "path=/logs/a")
}

func TestRunVersion(t *testing.T) {
	env, stdout, _ := newEnv(t, nil)

	code := webstats.Run(context.Background(), []string{"--version"}, env)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), webstats.Version)
}
