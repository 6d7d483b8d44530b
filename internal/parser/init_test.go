package parser_test

import (
	"io/fs"
	"strings"
	"sync"
	"testing"

	"github.com/es-debug/webstats/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	remoteLine = `127.0.0.1 - - [01/Jan/2020:00:00:00 -0700] "GET /x HTTP/1.1" 200 1024`
	localLine  = `host.boisestate.edu - - [01/Jan/2020:00:00:00 -0700] "GET /x HTTP/1.1" 404 512`
	campusLine = `132.178.4.20 - - [02/Jan/2020:10:15:00 -0700] "GET /index.html HTTP/1.0" 200 2048`
	deniedLine = `132.178.1.1 - - [03/Jan/2020:23:59:59 -0700] "GET /secret HTTP/1.1" 403 -`
)

func createTestFiles(t *testing.T, content map[string]string) afero.Fs {
	t.Helper()

	memFs := afero.NewMemMapFs()
	for name, c := range content {
		err := afero.WriteFile(memFs, name, []byte(c), 0o600)
		require.NoError(t, err, "file must be created")
	}

	return memFs
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

type deniedFs struct {
	afero.Fs
}

func (deniedFs) Open(name string) (afero.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

type spyMerger struct {
	mu       sync.Mutex
	merged   []domain.Counters
	combined domain.Counters
}

func (s *spyMerger) Merge(counters domain.Counters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.merged = append(s.merged, counters)
	s.combined.Add(counters)
}
