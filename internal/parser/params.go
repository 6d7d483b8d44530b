package parser

import "log/slog"

const (
	DefaultMaxLineSize = 1024 * 1024

	initialBufferSize = 64 * 1024
)

var DefaultLocalPatterns = []string{"boisestate.edu", "132.178"}

type Params struct {
	// LocalPatterns are matched as plain substrings of the client address.
	LocalPatterns []string
	MaxLineSize   int
	Logger        *slog.Logger
}

func (p Params) withDefaults() Params {
	if len(p.LocalPatterns) == 0 {
		p.LocalPatterns = DefaultLocalPatterns
	}

	if p.MaxLineSize <= 0 {
		p.MaxLineSize = DefaultMaxLineSize
	}

	if p.Logger == nil {
		p.Logger = slog.Default()
	}

	return p
}
