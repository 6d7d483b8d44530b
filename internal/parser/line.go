package parser

import "strings"

const delimiters = " []\""

// tokenizer splits a log line on any run of delimiters. Empty tokens are
// never produced, so "[01/Jan/2020]" and " [01/Jan/2020] " yield the same token.
type tokenizer struct {
	text string
	pos  int
}

func newTokenizer(text string) tokenizer {
	return tokenizer{
		text: text,
	}
}

func isDelimiter(b byte) bool {
	return strings.IndexByte(delimiters, b) != -1
}

func (t *tokenizer) next() (string, bool) {
	for t.pos < len(t.text) && isDelimiter(t.text[t.pos]) {
		t.pos++
	}

	if t.pos == len(t.text) {
		return "", false
	}

	start := t.pos
	for t.pos < len(t.text) && !isDelimiter(t.text[t.pos]) {
		t.pos++
	}

	return t.text[start:t.pos], true
}
