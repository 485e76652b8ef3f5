package opts

import (
	shellquote "github.com/kballard/go-shellquote"
)

// SplitLine splits a command line into words using POSIX shell quoting
// rules. Quotes and backslash escapes are removed; no expansion is done.
func SplitLine(line string) ([]string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		perr := newParseError(ErrorKindMalformedCommandLine, "",
			"cannot split command line: %v", err)
		perr.Value = line
		return nil, perr
	}
	return words, nil
}

// ParseLine splits line with SplitLine and parses the words. The first word
// is the command name, as with Parse.
func (p *Parser) ParseLine(line string) error {
	words, err := SplitLine(line)
	if err != nil {
		p.Reset()
		return err
	}
	return p.Parse(words)
}
