package opts

import (
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-opts/internal/fuzzy"
)

// suggestionDistance bounds the edit distance for unknown long option hints.
const suggestionDistance = 2

// matcher walks an argument vector left to right and files every token into
// the results. It holds no cursor state between tokens.
type matcher struct {
	options Options
	config  *Config
	results results
}

// run classifies args[1:]; args[0] is the command name and is skipped. A
// token consumed as the value of the preceding option is not visited.
func (m *matcher) run(args []string) error {
	for i := 1; i < len(args); i++ {
		next, hasNext := "", false
		if i+1 < len(args) {
			next, hasNext = args[i+1], true
		}

		consumed, err := m.argument(args[i], next, hasNext)
		if err != nil {
			return err
		}
		if consumed {
			i++
		}
	}
	return nil
}

// argument handles one token and reports whether next was consumed.
func (m *matcher) argument(token, next string, hasNext bool) (bool, error) {
	if token != "" {
		if handled, consumed, err := m.long(token, next, hasNext); handled || err != nil {
			return consumed, err
		}
		if handled, consumed, err := m.short(token, next, hasNext); handled || err != nil {
			return consumed, err
		}
	}
	m.results.positional(token)
	return false, nil
}

// long handles a token introduced by one of the long flags.
func (m *matcher) long(token, next string, hasNext bool) (handled, consumed bool, err error) {
	rest, ok := cutFlag(m.config.LongFlags, token)
	if !ok {
		return false, false, nil
	}
	// A bare long flag such as "--" is an ordinary string.
	if rest == "" {
		m.results.positional(token)
		return true, false, nil
	}

	match, found := matchLong(m.options, rest, m.config.Separator, m.config.CaseInsensitive)
	if !found {
		return true, false, m.unknownLong(token, rest)
	}

	if !match.inline {
		consumed, err = m.results.store(match.option, next, hasNext)
		return true, consumed, err
	}

	if !match.option.TakesValue {
		perr := newParseError(ErrorKindMissingOptionArgument, match.option.Name,
			"option %q should not have a parameter: %s", match.option.Name, match.value)
		perr.Value = match.value
		return true, false, perr
	}
	if match.value == "" {
		return true, false, newParseError(ErrorKindMissingOptionArgument, match.option.Name,
			"option %q appears to have been given an empty parameter: %s", match.option.Name, token)
	}
	_, err = m.results.store(match.option, match.value, true)
	return true, false, err
}

// short handles a token introduced by one of the short flags. Every
// character is an option; only the last one may take the next token.
func (m *matcher) short(token, next string, hasNext bool) (handled, consumed bool, err error) {
	rest, ok := cutFlag(m.config.ShortFlags, token)
	if !ok {
		return false, false, nil
	}
	if rest == "" {
		m.results.positional(token)
		return true, false, nil
	}

	for len(rest) > 0 {
		r, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]

		option := matchShort(m.options, r, m.config.CaseInsensitive)
		if option == nil {
			perr := newParseError(ErrorKindInvalidShortOption, string(r),
				"invalid option specified: %s", token)
			perr.Value = token
			return true, false, perr
		}

		if rest == "" {
			consumed, err = m.results.store(option, next, hasNext)
		} else {
			_, err = m.results.store(option, "", false)
		}
		if err != nil {
			return true, false, err
		}
	}
	return true, consumed, nil
}

func (m *matcher) unknownLong(token, rest string) error {
	name := rest
	if m.config.Separator != "" {
		name, _, _ = strings.Cut(rest, m.config.Separator)
	}
	err := newParseError(ErrorKindInvalidLongOption, token, "invalid option specified: %s", token)
	err.Value = token
	err.Suggestion = fuzzy.Closest(name, m.options.longForms(), suggestionDistance)
	return err
}

// longMatch is the outcome of matching the text after a long flag.
type longMatch struct {
	option *Option
	value  string
	inline bool // value came after the separator within the token
}

// matchLong finds the first declared option whose long form either equals
// rest or is followed in rest by the separator. A long form that is merely a
// prefix of rest ("color" against "color-name") does not match.
func matchLong(options Options, rest, separator string, fold bool) (longMatch, bool) {
	for i := range options {
		option := &options[i]
		if option.Long == "" {
			continue
		}
		after, ok := cutName(rest, option.Long, fold)
		if !ok {
			continue
		}
		if after == "" {
			return longMatch{option: option}, true
		}
		if value, ok := strings.CutPrefix(after, separator); ok {
			return longMatch{option: option, value: value, inline: true}, true
		}
	}
	return longMatch{}, false
}

// matchShort finds the option whose short form is r.
func matchShort(options Options, r rune, fold bool) *Option {
	for i := range options {
		option := &options[i]
		if option.Short == "" {
			continue
		}
		short, _ := utf8.DecodeRuneInString(option.Short)
		if sameRune(short, r, fold) {
			return option
		}
	}
	return nil
}
