package opts

// Option declares one program option.
//
// Either Short or Long (or both) should be set. Short, when present, is a
// single character. An option that does not take a value records an empty
// string per occurrence, so its count equals the number of times it was given.
type Option struct {
	Name       string // lookup key used by the query methods
	Short      string // e.g. "v" for -v, or "" for none
	Long       string // e.g. "verbose" for --verbose, or "" for none
	Repeatable bool   // may be given more than once
	TakesValue bool   // consumes a value, inline or from the next token
}

// Options is an ordered option specification. Order matters when two long
// forms could both match a token: the first declared wins.
type Options []Option

// longForms collects every non-empty long form, in declaration order.
func (o Options) longForms() []string {
	forms := make([]string, 0, len(o))
	for _, option := range o {
		if option.Long != "" {
			forms = append(forms, option.Long)
		}
	}
	return forms
}

// Config holds the matching configuration applied to a specification.
type Config struct {
	ShortFlags      []string // prefixes introducing a short-option cluster
	LongFlags       []string // prefixes introducing a long option
	Separator       string   // splits a long option from an inline value
	CaseInsensitive bool     // fold ASCII case when matching option names
}

// ConfigOption mutates a Config before it is validated.
type ConfigOption func(config *Config)

// DefaultConfig returns the conventional POSIX/GNU style configuration:
// "-" for short options, "--" for long options and "=" as separator.
func DefaultConfig() *Config {
	return &Config{
		ShortFlags: []string{"-"},
		LongFlags:  []string{"--"},
		Separator:  "=",
	}
}

// WithShortFlags replaces the short option prefixes, e.g. "-" and "/".
func WithShortFlags(flags ...string) ConfigOption {
	return func(config *Config) {
		config.ShortFlags = append([]string(nil), flags...)
	}
}

// WithLongFlags replaces the long option prefixes.
func WithLongFlags(flags ...string) ConfigOption {
	return func(config *Config) {
		config.LongFlags = append([]string(nil), flags...)
	}
}

// WithSeparator sets the string separating a long option from its value.
func WithSeparator(separator string) ConfigOption {
	return func(config *Config) {
		config.Separator = separator
	}
}

// WithCaseInsensitive enables ASCII case folding for option names.
func WithCaseInsensitive(enabled bool) ConfigOption {
	return func(config *Config) {
		config.CaseInsensitive = enabled
	}
}

func (c *Config) clone() *Config {
	return &Config{
		ShortFlags:      append([]string(nil), c.ShortFlags...),
		LongFlags:       append([]string(nil), c.LongFlags...),
		Separator:       c.Separator,
		CaseInsensitive: c.CaseInsensitive,
	}
}
