// Package opts parses command-line style argument vectors against a declared
// set of options.
//
// A Parser is configured with an ordered Options specification and a matching
// Config (flag prefixes, value separator, case sensitivity), then fed an
// argument vector whose first element is the command name. Every recognised
// option occurrence is recorded under the option's Name, in the order seen.
// Tokens that are not options, including a bare "-" or "--", are recorded
// under the empty name and returned by Args.
//
//	parser, err := opts.New(opts.Options{
//		{Name: "all", Short: "a", Long: "all"},
//		{Name: "pattern", Short: "p", Long: "pattern", Repeatable: true, TakesValue: true},
//	})
//	if err != nil {
//		return err // programming error in the declared options
//	}
//	if err := parser.Parse(os.Args); err != nil {
//		return err // user error, see KindOf
//	}
//	patterns, _ := parser.Strings("pattern")
//
// A Parser is not safe for concurrent use.
package opts

// Parser owns an option specification, its matching configuration and the
// results of the most recent parse. The zero value is ready to use with no
// options and the default configuration.
type Parser struct {
	options Options
	config  *Config
	results results
}

// New returns a Parser configured with options. It fails with a *SpecError
// when the options or flag sets conflict.
func New(options Options, configure ...ConfigOption) (*Parser, error) {
	p := &Parser{}
	if err := p.Configure(options, configure...); err != nil {
		return nil, err
	}
	return p, nil
}

// Configure validates options and the configuration built from DefaultConfig
// and configure, then replaces the Parser's specification and clears any
// previous results. On error the Parser is left unchanged.
//
// With WithCaseInsensitive, duplicate short forms are detected ignoring ASCII
// case; long forms are always compared exactly, and when two of them differ
// only in case the first declared one matches.
func (p *Parser) Configure(options Options, configure ...ConfigOption) error {
	config := DefaultConfig()
	for _, option := range configure {
		option(config)
	}

	if err := validateFlags(config); err != nil {
		return err
	}
	if err := validateOptions(options, config.CaseInsensitive); err != nil {
		return err
	}

	p.options = append(Options(nil), options...)
	p.config = config
	p.Reset()
	return nil
}

// Config returns a copy of the active matching configuration.
func (p *Parser) Config() Config {
	return *p.configuration().clone()
}

// Options returns a copy of the active specification.
func (p *Parser) Options() Options {
	return append(Options(nil), p.options...)
}

// Parse classifies args, skipping args[0] (the command name). Previous
// results are discarded first; if parsing fails the results stay empty.
func (p *Parser) Parse(args []string) error {
	p.Reset()

	m := &matcher{
		options: p.options,
		config:  p.configuration(),
		results: p.results,
	}
	if err := m.run(args); err != nil {
		p.Reset()
		return err
	}
	return nil
}

// ParseArgv is the argc/argv form of Parse. Only the first argc elements of
// argv are considered; argc < 1 parses nothing.
func (p *Parser) ParseArgv(argc int, argv []string) error {
	if argc < 1 {
		p.Reset()
		return nil
	}
	return p.Parse(argv[:min(argc, len(argv))])
}

// ParseBytes parses a borrowed byte representation of the arguments. Every
// token is copied, so the caller may reuse args once ParseBytes returns.
func (p *Parser) ParseBytes(args [][]byte) error {
	tokens := make([]string, len(args))
	for i, arg := range args {
		tokens[i] = string(arg)
	}
	return p.Parse(tokens)
}

// Reset discards the results of the last parse.
func (p *Parser) Reset() {
	if p.results == nil {
		p.results = make(results)
		return
	}
	p.results.clear()
}

// Clone returns an independent copy of the Parser, including its results.
func (p *Parser) Clone() *Parser {
	c := &Parser{
		options: append(Options(nil), p.options...),
		config:  p.configuration().clone(),
	}
	if p.results != nil {
		c.results = p.results.clone()
	}
	return c
}

// Given reports whether the named option was given. The empty name reports
// whether any positional value was given.
func (p *Parser) Given(name string) bool {
	_, ok := p.results[name]
	return ok
}

// Count returns how many times the named option was given, or 0.
func (p *Parser) Count(name string) int {
	return len(p.results[name])
}

// String returns the first value given for the named option. It fails with
// ErrorKindOptionNotGiven when the option is absent.
func (p *Parser) String(name string) (string, error) {
	values, err := p.find(name)
	if err != nil {
		return "", err
	}
	return values[0], nil
}

// Strings returns every value given for the named option, in order.
func (p *Parser) Strings(name string) ([]string, error) {
	values, err := p.find(name)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), values...), nil
}

// Args returns the positional values; it is nil when there were none.
func (p *Parser) Args() []string {
	values := p.results[positionalKey]
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}

// Results returns a copy of the whole result map. Positional values are
// under the empty key.
func (p *Parser) Results() map[string][]string {
	if p.results == nil {
		return map[string][]string{}
	}
	return p.results.clone()
}

func (p *Parser) find(name string) ([]string, error) {
	values, ok := p.results[name]
	if !ok || len(values) == 0 {
		return nil, newParseError(ErrorKindOptionNotGiven, name,
			"the option (%q) was not given", name)
	}
	return values, nil
}

func (p *Parser) configuration() *Config {
	if p.config == nil {
		p.config = DefaultConfig()
	}
	return p.config
}
