//nolint:testpackage // using package name 'opts' to access unexported fields for testing
package opts

import (
	"errors"
	"reflect"
	"testing"
)

func TestMatch_Tokens(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected map[string][]string
	}{
		{
			name:     "cluster with trailing value",
			args:     []string{"ls", "-ap", "foo"},
			expected: map[string][]string{"all": {""}, "pattern": {"foo"}},
		},
		{
			name:     "separate short options",
			args:     []string{"ls", "-a", "-p", "foo"},
			expected: map[string][]string{"all": {""}, "pattern": {"foo"}},
		},
		{
			name:     "long inline value",
			args:     []string{"ls", "--color=red", "file"},
			expected: map[string][]string{"color": {"red"}, "": {"file"}},
		},
		{
			name:     "inline value keeps later separators",
			args:     []string{"ls", "--pattern=a=b"},
			expected: map[string][]string{"pattern": {"a=b"}},
		},
		{
			name:     "value that looks like an option",
			args:     []string{"ls", "-s", "-3.14", "-p", "--all"},
			expected: map[string][]string{"size": {"-3.14"}, "pattern": {"--all"}},
		},
		{
			name:     "bare flags and empty token are positional",
			args:     []string{"ls", "-", "--", "", "x"},
			expected: map[string][]string{"": {"-", "--", "", "x"}},
		},
		{
			name:     "repeatable long and short",
			args:     []string{"ls", "--pattern", "a", "-p", "b", "--pattern=c"},
			expected: map[string][]string{"pattern": {"a", "b", "c"}},
		},
		{
			name:     "long form only by full name",
			args:     []string{"ls", "--min-size", "10"},
			expected: map[string][]string{"size": {"10"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParser(t, lsOptions())
			if err := p.Parse(tt.args); err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.args, err)
			}
			if got := p.Results(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse(%q) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestMatch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		kind   ErrorKind
		option string
		value  string
	}{
		{"unknown long option", []string{"ls", "--colr"}, ErrorKindInvalidLongOption, "--colr", "--colr"},
		{"long form is not a prefix match", []string{"ls", "--color-name", "x"}, ErrorKindInvalidLongOption, "--color-name", "--color-name"},
		{"unknown short option", []string{"ls", "-x"}, ErrorKindInvalidShortOption, "x", "-x"},
		{"unknown short inside cluster", []string{"ls", "-az"}, ErrorKindInvalidShortOption, "z", "-az"},
		{"inline value on a flag", []string{"ls", "--all=x"}, ErrorKindMissingOptionArgument, "all", "x"},
		{"empty inline value", []string{"ls", "--color="}, ErrorKindMissingOptionArgument, "color", ""},
		{"missing trailing value", []string{"ls", "-a", "--color"}, ErrorKindMissingOptionArgument, "color", ""},
		{"value option inside cluster", []string{"ls", "-pa", "foo"}, ErrorKindMissingOptionArgument, "pattern", ""},
		{"repeated short in cluster", []string{"ls", "-aa"}, ErrorKindMultipleInstances, "all", ""},
		{"repeated long with inline values", []string{"ls", "--color=red", "--color=blue"}, ErrorKindMultipleInstances, "color", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParser(t, lsOptions())
			err := p.Parse(tt.args)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %v", err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("Expected %s, got %s (%v)", tt.kind, perr.Kind, err)
			}
			if perr.Option != tt.option {
				t.Errorf("Expected option %q, got %q", tt.option, perr.Option)
			}
			if perr.Value != tt.value {
				t.Errorf("Expected value %q, got %q", tt.value, perr.Value)
			}
			if len(p.Results()) != 0 {
				t.Errorf("failed parse left results behind: %v", p.Results())
			}
		})
	}
}

func TestMatch_Suggestion(t *testing.T) {
	p := mustParser(t, lsOptions())

	for _, arg := range []string{"--colr", "--colr=red", "--patern"} {
		err := p.Parse([]string{"ls", arg})
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("%s: expected *ParseError, got %v", arg, err)
		}
		if perr.Suggestion == "" {
			t.Errorf("%s: expected a suggestion", arg)
		}
	}

	err := p.Parse([]string{"ls", "--zzzzzz"})
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Suggestion != "" {
		t.Errorf("unrelated names must not get a suggestion, got %+v", perr)
	}

	// Suggestions never change what matches.
	if err := p.Parse([]string{"ls", "--colr", "red"}); !IsKind(err, ErrorKindInvalidLongOption) {
		t.Errorf("a near miss must still fail, got %v", err)
	}
}

func TestMatch_FirstDeclaredLongWins(t *testing.T) {
	timeOpt := Option{Name: "time", Long: "time", TakesValue: true}
	styleOpt := Option{Name: "time-style", Long: "time-style", TakesValue: true}

	// With "-" as separator, "--time-style" reads as "time" with value "style".
	p := mustParser(t, Options{timeOpt, styleOpt}, WithSeparator("-"))
	if err := p.Parse([]string{"ls", "--time-style"}); err != nil {
		t.Fatal(err)
	}
	if v, _ := p.String("time"); v != "style" || p.Given("time-style") {
		t.Errorf("expected time=style, got %v", p.Results())
	}

	p = mustParser(t, Options{styleOpt, timeOpt}, WithSeparator("-"))
	if err := p.Parse([]string{"ls", "--time-style", "iso"}); err != nil {
		t.Fatal(err)
	}
	if v, _ := p.String("time-style"); v != "iso" || p.Given("time") {
		t.Errorf("expected time-style=iso, got %v", p.Results())
	}

	// The default separator keeps the two apart regardless of order.
	p = mustParser(t, Options{timeOpt, styleOpt})
	if err := p.Parse([]string{"ls", "--time=atime", "--time-style=iso"}); err != nil {
		t.Fatal(err)
	}
	want := map[string][]string{"time": {"atime"}, "time-style": {"iso"}}
	if got := p.Results(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	p := mustParser(t, lsOptions())
	if err := p.Parse([]string{"ls", "-A"}); !IsKind(err, ErrorKindInvalidShortOption) {
		t.Fatalf("matching is case sensitive by default, got %v", err)
	}
	if err := p.Parse([]string{"ls", "--COLOR", "red"}); !IsKind(err, ErrorKindInvalidLongOption) {
		t.Fatalf("matching is case sensitive by default, got %v", err)
	}

	p = mustParser(t, lsOptions(), WithCaseInsensitive(true))
	if err := p.Parse([]string{"ls", "-A", "--COLOR=Red", "--Min-Size", "5", "-P", "x"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := map[string][]string{"all": {""}, "color": {"Red"}, "size": {"5"}, "pattern": {"x"}}
	if got := p.Results(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatch_AlternateFlags(t *testing.T) {
	p := mustParser(t, lsOptions(),
		WithShortFlags("-", "/"),
		WithLongFlags("--"),
		WithSeparator(":"),
	)
	if err := p.Parse([]string{"ls", "/a", "--color:red", "/p", "x", "-s", "3", "/"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := map[string][]string{
		"all": {""}, "color": {"red"}, "pattern": {"x"}, "size": {"3"}, "": {"/"},
	}
	if got := p.Results(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// "=" is no longer special.
	if err := p.Parse([]string{"ls", "--color=red"}); !IsKind(err, ErrorKindInvalidLongOption) {
		t.Errorf("expected InvalidLongOption, got %v", err)
	}
}

func TestMatch_SlashLongFlag(t *testing.T) {
	p := mustParser(t, lsOptions(), WithShortFlags("-"), WithLongFlags("/"), WithSeparator(":"))
	if err := p.Parse([]string{"dir", "/color:red", "/all", "-p", "x"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := map[string][]string{"all": {""}, "color": {"red"}, "pattern": {"x"}}
	if got := p.Results(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatch_EmptySeparator(t *testing.T) {
	p := mustParser(t, lsOptions(), WithSeparator(""))
	if err := p.Parse([]string{"ls", "--colorred", "--pattern", "x", "--all"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := map[string][]string{"all": {""}, "color": {"red"}, "pattern": {"x"}}
	if got := p.Results(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := p.Parse([]string{"ls", "--allx"}); !IsKind(err, ErrorKindMissingOptionArgument) {
		t.Errorf("expected MissingOptionArgument for text after a flag, got %v", err)
	}
}

func TestMatch_ShortOnlyAndLongOnly(t *testing.T) {
	options := Options{
		{Name: "verbose", Short: "v", Repeatable: true},
		{Name: "exclude", Long: "exclude", Repeatable: true, TakesValue: true},
		{Name: "micro", Short: "µ", TakesValue: true},
	}
	p := mustParser(t, options)
	if err := p.Parse([]string{"tar", "-vvv", "--exclude", "a", "--exclude=b", "-vµ", "3"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Count("verbose") != 4 {
		t.Errorf("expected verbose count 4, got %d", p.Count("verbose"))
	}
	if got, _ := p.Strings("exclude"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected exclude [a b], got %v", got)
	}
	if got, _ := p.String("micro"); got != "3" {
		t.Errorf("expected micro=3, got %q", got)
	}

	if err := p.Parse([]string{"tar", "--verbose"}); !IsKind(err, ErrorKindInvalidLongOption) {
		t.Errorf("an option without a long form has no --name, got %v", err)
	}
}
