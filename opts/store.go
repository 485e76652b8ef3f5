package opts

// positionalKey is the reserved Result Map key for tokens that are not
// recognised as options.
const positionalKey = ""

// results maps an option name to its values in the order they were seen.
type results map[string][]string

// store records one occurrence of option. value is only used when the option
// takes a value; hasValue reports whether one was available. The returned
// bool tells the matcher whether an externally supplied token was consumed.
func (r results) store(option *Option, value string, hasValue bool) (bool, error) {
	if _, seen := r[option.Name]; seen && !option.Repeatable {
		return false, newParseError(ErrorKindMultipleInstances, option.Name,
			"option %q given multiple times, but only allowed once", option.Name)
	}

	if !option.TakesValue {
		r[option.Name] = append(r[option.Name], "")
		return false, nil
	}

	if !hasValue {
		return false, newParseError(ErrorKindMissingOptionArgument, option.Name,
			"option %q is missing a required argument", option.Name)
	}
	r[option.Name] = append(r[option.Name], value)
	return true, nil
}

func (r results) positional(token string) {
	r[positionalKey] = append(r[positionalKey], token)
}

func (r results) clone() results {
	out := make(results, len(r))
	for name, values := range r {
		out[name] = append([]string(nil), values...)
	}
	return out
}

func (r results) clear() {
	for name := range r {
		delete(r, name)
	}
}
