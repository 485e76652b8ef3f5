package opts

import "unicode/utf8"

// validateFlags rejects a flag symbol that appears in both the short and the
// long flag sets.
func validateFlags(config *Config) error {
	for _, long := range config.LongFlags {
		for _, short := range config.ShortFlags {
			if long == short {
				return newSpecError(ErrorKindFlagConflict, long,
					"conflicting option flag symbols: %q is both a short and a long flag", long)
			}
		}
	}
	return nil
}

// validateOptions checks the specification for structural conflicts. Options
// are checked in declaration order and the first violation is returned.
func validateOptions(options Options, fold bool) error {
	names := make(map[string]struct{}, len(options))
	shorts := make(map[string]struct{}, len(options))
	longs := make(map[string]struct{}, len(options))

	for _, option := range options {
		if option.Name == "" {
			return newSpecError(ErrorKindEmptyIdentifierName, "",
				"empty option identifier found")
		}
		if _, seen := names[option.Name]; seen {
			return newSpecError(ErrorKindDuplicateIdentifier, option.Name,
				"duplicate option identifier found: %s", option.Name)
		}
		names[option.Name] = struct{}{}

		if option.Short != "" {
			key := foldKey(option.Short, fold)
			if _, seen := shorts[key]; seen {
				return newSpecError(ErrorKindDuplicateShortOption, option.Short,
					"duplicate short option observed: %s", option.Short)
			}
			if utf8.RuneCountInString(option.Short) > 1 {
				return newSpecError(ErrorKindInvalidShortOption, option.Short,
					"a short option contains more than one character: %s", option.Short)
			}
			shorts[key] = struct{}{}
		}

		// Long forms are compared exactly, even when matching folds case.
		if option.Long != "" {
			if _, seen := longs[option.Long]; seen {
				return newSpecError(ErrorKindDuplicateLongOption, option.Long,
					"duplicate long option observed: %s", option.Long)
			}
			longs[option.Long] = struct{}{}
		}
	}
	return nil
}
