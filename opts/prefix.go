package opts

import "strings"

// cutFlag strips the first flag in flags that prefixes token. Flags are tried
// in order and compared exactly; case folding never applies to flag symbols.
func cutFlag(flags []string, token string) (string, bool) {
	for _, flag := range flags {
		if rest, ok := strings.CutPrefix(token, flag); ok {
			return rest, true
		}
	}
	return "", false
}

// cutName strips name from the front of s, folding ASCII case when fold is
// set. It reports false if s does not begin with name.
func cutName(s, name string, fold bool) (string, bool) {
	if len(s) < len(name) {
		return "", false
	}
	if !fold {
		return strings.CutPrefix(s, name)
	}
	for i := 0; i < len(name); i++ {
		if upperASCII(s[i]) != upperASCII(name[i]) {
			return "", false
		}
	}
	return s[len(name):], true
}

// sameRune compares two short option characters.
func sameRune(a, b rune, fold bool) bool {
	if a == b {
		return true
	}
	return fold && a < 0x80 && b < 0x80 && upperASCII(byte(a)) == upperASCII(byte(b))
}

// foldKey returns the key used for duplicate detection.
func foldKey(s string, fold bool) string {
	if !fold {
		return s
	}
	b := []byte(s)
	for i := range b {
		b[i] = upperASCII(b[i])
	}
	return string(b)
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
