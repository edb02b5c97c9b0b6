// File: lixenwraith/params/helper.go
package params

// isValidName checks that a parameter name is an ASCII letter followed by
// letters, digits or underscores.
func isValidName(s string) bool {
	if len(s) == 0 {
		return false
	}
	if !isLetter(rune(s[0])) {
		return false
	}
	for _, r := range s[1:] {
		if !(isLetter(r) || isDigit(r) || r == '_') {
			return false
		}
	}
	return true
}

// isFlag reports whether tok is a marker followed by a letter, e.g. "-MaxIter".
// Negative numbers such as "-1.5" are values, not flags.
func isFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == flagMarker && isLetter(rune(tok[1]))
}

// isHelp matches the conventional help tokens.
func isHelp(tok string) bool {
	switch tok {
	case "-h", "-help", "--help":
		return true
	}
	return false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
