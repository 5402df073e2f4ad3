package lexer

import "unicode"

// ===== Классификаторы =====

func isNewline(r rune) bool { return r == '\n' }

// isBlank: whitespace other than newline; newlines are tokens.
func isBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Identifiers are letters and underscores only; digits start a new Number.
func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
