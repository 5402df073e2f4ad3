// Package normalize implements the text transforms that run before
// tokenization: trigraph replacement, then line splicing.
//
// Both passes are blind to lexical structure. A trigraph inside a string
// literal or a comment is replaced like any other.
package normalize

import "strings"

// trigraphs maps every ??x sequence to its single-character replacement.
// No replacement produces a '?', and no replacement is a valid third
// character of a trigraph, so a single left-to-right pass is equivalent to
// applying each substitution in turn.
var trigraphs = strings.NewReplacer(
	"??=", "#",
	"??(", "[",
	"??/", `\`,
	"??)", "]",
	"??'", "^",
	"??<", "{",
	"??!", "|",
	"??>", "}",
	"??-", "~",
)

// Trigraphs replaces the nine trigraph sequences across the whole buffer.
func Trigraphs(src string) string {
	return trigraphs.Replace(src)
}

// SpliceLines deletes every backslash immediately followed by a newline,
// joining the physical lines into one logical line.
func SpliceLines(src string) string {
	return strings.ReplaceAll(src, "\\\n", "")
}

// Apply runs Trigraphs then SpliceLines. A "??/" followed by a newline is
// therefore spliced as well.
func Apply(src string) string {
	return SpliceLines(Trigraphs(src))
}
