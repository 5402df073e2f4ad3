package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var seedSources = []string{
	"",
	"#include <stdio.h>\n",
	"#include \"local.h\"\nint x;",
	"??=define X ??/\n  1",
	"a <<= b >>= c ... ## #",
	"char c = 'a'; char *s = \"str\";",
	"'", "\"", "#include <", "#include \"",
	"'ab'", "'\n'", "\"a\nb\"",
	"foo\\\nbar\\\n",
	"é = '語'; 0x1f",
	"\x00\xff\xfe",
}

func addSeeds(f *testing.F) {
	for _, s := range seedSources {
		f.Add([]byte(s))
	}
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return input[:maxFuzzInput]
	}
	return input
}
