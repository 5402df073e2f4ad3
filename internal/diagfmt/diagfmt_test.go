package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cfront/internal/diag"
	"cfront/internal/lexer"
	"cfront/internal/token"
)

func scanFailure(t *testing.T, path, src string) *diag.Diagnostic {
	t.Helper()
	_, err := lexer.Tokenize(src, lexer.Options{Path: path})
	require.Error(t, err)
	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	return d
}

func TestPrettyWithoutColorMatchesRender(t *testing.T) {
	first := scanFailure(t, "a.c", "int x;\nchar c = 'ab';\n")
	second := scanFailure(t, "b.c", "\"open")

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, []*diag.Diagnostic{first, second}, PrettyOpts{}))

	assert.Equal(t, first.String()+"\n"+second.String(), buf.String())
}

func TestPrettyColorKeepsText(t *testing.T) {
	d := scanFailure(t, "a.c", "'x")

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, []*diag.Diagnostic{d}, PrettyOpts{Color: true}))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "E0001")
	assert.Contains(t, out, "character constant starts here")
}

func TestPrettyShowPath(t *testing.T) {
	d := scanFailure(t, "/src/dir/a.c", "\n\"x")

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, []*diag.Diagnostic{d}, PrettyOpts{ShowPath: true, PathMode: PathModeBasename}))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, " --> a.c:2:1", lines[1])

	// кроме строки-локатора — тот же текст, что и Render
	want := strings.Replace(d.String(), "\n", "\n --> a.c:2:1\n", 1)
	assert.Equal(t, want, buf.String())
}

func TestJSONDiagnostics(t *testing.T) {
	d := scanFailure(t, "inc.c", "#include <stdio.h")

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, []*diag.Diagnostic{d}, JSONOpts{}))

	var out DiagnosticsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, 1, out.Count)
	require.Len(t, out.Diagnostics, 1)

	got := out.Diagnostics[0]
	assert.Equal(t, "E0003", got.Code)
	assert.Equal(t, "UnterminatedHeaderName", got.Kind)
	assert.Equal(t, "Failed to find end of header name", got.Description)
	assert.Equal(t, "inc.c", got.Path)
	assert.Equal(t, uint32(1), got.Line)
	assert.Equal(t, uint32(10), got.Column)
	assert.Equal(t, "#include <stdio.h", got.Source)
	require.NotNil(t, got.Highlight)
	assert.Equal(t, uint32(9), got.Highlight.Start)
	assert.Equal(t, uint32(10), got.Highlight.End)
	assert.Equal(t, "header name starts here", got.Highlight.Message)
}

func TestJSONMaxKeepsCount(t *testing.T) {
	d := scanFailure(t, "", "'")
	out := BuildDiagnosticsOutput([]*diag.Diagnostic{d, d, d}, JSONOpts{Max: 1})
	assert.Equal(t, 3, out.Count)
	assert.Len(t, out.Diagnostics, 1)
	assert.Empty(t, out.Diagnostics[0].Path)
}

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(src, lexer.Options{})
	require.NoError(t, err)
	return toks
}

func TestFormatTokensPretty(t *testing.T) {
	files := []FileTokens{{Path: "a.c", Tokens: tokenize(t, "#include <a.h>")}}

	var buf bytes.Buffer
	require.NoError(t, FormatTokensPretty(&buf, files, TokenOpts{}))

	want := "" +
		"  1: Punctuator         1:1      \"#\"\n" +
		"  2: Identifier         1:2      \"include\"\n" +
		"  3: HeaderName         1:10     \"a.h\" (Included)\n"
	assert.Equal(t, want, buf.String())
}

func TestFormatTokensPrettyMultipleFiles(t *testing.T) {
	files := []FileTokens{
		{Path: "a.c", Tokens: tokenize(t, "a")},
		{Path: "b.c", Tokens: tokenize(t, "b")},
	}
	var buf bytes.Buffer
	require.NoError(t, FormatTokensPretty(&buf, files, TokenOpts{}))
	assert.Contains(t, buf.String(), "==> a.c <==\n")
	assert.Contains(t, buf.String(), "\n\n==> b.c <==\n")
}

func TestLexemeCellTruncatesByDisplayWidth(t *testing.T) {
	assert.Equal(t, `"abc"`, lexemeCell("abc", 0))
	assert.Equal(t, `"abc"`, lexemeCell("abc", 5))

	cell := lexemeCell("日本語日本語", 8)
	assert.True(t, strings.HasSuffix(cell, "…"), cell)
	assert.LessOrEqual(t, len([]rune(cell)), 8)
}

func TestFormatTokensJSONAndYAML(t *testing.T) {
	files := []FileTokens{{Path: "x.c", Tokens: tokenize(t, "#include \"x.h\"\nx <<= 'c'")}}

	var jbuf bytes.Buffer
	require.NoError(t, FormatTokensJSON(&jbuf, files))
	var fromJSON []FileTokensOutput
	require.NoError(t, json.Unmarshal(jbuf.Bytes(), &fromJSON))

	var ybuf bytes.Buffer
	require.NoError(t, FormatTokensYAML(&ybuf, files))
	var fromYAML []FileTokensOutput
	require.NoError(t, yaml.Unmarshal(ybuf.Bytes(), &fromYAML))

	require.Len(t, fromJSON, 1)
	assert.Equal(t, fromJSON, fromYAML)

	toks := fromJSON[0].Tokens
	require.Equal(t, 7, fromJSON[0].Count)
	assert.Equal(t, TokenOutput{Kind: "HeaderName", Text: "x.h", Header: "Local", Line: 1, Column: 10, Offset: 9}, toks[2])
	assert.Equal(t, "\n", toks[3].Text)
	assert.Equal(t, TokenOutput{Kind: "Operator", Text: "<<=", Line: 2, Column: 3, Offset: 17}, toks[5])
	assert.Equal(t, "CharacterConstant", toks[6].Kind)
	assert.False(t, toks[1].Keyword, "include is not a C89 keyword")
}

func TestTokenOutputMarksKeywords(t *testing.T) {
	toks := tokenize(t, "int Int")
	require.Len(t, toks, 2)
	assert.True(t, tokenOutput(toks[0]).Keyword)
	assert.False(t, tokenOutput(toks[1]).Keyword)
	assert.Equal(t, "Identifier", tokenOutput(toks[0]).Kind)
}
