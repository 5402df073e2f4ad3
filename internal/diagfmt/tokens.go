package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"cfront/internal/token"
)

// FileTokens — токены одного файла для дампа.
type FileTokens struct {
	Path   string
	Tokens []token.Token
}

// TokenOutput is the serialized form of one token.
type TokenOutput struct {
	Kind    string `json:"kind" yaml:"kind"`
	Text    string `json:"text" yaml:"text"`
	Header  string `json:"header,omitempty" yaml:"header,omitempty"`
	Keyword bool   `json:"keyword,omitempty" yaml:"keyword,omitempty"` // identifier spelling a C89 keyword
	Line    uint32 `json:"line" yaml:"line"`
	Column  uint32 `json:"column" yaml:"column"`
	Offset  uint32 `json:"offset" yaml:"offset"`
}

// FileTokensOutput groups serialized tokens by file.
type FileTokensOutput struct {
	Path   string        `json:"path" yaml:"path"`
	Count  int           `json:"count" yaml:"count"`
	Tokens []TokenOutput `json:"tokens" yaml:"tokens"`
}

func tokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{
		Kind:   tok.Kind.String(),
		Text:   tok.Lexeme(),
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column,
		Offset: tok.Pos.Offset,
	}
	switch tok.Kind {
	case token.HeaderName:
		out.Header = tok.Header.String()
	case token.Identifier:
		_, out.Keyword = token.LookupKeyword(tok.Text)
	}
	return out
}

func buildTokensOutput(files []FileTokens) []FileTokensOutput {
	out := make([]FileTokensOutput, 0, len(files))
	for _, f := range files {
		toks := make([]TokenOutput, 0, len(f.Tokens))
		for _, tok := range f.Tokens {
			toks = append(toks, tokenOutput(tok))
		}
		out = append(out, FileTokensOutput{Path: f.Path, Count: len(toks), Tokens: toks})
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  1: Punctuator         1:1      "#"
//
// With more than one file every block is preceded by "==> path <==".
func FormatTokensPretty(w io.Writer, files []FileTokens, opts TokenOpts) error {
	for fi, f := range files {
		if len(files) > 1 {
			if fi > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", f.Path); err != nil {
				return err
			}
		}
		for i, tok := range f.Tokens {
			if _, err := fmt.Fprintf(w, "%3d: %-18s %-8s %s%s\n",
				i+1, tok.Kind, tok.Pos, lexemeCell(tok.Lexeme(), opts.Width), headerSuffix(tok)); err != nil {
				return err
			}
		}
	}
	return nil
}

// lexemeCell quotes the lexeme and trims it to width terminal columns.
func lexemeCell(lexeme string, width int) string {
	q := strconv.Quote(lexeme)
	if width <= 0 || runewidth.StringWidth(q) <= width {
		return q
	}
	return runewidth.Truncate(q, width, "…")
}

func headerSuffix(tok token.Token) string {
	if tok.Kind != token.HeaderName {
		return ""
	}
	return " (" + tok.Header.String() + ")"
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, files []FileTokens) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildTokensOutput(files))
}

// FormatTokensYAML выводит токены в YAML формате
func FormatTokensYAML(w io.Writer, files []FileTokens) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(buildTokensOutput(files)); err != nil {
		return err
	}
	return encoder.Close()
}
