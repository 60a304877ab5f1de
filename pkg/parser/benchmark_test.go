package parser_test

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/parchlabs/mdast/pkg/mdast"
	"github.com/parchlabs/mdast/pkg/parser"
)

// benchDocument builds a document that exercises every block and inline
// construct at a realistic mix.
func benchDocument() string {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("## Section heading with *emphasis* and `code`\n\n")
		b.WriteString("A paragraph of prose that spans multiple lines,\n")
		b.WriteString("with **strong** spans, [links](/target \"title\"),\n")
		b.WriteString("reference-style [links][ref], and ~~deletions~~.\n\n")
		b.WriteString("> A quoted aside with a lazy\ncontinuation line.\n\n")
		b.WriteString("- first item\n- second item with `inline code`\n- third\n\n")
		b.WriteString("```go\nfunc handler(w http.ResponseWriter, r *http.Request) {\n\tw.WriteHeader(200)\n}\n```\n\n")
		b.WriteString("| col a | col b | col c |\n| :-- | :-: | --: |\n| 1 | 2 | 3 |\n| 4 | 5 | 6 |\n\n")
	}
	b.WriteString("[ref]: /resolved \"resolved title\"\n")
	return b.String()
}

func BenchmarkParse(b *testing.B) {
	source := benchDocument()
	b.SetBytes(int64(len(source)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(source); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGoldmarkBaseline parses the same document with goldmark's GFM
// parser as a reference point for throughput comparisons.
func BenchmarkGoldmarkBaseline(b *testing.B) {
	source := []byte(benchDocument())
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	b.SetBytes(int64(len(source)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		md.Parser().Parse(gmtext.NewReader(source))
	}
}

func BenchmarkLexer(b *testing.B) {
	source := benchDocument()
	b.SetBytes(int64(len(source)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		lx := parser.NewLexer(source)
		for {
			if lx.Next().Kind == mdast.TokEOF {
				break
			}
		}
	}
}
