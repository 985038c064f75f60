package main

import (
	"bytes"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/russross/blackfriday/v2"
)

type renderer interface {
	render(in []byte) string
}

// Raw HTML in the source is passed through: the authors are trusted.
const htmlFlags = blackfriday.UseXHTML |
	blackfriday.Smartypants |
	blackfriday.SmartypantsFractions |
	blackfriday.SmartypantsLatexDashes

const extensions = blackfriday.NoIntraEmphasis |
	blackfriday.Tables |
	blackfriday.FencedCode |
	blackfriday.Autolink |
	blackfriday.Strikethrough

func newMarkdownRenderer(highlightStyle string) renderer {
	return &blackfridayHtmlRenderer{
		HTMLRenderer: blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: htmlFlags}),
		style:        styles.Get(highlightStyle),
		formatter:    chromahtml.New(chromahtml.TabWidth(4)),
	}
}

type blackfridayHtmlRenderer struct {
	*blackfriday.HTMLRenderer
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func (b *blackfridayHtmlRenderer) render(in []byte) string {
	return string(blackfriday.Run(in, blackfriday.WithRenderer(b), blackfriday.WithExtensions(extensions)))
}

// RenderNode highlights fenced code blocks and leaves everything else to the
// plain HTML renderer.
func (b *blackfridayHtmlRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	if node.Type == blackfriday.CodeBlock && node.IsFenced {
		var buf bytes.Buffer
		if err := b.highlight(&buf, node.Literal, string(node.Info)); err == nil {
			w.Write(buf.Bytes())
			return blackfriday.GoToNext
		}
	}
	return b.HTMLRenderer.RenderNode(w, node, entering)
}

func (b *blackfridayHtmlRenderer) highlight(w io.Writer, code []byte, info string) error {
	var lexer chroma.Lexer
	if fields := strings.Fields(info); len(fields) > 0 {
		lexer = lexers.Get(fields[0])
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, string(code))
	if err != nil {
		return err
	}
	return b.formatter.Format(w, b.style, iterator)
}
