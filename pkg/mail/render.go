package mail

import (
	"bytes"
	stdhtml "html"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	md "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const codeStyle = "github"

var (
	codeCSSOnce sync.Once
	codeCSS     template.CSS
)

// ToHTML renders a Markdown mail body. Raw HTML in the source is dropped and
// fenced code blocks are highlighted with CSS classes (see CodeCSS).
func ToHTML(source string) template.HTML {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(source))

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags:          mdhtml.CommonFlags | mdhtml.SkipHTML,
		RenderNodeHook: renderNodeHook,
	})

	return template.HTML(md.Render(doc, renderer)) //nolint:gosec // raw HTML is skipped by the renderer
}

// CodeCSS returns the stylesheet for highlighted code blocks.
func CodeCSS() template.CSS {
	codeCSSOnce.Do(func() {
		var buf bytes.Buffer
		formatter := chromahtml.New(chromahtml.WithClasses(true))
		if err := formatter.WriteCSS(&buf, styles.Get(codeStyle)); err == nil {
			codeCSS = template.CSS(buf.String()) //nolint:gosec // generated by chroma
		}
	})
	return codeCSS
}

func renderNodeHook(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	if !entering {
		return ast.GoToNext, false
	}
	block, ok := node.(*ast.CodeBlock)
	if !ok {
		return ast.GoToNext, false
	}
	renderCodeBlock(w, block)
	return ast.SkipChildren, true
}

func renderCodeBlock(w io.Writer, block *ast.CodeBlock) {
	code := string(block.Literal)
	iterator, err := pickLexer(string(block.Info), code).Tokenise(nil, code)
	if err == nil {
		formatter := chromahtml.New(chromahtml.WithClasses(true))
		if err = formatter.Format(w, styles.Get(codeStyle), iterator); err == nil {
			return
		}
	}
	_, _ = io.WriteString(w, `<pre class="chroma"><code>`)
	_, _ = io.WriteString(w, stdhtml.EscapeString(code))
	_, _ = io.WriteString(w, `</code></pre>`)
}

func pickLexer(info, code string) chroma.Lexer {
	if fields := strings.Fields(info); len(fields) > 0 {
		if lexer := lexers.Get(strings.ToLower(fields[0])); lexer != nil {
			return lexer
		}
	}
	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer
	}
	return lexers.Fallback
}
