package content

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Narratives are trusted author content but raw HTML is still left out:
// goldmark omits it unless the unsafe renderer option is set.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(util.Prioritized(linkIsolation{}, 100)),
	),
)

// linkIsolation applies the external link policy to narrative links, both
// written and linkified.
type linkIsolation struct{}

func (linkIsolation) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch l := n.(type) {
		case *ast.Link:
			isolate(l, string(l.Destination))
		case *ast.AutoLink:
			if l.AutoLinkType == ast.AutoLinkEmail {
				break
			}
			isolate(l, string(l.URL(src)))
		}
		return ast.WalkContinue, nil
	})
}

func isolate(n ast.Node, dest string) {
	if !leavesPage(dest) || !OpensNewContext(dest) {
		return
	}
	n.SetAttributeString("target", []byte("_blank"))
	n.SetAttributeString("rel", []byte(ExternalRel))
}

// leavesPage is false for fragments and site-relative paths.
func leavesPage(dest string) bool {
	dest = strings.TrimSpace(dest)
	return dest != "" && !strings.HasPrefix(dest, "#") &&
		(!strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//"))
}

// Markdown renders a narrative to HTML. Conversion failures fall back to the
// source text escaped by the caller, so the result reports ok=false.
func Markdown(src string) (html string, ok bool) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", true
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", false
	}
	return buf.String(), true
}
