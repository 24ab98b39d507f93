// Package doc renders the `///` doc comments attached to struct and
// function declarations (mir/ast.StructDecl.Doc, mir/ast.FnPrototype.Doc)
// to HTML, in the style of gopls's pkgdoc.go: a single self-contained
// page listing every struct and function declaration in the program, each
// comment's markdown body rendered with goldmark rather than escaped as
// plain text, since several of the example programs this tool consumes
// write multi-paragraph doc comments with code spans and lists.
package doc

import (
	"bytes"
	"fmt"
	"html"
	"sort"

	"github.com/yuin/goldmark"

	"github.com/ecstatic-morse/polonius.next/mir/ast"
)

// Page is the rendered documentation for one program.
type Page struct {
	Structs []Entry
	Fns     []Entry
}

// Entry is one documented declaration.
type Entry struct {
	Name string
	HTML string // rendered markdown body, or "" if undocumented
}

// Build collects every struct and function in prog, sorted by name,
// rendering each Doc string's markdown to HTML; an undocumented
// declaration is kept with an empty HTML body.
func Build(prog *ast.Program) (*Page, error) {
	page := &Page{}

	for _, s := range prog.StructDecls {
		h, err := render(s.Doc)
		if err != nil {
			return nil, fmt.Errorf("rendering doc for struct %s: %w", s.Name, err)
		}
		page.Structs = append(page.Structs, Entry{Name: string(s.Name), HTML: h})
	}
	for _, fn := range prog.FnPrototypes {
		h, err := render(fn.Doc)
		if err != nil {
			return nil, fmt.Errorf("rendering doc for fn %s: %w", fn.Name, err)
		}
		page.Fns = append(page.Fns, Entry{Name: string(fn.Name), HTML: h})
	}

	sort.Slice(page.Structs, func(i, j int) bool { return page.Structs[i].Name < page.Structs[j].Name })
	sort.Slice(page.Fns, func(i, j int) bool { return page.Fns[i].Name < page.Fns[j].Name })
	return page, nil
}

func render(doc string) (string, error) {
	if doc == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(doc), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HTML renders page as a single standalone HTML document.
func (page *Page) HTML() string {
	var b bytes.Buffer
	b.WriteString("<!doctype html>\n<meta charset=\"utf-8\">\n<title>polonius.next program documentation</title>\n")

	b.WriteString("<h1>Structs</h1>\n")
	for _, e := range page.Structs {
		fmt.Fprintf(&b, "<h2 id=\"struct-%s\">%s</h2>\n", html.EscapeString(e.Name), html.EscapeString(e.Name))
		if e.HTML != "" {
			b.WriteString(e.HTML)
		}
	}

	b.WriteString("<h1>Functions</h1>\n")
	for _, e := range page.Fns {
		fmt.Fprintf(&b, "<h2 id=\"fn-%s\">%s</h2>\n", html.EscapeString(e.Name), html.EscapeString(e.Name))
		if e.HTML != "" {
			b.WriteString(e.HTML)
		}
	}

	return b.String()
}
