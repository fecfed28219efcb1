package cli

import (
	"fmt"
	"io"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/ytget/android-template-generator/internal/catalog"
)

const (
	templatesListTmpl = `{{ range . -}}
{{ printf "%-13s" (toString .Tier) }}{{ .Title }} [{{ .Status }}]{{ if not .Available }} (not available){{ end }}
{{ .Description | wrap 64 | indent 13 }}
{{ end -}}
`

	treeTmpl = `{{ range .Lines -}}
{{ indent (int (mul .Depth 2)) .Name }}{{ if .Folder }}/{{ end }}
{{ end -}}
{{ .Folders }} folders, {{ .Files }} files
`
)

var templateCache sync.Map

func loadTemplate(name, text string) (*template.Template, error) {
	if cached, ok := templateCache.Load(name); ok {
		return cached.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

// treeLine is one row of a fully expanded folder tree
type treeLine struct {
	Name   string
	Depth  int
	Folder bool
}

type treeReport struct {
	Lines   []treeLine
	Files   int
	Folders int
}

func flatten(n *catalog.Node, depth int, out []treeLine) []treeLine {
	if n == nil {
		return out
	}
	out = append(out, treeLine{Name: n.Name, Depth: depth, Folder: n.IsFolder()})
	for _, child := range n.Children {
		out = flatten(child, depth+1, out)
	}
	return out
}

// RenderTemplates writes the tier list
func RenderTemplates(w io.Writer, templates []*catalog.Descriptor) error {
	tmpl, err := loadTemplate("templates", templatesListTmpl)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, templates)
}

// RenderTree writes a fully expanded folder tree with a summary line
func RenderTree(w io.Writer, root *catalog.Node) error {
	tmpl, err := loadTemplate("tree", treeTmpl)
	if err != nil {
		return err
	}
	files, folders := root.Count()
	return tmpl.Execute(w, treeReport{
		Lines:   flatten(root, 0, nil),
		Files:   files,
		Folders: folders,
	})
}
