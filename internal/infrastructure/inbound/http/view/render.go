package view

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/page.html
var templatesFS embed.FS

var page = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"date": func(t interface{ Format(string) string }) string { return t.Format("2006-01-02") },
}).ParseFS(templatesFS, "templates/page.html"))

func Render(w io.Writer, state State) error {
	return page.Execute(w, state)
}
